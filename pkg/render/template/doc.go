// Package template defines the renderer-agnostic template interface. The
// gotemplate subpackage implements it on github.com/goliatone/go-template.
package template
