// Package forms converts server responses, form text and structured records
// into one another using the schemas held by a spec.Registry.
package forms
