// Package specforms serves spec forms over HTTP. It lists the known record
// types, exports them as an OpenAPI document, renders a form for a type with
// any registered renderer and accepts submissions as HTML form posts or as
// form text.
//
// Submissions are validated against the type's definition. Invalid HTML
// posts are answered with the form re-rendered around the field errors.
package specforms
