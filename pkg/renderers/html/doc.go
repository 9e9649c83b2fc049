// Package html renders a render.Plan as an HTML form fragment using pongo2
// templates. The embedded bundle can be replaced with WithTemplatesFS, and
// WithTemplatesDir overrides individual templates from disk. Templates receive
// the view under the "form" key.
package html
