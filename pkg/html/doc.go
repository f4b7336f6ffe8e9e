// Package html turns HTML-like markup into node descriptors. It is syntax
// sugar over the vdom builder: the descriptors it produces are exactly what
// the equivalent explicit vdom.H calls would produce.
//
// The input model mirrors a tagged template literal: ordered literal
// fragments with interleaved placeholder values. Placeholders substitute in
// tag position, attribute-value position, and child position:
//
//	html.Template([]string{"<button onclick=", ">", "</button>"}, onClick, label)
//
// Malformed markup fails fast: Template panics with a positioned parse
// error, ParseTemplate returns it.
package html
