package el

import "github.com/zserge/o/pkg/vdom"

// IsVoidElement reports whether the tag is a void element.
func IsVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}

// E creates an element with the given tag. Arguments can be: nil, Attr,
// []Attr, *VNode, []*VNode, string, or any other value (rendered as text).
func E(tag string, args ...any) *VNode {
	props := vdom.Props{}
	children := make([]any, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
		case Attr:
			if !v.IsEmpty() {
				props[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					props[a.Key] = a.Value
				}
			}
		default:
			children = append(children, arg)
		}
	}
	return vdom.H(tag, props, children...)
}

// Document structure

func Header(args ...any) *VNode  { return E("header", args...) }
func Footer(args ...any) *VNode  { return E("footer", args...) }
func Main(args ...any) *VNode    { return E("main", args...) }
func Nav(args ...any) *VNode     { return E("nav", args...) }
func Section(args ...any) *VNode { return E("section", args...) }
func Article(args ...any) *VNode { return E("article", args...) }
func Aside(args ...any) *VNode   { return E("aside", args...) }

// Headings

func H1(args ...any) *VNode { return E("h1", args...) }
func H2(args ...any) *VNode { return E("h2", args...) }
func H3(args ...any) *VNode { return E("h3", args...) }
func H4(args ...any) *VNode { return E("h4", args...) }

// Grouping content

func Div(args ...any) *VNode        { return E("div", args...) }
func P(args ...any) *VNode          { return E("p", args...) }
func Pre(args ...any) *VNode        { return E("pre", args...) }
func Blockquote(args ...any) *VNode { return E("blockquote", args...) }
func Hr(args ...any) *VNode         { return E("hr", args...) }
func Ul(args ...any) *VNode         { return E("ul", args...) }
func Ol(args ...any) *VNode         { return E("ol", args...) }
func Li(args ...any) *VNode         { return E("li", args...) }

// Text-level semantics

func A(args ...any) *VNode      { return E("a", args...) }
func Span(args ...any) *VNode   { return E("span", args...) }
func Strong(args ...any) *VNode { return E("strong", args...) }
func Em(args ...any) *VNode     { return E("em", args...) }
func Code(args ...any) *VNode   { return E("code", args...) }
func Small(args ...any) *VNode  { return E("small", args...) }
func Br(args ...any) *VNode     { return E("br", args...) }

// Tables

func Table(args ...any) *VNode { return E("table", args...) }
func Thead(args ...any) *VNode { return E("thead", args...) }
func Tbody(args ...any) *VNode { return E("tbody", args...) }
func Tr(args ...any) *VNode    { return E("tr", args...) }
func Th(args ...any) *VNode    { return E("th", args...) }
func Td(args ...any) *VNode    { return E("td", args...) }

// Forms

func Form(args ...any) *VNode     { return E("form", args...) }
func Label(args ...any) *VNode    { return E("label", args...) }
func Input(args ...any) *VNode    { return E("input", args...) }
func Button(args ...any) *VNode   { return E("button", args...) }
func Select(args ...any) *VNode   { return E("select", args...) }
func Option(args ...any) *VNode   { return E("option", args...) }
func Textarea(args ...any) *VNode { return E("textarea", args...) }

// Media

func Img(args ...any) *VNode { return E("img", args...) }

// Text creates a text descriptor.
func Text(v any) *VNode { return vdom.Text(v) }

// Textf creates a formatted text descriptor.
func Textf(format string, args ...any) *VNode { return vdom.Textf(format, args...) }

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode { return vdom.If(condition, node) }

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	return vdom.IfElse(condition, ifTrue, ifFalse)
}

// When is like If but with lazy evaluation.
func When(condition bool, fn func() *VNode) *VNode { return vdom.When(condition, fn) }

// Map builds one descriptor per item.
func Map[T any](items []T, fn func(T) *VNode) []*VNode { return vdom.Map(items, fn) }

// Component wraps a function component invocation.
func Component(fn ComponentFunc, args ...any) *VNode {
	props := vdom.Props{}
	children := make([]any, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			if !v.IsEmpty() {
				props[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					props[a.Key] = a.Value
				}
			}
		default:
			children = append(children, arg)
		}
	}
	return vdom.H(fn, props, children...)
}
