// Package el is a typed element DSL over the vdom builder, for callers who
// prefer Go constructors to markup templates:
//
//	el.Div(el.Class("card"),
//	    el.H1("Hello"),
//	    el.Button(el.OnClick(save), "Save"),
//	)
package el
