// Package o is a minimal virtual-DOM rendering library: descriptors built
// with H (or the html template package) are synchronized into a host
// document by Render, and function components keep local state through the
// hook accessors.
//
// This package is the public facade; the implementation lives in pkg/vdom
// (descriptors), pkg/reconcile (rendering), pkg/hooks (state), pkg/dom
// (host surface) and pkg/html (markup sugar).
//
//	count := func(ctx *o.Ctx, props o.Props, children []*o.VNode) *o.VNode {
//	    n, setN := o.UseState(ctx, 0)
//	    return o.H("button", o.Props{"onclick": func() { setN(n + 1) }},
//	        o.Textf("%d clicks", n))
//	}
//	o.Render(body, o.H(o.ComponentFunc(count), nil))
package o

import (
	"github.com/zserge/o/pkg/dom"
	"github.com/zserge/o/pkg/hooks"
	"github.com/zserge/o/pkg/html"
	"github.com/zserge/o/pkg/reconcile"
	"github.com/zserge/o/pkg/vdom"
)

// Type aliases for the core primitives.
type (
	VNode         = vdom.VNode
	VKind         = vdom.VKind
	Props         = vdom.Props
	ComponentFunc = vdom.ComponentFunc
	Ctx           = hooks.Ctx
	Cleanup       = hooks.Cleanup
	EffectFunc    = hooks.EffectFunc
	Document      = dom.Document
	Node          = dom.Node
)

// H builds a node descriptor; see vdom.H.
func H(tag any, props Props, children ...any) *VNode {
	return vdom.H(tag, props, children...)
}

// Text creates a text descriptor.
func Text(v any) *VNode { return vdom.Text(v) }

// Textf creates a formatted text descriptor.
func Textf(format string, args ...any) *VNode { return vdom.Textf(format, args...) }

// Template parses tagged-template markup into a descriptor; see
// html.Template.
func Template(fragments []string, values ...any) *VNode {
	return html.Template(fragments, values...)
}

// Render synchronizes container's children with the descriptors; see
// reconcile.Render.
func Render(container Node, nodes ...*VNode) {
	reconcile.Render(container, nodes...)
}

// NewDocument creates an in-memory host document.
func NewDocument() *dom.MemoryDocument { return dom.NewDocument() }

// UseState returns persisted state and a setter; see hooks.UseState.
func UseState[T any](ctx *Ctx, initial T) (T, func(T)) {
	return hooks.UseState(ctx, initial)
}

// UseReducer returns persisted state and a dispatcher; see hooks.UseReducer.
func UseReducer[S, A any](ctx *Ctx, reducer func(S, A) S, initial S) (S, func(A)) {
	return hooks.UseReducer(ctx, reducer, initial)
}

// UseEffect schedules a post-render side effect; see hooks.UseEffect.
func UseEffect(ctx *Ctx, fn EffectFunc, deps []any) {
	hooks.UseEffect(ctx, fn, deps)
}
