package reconcile

import (
	"fmt"
	"reflect"

	"github.com/zserge/o/pkg/dom"
	"github.com/zserge/o/pkg/hooks"
	"github.com/zserge/o/pkg/vdom"
)

// Bookkeeping properties attached to managed host nodes.
const (
	// identityProp records what a host node was last rendered as: the
	// element tag, or textIdentity for text nodes. Reuse decisions compare
	// against it.
	identityProp = dom.InternalPrefix + "identity"

	// hooksProp holds the container's hook store, replaced wholesale on
	// every render pass.
	hooksProp = dom.InternalPrefix + "hooks"

	textIdentity = "#text"
)

// Render synchronizes container's children with the descriptor list.
//
// For each position the descriptor is resolved through any component chain,
// then matched against the existing host child at that position: a child
// whose recorded identity matches is reused, otherwise a new node is
// created and inserted before it. Properties are written only when they
// differ from the host's current value; function-valued properties (event
// handlers) are reassigned on every pass, and properties absent from the
// new descriptor are left on the host rather than removed. Extra trailing
// host children are
// torn down through this same path so nested hook cleanups fire. After the
// subtree is in sync, pending effects run and cleanups of unmounted
// component instances are invoked.
//
// A single descriptor renders as a one-element list. Rendering an empty
// list clears the container.
func Render(container dom.Node, nodes ...*vdom.VNode) {
	doc := container.OwnerDocument()

	prev, _ := container.Prop(hooksProp).(*hooks.Store)
	next := hooks.NewStore()
	container.SetProp(hooksProp, next)

	for i, v := range nodes {
		v = resolve(v, i, container, nodes, prev, next)

		var host dom.Node
		if kids := container.ChildNodes(); i < len(kids) {
			host = kids[i]
		}

		switch v.Kind {
		case vdom.KindText:
			if host == nil || identityOf(host) != textIdentity {
				n := doc.CreateText(v.Text)
				n.SetProp(identityProp, textIdentity)
				container.InsertBefore(n, host)
				host = n
			}
			if cur, _ := host.Prop(dom.TextProp).(string); cur != v.Text {
				host.SetProp(dom.TextProp, v.Text)
			}

		case vdom.KindElement:
			if host == nil || identityOf(host) != v.Tag {
				n := doc.CreateElement(v.Tag)
				n.SetProp(identityProp, v.Tag)
				container.InsertBefore(n, host)
				host = n
			}
			for key, val := range v.Props {
				if key == "key" {
					continue
				}
				if !propEqual(host.Prop(key), val) {
					host.SetProp(key, val)
				}
			}
			Render(host, v.Children...)
		}
	}

	// Trailing host children beyond the descriptor list are unmounted
	// through an empty render so their subtrees clean up.
	for {
		kids := container.ChildNodes()
		if len(kids) <= len(nodes) {
			break
		}
		extra := kids[len(kids)-1]
		Render(extra)
		container.RemoveChild(extra)
	}

	next.Flush()
	prev.DisposeMissing(next)
}

// resolve invokes component descriptors until an element or text descriptor
// remains. Each invocation gets a hook context over the instance's previous
// cells and a trigger that re-renders the same top-level list into the same
// container; the resulting cells are recorded into the pass's new store
// under the instance key.
//
// Without an explicit key the instance key is positional: the sibling slot,
// extended per chain depth when a component resolves to another component.
// Positional keys are stable across passes no matter how the descriptor was
// built; the trade-off is that reordering unkeyed siblings reassociates
// their state, which "key" exists to avoid.
func resolve(v *vdom.VNode, pos int, container dom.Node, list []*vdom.VNode, prev, next *hooks.Store) *vdom.VNode {
	key := ""
	for depth := 0; v != nil && v.Kind == vdom.KindComponent; depth++ {
		switch {
		case v.Key != "":
			key = v.Key
		case key == "":
			key = fmt.Sprintf("#%d", pos)
		default:
			key = fmt.Sprintf("%s/%d", key, depth)
		}
		ctx := hooks.NewCtx(prev.Cells(key), func() {
			Render(container, list...)
		})
		v = v.Fn(ctx, v.Props, v.Children)
		next.Put(key, ctx.Cells())
	}
	if v == nil {
		// A component may render nothing; hold the position with an empty
		// text node.
		return vdom.Text("")
	}
	return v
}

// identityOf returns what the host node was last rendered as, or "" for
// nodes the reconciler has not managed.
func identityOf(host dom.Node) string {
	id, _ := host.Prop(identityProp).(string)
	return id
}

// propEqual compares a host property value against a descriptor value.
// Function values always compare unequal: two closures of the same literal
// share a code pointer even when they capture different state, so a handler
// is reassigned on every pass rather than risk keeping a stale closure.
func propEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	if reflect.ValueOf(a).Kind() == reflect.Func || reflect.ValueOf(b).Kind() == reflect.Func {
		return false
	}
	return reflect.DeepEqual(a, b)
}
