// Package vtest provides testing helpers for components: an in-memory
// mount point with HTML assertions and event firing.
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, el.Component(Counter))
//	    h.ExpectContains("0 clicks")
//	    h.Click("button")
//	    h.ExpectContains("1 clicks")
//	}
package vtest

import (
	"strings"
	"testing"

	"github.com/zserge/o/pkg/dom"
	"github.com/zserge/o/pkg/reconcile"
	"github.com/zserge/o/pkg/vdom"
)

// Harness is a component mounted into an in-memory document.
type Harness struct {
	t    *testing.T
	doc  *dom.MemoryDocument
	body *dom.MemoryNode
}

// Mount renders the descriptors into a fresh in-memory container.
func Mount(t *testing.T, nodes ...*vdom.VNode) *Harness {
	t.Helper()
	doc := dom.NewDocument()
	body := doc.CreateElement("body").(*dom.MemoryNode)
	reconcile.Render(body, nodes...)
	return &Harness{t: t, doc: doc, body: body}
}

// Container returns the mount container.
func (h *Harness) Container() dom.Node { return h.body }

// Rerender renders a new descriptor list into the same container.
func (h *Harness) Rerender(nodes ...*vdom.VNode) {
	reconcile.Render(h.body, nodes...)
}

// Unmount renders an empty list, tearing the tree down so cleanups fire.
func (h *Harness) Unmount() {
	reconcile.Render(h.body)
}

// HTML returns the serialized content of the container.
func (h *Harness) HTML() string {
	return h.body.InnerHTML()
}

// PropWrites returns the document's property write count, for no-op
// re-render assertions.
func (h *Harness) PropWrites() int { return h.doc.PropWrites() }

// ResetPropWrites zeroes the write counter.
func (h *Harness) ResetPropWrites() { h.doc.ResetPropWrites() }

// ExpectContains asserts that the rendered output contains the substring.
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	if got := h.HTML(); !strings.Contains(got, expected) {
		h.t.Errorf("expected rendered output to contain %q, got:\n%s", expected, got)
	}
}

// ExpectNotContains asserts that the rendered output does not contain the
// substring.
func (h *Harness) ExpectNotContains(unexpected string) {
	h.t.Helper()
	if got := h.HTML(); strings.Contains(got, unexpected) {
		h.t.Errorf("expected rendered output to not contain %q, got:\n%s", unexpected, got)
	}
}

// Click fires the "click" handler of the first element with the given tag.
func (h *Harness) Click(tag string) {
	h.t.Helper()
	h.Fire(tag, "click", "")
}

// Fire locates the first element with the given tag and invokes its
// "on"+event handler, passing value to handlers that take one.
func (h *Harness) Fire(tag, event, value string) {
	h.t.Helper()
	node := findTag(h.body, tag)
	if node == nil {
		h.t.Fatalf("no <%s> element rendered:\n%s", tag, h.HTML())
	}
	switch fn := node.Prop("on" + event).(type) {
	case func():
		fn()
	case func(string):
		fn(value)
	case nil:
		h.t.Fatalf("<%s> has no on%s handler", tag, event)
	default:
		h.t.Fatalf("<%s> on%s handler has unsupported type %T", tag, event, fn)
	}
}

func findTag(n *dom.MemoryNode, tag string) *dom.MemoryNode {
	if n.Tag() == tag {
		return n
	}
	for _, c := range n.ChildNodes() {
		if found := findTag(c.(*dom.MemoryNode), tag); found != nil {
			return found
		}
	}
	return nil
}
