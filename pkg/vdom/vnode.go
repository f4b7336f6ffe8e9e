package vdom

import (
	"fmt"

	"github.com/zserge/o/pkg/hooks"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindComponent              // Function component invocation
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// ComponentFunc is a function component. It receives its hook context,
// props and children and returns the descriptor it renders to. A component
// that never resolves to an element or text descriptor is a programming
// error; the reconciler does not guard against it.
type ComponentFunc func(ctx *hooks.Ctx, props Props, children []*VNode) *VNode

// Props holds attributes and event handlers. Never nil on a built node.
type Props map[string]any

// VNode is a node descriptor.
type VNode struct {
	Kind     VKind         // Node type
	Tag      string        // Element tag name, for KindElement
	Fn       ComponentFunc // For KindComponent
	Props    Props         // Attributes and event handlers
	Children []*VNode      // Child descriptors
	Key      string        // Explicit identity for reconciliation
	Text     string        // For KindText
}

// H builds a node descriptor. tag is either an element tag name (string) or
// a ComponentFunc. props may be nil and defaults to an empty map. Children
// are flattened one level: each child may be a *VNode, a string, a []*VNode
// or []any slice, or any other value, which is rendered as text. Nil
// children are dropped.
func H(tag any, props Props, children ...any) *VNode {
	node := &VNode{
		Props:    make(Props, len(props)),
		Children: make([]*VNode, 0, len(children)),
	}
	switch t := tag.(type) {
	case string:
		node.Kind = KindElement
		node.Tag = t
	case ComponentFunc:
		node.Kind = KindComponent
		node.Fn = t
	case func(*hooks.Ctx, Props, []*VNode) *VNode:
		node.Kind = KindComponent
		node.Fn = t
	default:
		panic(fmt.Sprintf("vdom: H: unsupported tag type %T", tag))
	}
	for k, v := range props {
		node.Props[k] = v
	}
	if key, ok := node.Props["key"].(string); ok {
		node.Key = key
	}
	for _, child := range children {
		node.appendChild(child, true)
	}
	return node
}

// appendChild adds one child value, flattening slices a single level.
func (v *VNode) appendChild(child any, flatten bool) {
	switch c := child.(type) {
	case nil:
		// Ignore nil (allows conditional children)
	case *VNode:
		if c != nil {
			v.Children = append(v.Children, c)
		}
	case string:
		v.Children = append(v.Children, Text(c))
	case []*VNode:
		if flatten {
			for _, n := range c {
				v.appendChild(n, false)
			}
		}
	case []any:
		if flatten {
			for _, n := range c {
				v.appendChild(n, false)
			}
		}
	default:
		v.Children = append(v.Children, Text(c))
	}
}

// Text creates a text descriptor. Non-string values are formatted with
// fmt.Sprint.
func Text(v any) *VNode {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return &VNode{Kind: KindText, Props: Props{}, Text: s}
}

// Textf creates a formatted text descriptor.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}
