package dom

// TextProp is the property under which a text node carries its payload,
// mirroring the DOM's CharacterData.data.
const TextProp = "data"

// Document creates host nodes. Externally owned; the reconciler only calls
// into it.
type Document interface {
	// CreateElement creates a detached element node for the tag.
	CreateElement(tag string) Node

	// CreateText creates a detached text node holding the value.
	CreateText(value any) Node
}

// Node is the minimal host-node surface consumed by the reconciler.
// Property assignment is the default mutation channel; event handlers and
// bookkeeping ride on properties too.
type Node interface {
	// OwnerDocument returns the document that created this node.
	OwnerDocument() Document

	// InsertBefore inserts child immediately before ref, or appends it when
	// ref is nil. A child already present is moved, not duplicated.
	InsertBefore(child, ref Node)

	// RemoveChild detaches child from this node.
	RemoveChild(child Node)

	// ChildNodes enumerates the current children in order.
	ChildNodes() []Node

	// Prop reads a property, returning nil when unset.
	Prop(name string) any

	// SetProp writes a property.
	SetProp(name string, value any)
}
