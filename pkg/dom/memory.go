package dom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zserge/o/pkg/vdom"
)

// InternalPrefix marks bookkeeping properties the reconciler attaches to
// the nodes it manages. Implementations should treat them as opaque storage
// and keep them out of any user-visible rendering.
const InternalPrefix = "o:"

// IsInternalProp reports whether the property name is reconciler
// bookkeeping rather than document state.
func IsInternalProp(name string) bool {
	return strings.HasPrefix(name, InternalPrefix)
}

// MemoryDocument is an in-memory Document. It additionally counts property
// writes, which tests use to assert that re-rendering an unchanged tree is
// a no-op on the host.
type MemoryDocument struct {
	propWrites int
}

// NewDocument creates an empty in-memory document.
func NewDocument() *MemoryDocument {
	return &MemoryDocument{}
}

// CreateElement creates a detached element node.
func (d *MemoryDocument) CreateElement(tag string) Node {
	return &MemoryNode{doc: d, tag: tag, props: make(map[string]any)}
}

// CreateText creates a detached text node holding the value.
func (d *MemoryDocument) CreateText(value any) Node {
	n := &MemoryNode{doc: d, text: true, props: make(map[string]any)}
	n.props[TextProp] = stringify(value)
	return n
}

// PropWrites returns the number of non-bookkeeping property writes
// performed on nodes of this document since creation.
func (d *MemoryDocument) PropWrites() int { return d.propWrites }

// ResetPropWrites zeroes the write counter.
func (d *MemoryDocument) ResetPropWrites() { d.propWrites = 0 }

// MemoryNode is an in-memory host node.
type MemoryNode struct {
	doc      *MemoryDocument
	tag      string
	text     bool
	props    map[string]any
	children []*MemoryNode
	parent   *MemoryNode
}

// OwnerDocument returns the document that created this node.
func (n *MemoryNode) OwnerDocument() Document { return n.doc }

// Tag returns the element tag, or "" for text nodes.
func (n *MemoryNode) Tag() string { return n.tag }

// IsText reports whether this is a text node.
func (n *MemoryNode) IsText() bool { return n.text }

// Text returns the text payload of a text node.
func (n *MemoryNode) Text() string {
	s, _ := n.props[TextProp].(string)
	return s
}

// InsertBefore inserts child immediately before ref, or appends it when ref
// is nil. A child already attached elsewhere is moved.
func (n *MemoryNode) InsertBefore(child, ref Node) {
	c := child.(*MemoryNode)
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = n
	if ref == nil {
		n.children = append(n.children, c)
		return
	}
	r := ref.(*MemoryNode)
	for i, existing := range n.children {
		if existing == r {
			n.children = append(n.children[:i], append([]*MemoryNode{c}, n.children[i:]...)...)
			return
		}
	}
	n.children = append(n.children, c)
}

// RemoveChild detaches child from this node. Removing a node that is not a
// child is a no-op.
func (n *MemoryNode) RemoveChild(child Node) {
	c, ok := child.(*MemoryNode)
	if !ok || c.parent != n {
		return
	}
	n.detach(c)
}

func (n *MemoryNode) detach(c *MemoryNode) {
	for i, existing := range n.children {
		if existing == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// ChildNodes enumerates the current children in order.
func (n *MemoryNode) ChildNodes() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Prop reads a property, returning nil when unset.
func (n *MemoryNode) Prop(name string) any { return n.props[name] }

// Props returns the node's property map. Callers must treat it as
// read-only.
func (n *MemoryNode) Props() map[string]any { return n.props }

// SetProp writes a property. Writes to text payloads are coerced to string
// the way a real document coerces nodeValue.
func (n *MemoryNode) SetProp(name string, value any) {
	if n.text && name == TextProp {
		value = stringify(value)
	}
	n.props[name] = value
	if !IsInternalProp(name) {
		n.doc.propWrites++
	}
}

// OuterHTML serializes this node and its subtree. Bookkeeping properties
// and function-valued properties (event handlers) are omitted; text and
// attribute values are escaped. Attribute order is lexicographic so output
// is deterministic.
func (n *MemoryNode) OuterHTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

// InnerHTML serializes only the node's children.
func (n *MemoryNode) InnerHTML() string {
	var b strings.Builder
	for _, c := range n.children {
		c.writeHTML(&b)
	}
	return b.String()
}

func (n *MemoryNode) writeHTML(b *strings.Builder) {
	if n.text {
		b.WriteString(EscapeText(n.Text()))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.tag)
	keys := make([]string, 0, len(n.props))
	for k := range n.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if IsInternalProp(k) {
			continue
		}
		switch v := n.props[k].(type) {
		case nil:
		case bool:
			if v {
				b.WriteByte(' ')
				b.WriteString(k)
			}
		case string:
			fmt.Fprintf(b, ` %s="%s"`, k, EscapeAttr(v))
		case int, int64, float64:
			fmt.Fprintf(b, ` %s="%s"`, k, EscapeAttr(fmt.Sprint(v)))
		default:
			// Handlers and other non-attribute values don't serialize.
		}
	}
	if vdom.IsVoidElement(n.tag) && len(n.children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, c := range n.children {
		c.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
