package vdom

// If returns the node if condition is true, nil otherwise. Nil children are
// dropped by H, so this composes directly into builder calls.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation. The function is only called if
// condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Map builds one descriptor per item. Handy for lists:
//
//	vdom.H("ul", nil, vdom.Map(todos, func(t Todo) *vdom.VNode {
//	    return vdom.H("li", vdom.Props{"key": t.ID}, t.Title)
//	}))
func Map[T any](items []T, fn func(T) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for _, item := range items {
		if n := fn(item); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
