// Package vdom defines the node descriptor tree: the declarative value a
// caller builds and hands to the reconciler. Descriptors are plain data and
// immutable by convention; building one has no side effects.
package vdom
