// Package reconcile synchronizes a host container's children with a
// descriptor tree: it resolves function components, reuses host nodes by
// position and recorded identity, writes only changed properties, and
// drives the hook lifecycle (effect flush, unmount cleanup).
//
// Rendering is synchronous and single-threaded. Render passes for the same
// container must never overlap in time; an update trigger fired from inside
// a running pass is a caller hazard, not something the reconciler defends
// against.
package reconcile
