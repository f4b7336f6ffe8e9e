// Package hooks implements the per-instance state cells behind function
// components: UseState, UseReducer and UseEffect.
//
// A component instance owns an ordered list of cells. Cells are handed out
// in call order during a render pass, so a component must call the same
// hooks, in the same order, on every render. Calling hooks conditionally is
// undefined behavior; the package does not detect it.
//
// The hook context is explicit: the reconciler builds a Ctx for each
// component invocation and the component threads it into every hook call.
// There is no package-level mutable render state.
package hooks
