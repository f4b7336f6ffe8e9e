package hooks

import "reflect"

// Cleanup tears down whatever an effect set up. Returned by an EffectFunc,
// invoked when the owning instance unmounts.
type Cleanup func()

// EffectFunc is a side effect scheduled by UseEffect. It may return a
// Cleanup, or nil if there is nothing to tear down.
type EffectFunc func() Cleanup

// Cell is a single state slot of a component instance. It survives across
// render passes; the slot a hook call gets is determined purely by call
// order.
type Cell struct {
	// Value is the persisted state. For UseEffect cells it holds the
	// previous dependency list.
	Value any

	// pending is the effect scheduled during the last render, cleared when
	// the store flushes.
	pending EffectFunc

	// cleanup is the teardown captured from the last effect run.
	cleanup Cleanup
}

// Ctx is the hook context for one synchronous component invocation. The
// reconciler creates it with the instance's existing cells and a trigger
// bound to "re-render this container"; the component passes it to every
// hook call.
type Ctx struct {
	cells      []*Cell
	cursor     int
	invalidate func()
}

// NewCtx builds a hook context over the given cells with the cursor at
// zero. The cell slice may be nil for a first mount.
func NewCtx(cells []*Cell, invalidate func()) *Ctx {
	return &Ctx{cells: cells, invalidate: invalidate}
}

// Next returns the cell at the current cursor position, creating one with
// the given initial value if the instance has not run this far before, and
// advances the cursor.
func (c *Ctx) Next(initial any) *Cell {
	if c.cursor >= len(c.cells) {
		c.cells = append(c.cells, &Cell{Value: initial})
	}
	cell := c.cells[c.cursor]
	c.cursor++
	return cell
}

// Cells returns the instance's cell list after the invocation, for the
// reconciler to record into the new store.
func (c *Ctx) Cells() []*Cell { return c.cells }

// Invalidate re-runs the render pass this context was created for. Each
// call produces a separate, full, synchronous pass; there is no batching.
func (c *Ctx) Invalidate() {
	if c.invalidate != nil {
		c.invalidate()
	}
}

// UseState returns the persisted value for this call position, initialized
// to initial on first mount, and a setter. The setter replaces the value
// unconditionally and triggers a re-render.
func UseState[T any](ctx *Ctx, initial T) (T, func(T)) {
	cell := ctx.Next(initial)
	set := func(v T) {
		cell.Value = v
		ctx.Invalidate()
	}
	return cell.Value.(T), set
}

// UseReducer returns the persisted state for this call position and a
// dispatch function. Dispatch folds the action into the state with the
// supplied reducer and triggers a re-render.
func UseReducer[S, A any](ctx *Ctx, reducer func(S, A) S, initial S) (S, func(A)) {
	cell := ctx.Next(initial)
	dispatch := func(action A) {
		cell.Value = reducer(cell.Value.(S), action)
		ctx.Invalidate()
	}
	return cell.Value.(S), dispatch
}

// UseEffect schedules fn to run after the current render pass when the
// dependency list changed since the previous pass.
//
// A nil deps slice means "run after every render". An empty, non-nil slice
// means "run once, on first mount". Otherwise deps are compared entry by
// entry against the previous list; any difference, including a length
// change, schedules the effect.
func UseEffect(ctx *Ctx, fn EffectFunc, deps []any) {
	cell := ctx.Next(nil)
	if !depsChanged(cell.Value, deps) {
		return
	}
	if deps == nil {
		cell.Value = nil
	} else {
		// Keep a copy so later caller mutation can't mask a change.
		prev := make([]any, len(deps))
		copy(prev, deps)
		cell.Value = prev
	}
	cell.pending = fn
}

// depsChanged reports whether the effect must be scheduled. prev holds the
// stored previous list, or nil on first mount.
func depsChanged(prev any, deps []any) bool {
	if deps == nil {
		return true
	}
	old, ok := prev.([]any)
	if !ok {
		// First mount. Runs even for an empty list.
		return true
	}
	if len(old) != len(deps) {
		return true
	}
	for i := range deps {
		if !depEqual(old[i], deps[i]) {
			return true
		}
	}
	return false
}

// depEqual is a shallow identity/value comparison for one dependency entry.
func depEqual(a, b any) bool {
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
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Func || vb.Kind() == reflect.Func {
		return va.Kind() == vb.Kind() && va.Pointer() == vb.Pointer()
	}
	return reflect.DeepEqual(a, b)
}
