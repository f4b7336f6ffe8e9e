package hooks

// Store maps component instance keys to their cell lists for one container.
// The reconciler builds a fresh store on every render pass; instances
// present in the old store but absent from the new one have unmounted.
type Store struct {
	cells map[string][]*Cell
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{cells: make(map[string][]*Cell)}
}

// Cells returns the cell list recorded for the instance key, or nil.
func (s *Store) Cells(key string) []*Cell {
	if s == nil {
		return nil
	}
	return s.cells[key]
}

// Put records the cell list for the instance key, replacing any previous
// entry.
func (s *Store) Put(key string, cells []*Cell) {
	s.cells[key] = cells
}

// Len returns the number of instances in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Flush invokes every pending effect exactly once, captures its returned
// Cleanup on the cell, and clears the pending marker. Within one instance
// effects fire in hook-acquisition order.
func (s *Store) Flush() {
	if s == nil {
		return
	}
	for _, cells := range s.cells {
		for _, cell := range cells {
			if cell.pending == nil {
				continue
			}
			fn := cell.pending
			cell.pending = nil
			cell.cleanup = fn()
		}
	}
}

// DisposeMissing runs the recorded cleanups of every instance present in
// this store but absent from next. Cleanup order across instances is
// unspecified; within one instance cells clean up in acquisition order.
func (s *Store) DisposeMissing(next *Store) {
	if s == nil {
		return
	}
	for key, cells := range s.cells {
		if next != nil {
			if _, ok := next.cells[key]; ok {
				continue
			}
		}
		for _, cell := range cells {
			if cell.cleanup != nil {
				cell.cleanup()
				cell.cleanup = nil
			}
		}
	}
}
