package values

import "sync"

// Cell is the unit of aliasing: a shared, interior-mutable container
// holding a runtime value. A named binding is a cell; reading the
// binding yields the shared cell, so two bindings to the same object
// observe each other's mutations. This is the only form of aliasing in
// the core.
type Cell struct {
	mu    sync.RWMutex
	value DataObj
}

// NewCell wraps an initial value in a fresh cell.
func NewCell(value DataObj) *Cell {
	return &Cell{value: value}
}

// Get reads the cell's current value.
func (c *Cell) Get() DataObj {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set overwrites the cell's value in place — every other holder of this
// same cell observes the change.
func (c *Cell) Set(value DataObj) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
}
