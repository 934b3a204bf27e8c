package datagen

import (
	"sync/atomic"
)

// Nexter is a threadsafe monotonic unique id generator. Its lifecycle is
// scoped to a single generation run; each entity kind gets its own.
type Nexter struct {
	id *uint64
}

// NexterOption can be passed to NewNexter to modify its behavior.
type NexterOption func(n *Nexter)

// NexterStartFrom returns a NexterOption which makes the Nexter start from
// the given id rather than 0.
func NexterStartFrom(id uint64) NexterOption {
	return func(n *Nexter) {
		*n.id = id
	}
}

// NewNexter creates a new id generator starting at 0.
func NewNexter(opts ...NexterOption) *Nexter {
	var id uint64
	n := &Nexter{
		id: &id,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Next generates a new id and returns it.
func (n *Nexter) Next() (nextID uint64) {
	nextID = atomic.AddUint64(n.id, 1)
	return nextID - 1
}

// Last returns the most recently generated id.
func (n *Nexter) Last() (lastID uint64) {
	lastID = atomic.LoadUint64(n.id) - 1
	return
}
