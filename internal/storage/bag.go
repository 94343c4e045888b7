// Package storage provides the in-memory containers the catalog is built
// on.
package storage

import (
	"slices"

	"github.com/hammamikhairi/bistro/internal/logger"
)

// Unbounded disables the capacity limit of a Bag.
const Unbounded = 0

// Bag is a collection of distinct items, where "distinct" is decided by
// an equality function rather than ==. Items keep insertion order; a
// removal closes the gap. Not safe for concurrent use.
type Bag[T any] struct {
	items    []T
	capacity int
	equal    func(a, b T) bool
	log      *logger.Logger
}

// NewBag creates an empty bag. capacity of Unbounded (0) means no limit.
func NewBag[T any](capacity int, equal func(a, b T) bool, log *logger.Logger) *Bag[T] {
	if capacity < 0 {
		capacity = Unbounded
	}
	return &Bag[T]{
		capacity: capacity,
		equal:    equal,
		log:      log,
	}
}

// Len returns the number of items held.
func (b *Bag[T]) Len() int { return len(b.items) }

// Cap returns the capacity, or Unbounded.
func (b *Bag[T]) Cap() int { return b.capacity }

// Full reports whether no further item fits.
func (b *Bag[T]) Full() bool {
	return b.capacity != Unbounded && len(b.items) >= b.capacity
}

// Add inserts item unless an equal item is present or the bag is full.
func (b *Bag[T]) Add(item T) bool {
	if b.Full() {
		b.log.Debug("bag full (capacity=%d), rejecting item", b.capacity)
		return false
	}
	if b.indexOf(item) >= 0 {
		b.log.Debug("duplicate item rejected")
		return false
	}
	b.items = append(b.items, item)
	return true
}

// Remove deletes the first item equal to item and returns it.
func (b *Bag[T]) Remove(item T) (T, bool) {
	var zero T
	i := b.indexOf(item)
	if i < 0 {
		return zero, false
	}
	removed := b.items[i]
	b.items = slices.Delete(b.items, i, i+1)
	return removed, true
}

// Contains reports whether an equal item is present.
func (b *Bag[T]) Contains(item T) bool {
	return b.indexOf(item) >= 0
}

// Items returns a snapshot of the contents in insertion order. Mutating
// the returned slice does not affect the bag.
func (b *Bag[T]) Items() []T {
	return slices.Clone(b.items)
}

func (b *Bag[T]) indexOf(item T) int {
	return slices.IndexFunc(b.items, func(it T) bool { return b.equal(it, item) })
}
