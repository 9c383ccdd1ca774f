package terms

import (
	"iter"
)

// Float constrains the coefficient types a sum can accumulate.
type Float interface {
	~float32 | ~float64
}

// Sum is an additive mapping from an operator code to its accumulated
// coefficient. It holds at most one entry per distinct code.
//
// The zero value is not ready for use; construct sums with NewSum or
// NewSumWithCapacity.
type Sum[T Float, C comparable] struct {
	m map[C]T
}

// NewSum creates an empty sum.
func NewSum[T Float, C comparable]() *Sum[T, C] {
	return &Sum[T, C]{m: make(map[C]T)}
}

// NewSumWithCapacity creates an empty sum sized for about n distinct codes.
// The capacity is a hint for large expansions, not a limit.
func NewSumWithCapacity[T Float, C comparable](n int) *Sum[T, C] {
	return &Sum[T, C]{m: make(map[C]T, n)}
}

// Add accumulates delta onto the coefficient stored for code, inserting the
// entry if absent. A zero delta still creates or touches the entry; entries
// are never removed, even when their coefficient reaches zero.
func (s *Sum[T, C]) Add(code C, delta T) {
	s.m[code] += delta
}

// Coeff returns the coefficient accumulated for code, or zero if the code
// is absent. It never modifies the sum.
func (s *Sum[T, C]) Coeff(code C) T {
	return s.m[code]
}

// Len returns the number of distinct codes stored.
func (s *Sum[T, C]) Len() int {
	return len(s.m)
}

// All returns an iterator over the (code, coefficient) entries of the sum
// in unspecified order.
func (s *Sum[T, C]) All() iter.Seq2[C, T] {
	return func(yield func(C, T) bool) {
		for code, coeff := range s.m {
			if !yield(code, coeff) {
				return
			}
		}
	}
}
