package terms

import (
	"github.com/arloliu/fermihamil/fermion"
	"github.com/arloliu/fermihamil/format"
)

// FermionSum accumulates coefficients for second-quantized fermionic terms.
type FermionSum[T Float] struct {
	Sum[T, fermion.Term]
}

// NewFermionSum creates an empty fermionic sum.
func NewFermionSum[T Float]() *FermionSum[T] {
	return &FermionSum[T]{Sum: *NewSum[T, fermion.Term]()}
}

// NewFermionSumWithCapacity creates an empty fermionic sum sized for about
// n distinct terms.
func NewFermionSumWithCapacity[T Float](n int) *FermionSum[T] {
	return &FermionSum[T]{Sum: *NewSumWithCapacity[T, fermion.Term](n)}
}

// MarshalJSON encodes the sum as the "fermions" sumrepr envelope.
func (s *FermionSum[T]) MarshalJSON() ([]byte, error) {
	return marshalSum(&s.Sum, format.EncodingFermions)
}

// UnmarshalJSON decodes a "fermions" sumrepr envelope, accumulating
// duplicate codes additively.
func (s *FermionSum[T]) UnmarshalJSON(data []byte) error {
	return unmarshalSum[T, fermion.Term, *fermion.Term](data, format.EncodingFermions, &s.Sum)
}
