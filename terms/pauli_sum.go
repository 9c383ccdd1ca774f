package terms

import (
	"github.com/arloliu/fermihamil/format"
	"github.com/arloliu/fermihamil/qubit"
)

// PauliSum accumulates coefficients for multi-qubit Pauli strings.
type PauliSum[T Float] struct {
	Sum[T, qubit.Code]
}

// NewPauliSum creates an empty Pauli-string sum.
func NewPauliSum[T Float]() *PauliSum[T] {
	return &PauliSum[T]{Sum: *NewSum[T, qubit.Code]()}
}

// NewPauliSumWithCapacity creates an empty Pauli-string sum sized for about
// n distinct codes.
func NewPauliSumWithCapacity[T Float](n int) *PauliSum[T] {
	return &PauliSum[T]{Sum: *NewSumWithCapacity[T, qubit.Code](n)}
}

// MarshalJSON encodes the sum as the "qubits" sumrepr envelope.
func (s *PauliSum[T]) MarshalJSON() ([]byte, error) {
	return marshalSum(&s.Sum, format.EncodingQubits)
}

// UnmarshalJSON decodes a "qubits" sumrepr envelope, accumulating duplicate
// codes additively.
func (s *PauliSum[T]) UnmarshalJSON(data []byte) error {
	return unmarshalSum[T, qubit.Code, *qubit.Code](data, format.EncodingQubits, &s.Sum)
}
