package qubit

import (
	"github.com/arloliu/fermihamil/errs"
)

// Pauli is a single-qubit Pauli operator encoded as a 2-bit value.
type Pauli uint8

const (
	I Pauli = 0x0 // I is the identity operator.
	X Pauli = 0x1 // X is the Pauli X operator.
	Y Pauli = 0x2 // Y is the Pauli Y operator.
	Z Pauli = 0x3 // Z is the Pauli Z operator.
)

// PauliFrom converts an integer value to a Pauli operator.
// Values outside 0..3 yield errs.ErrInvalidPauli.
func PauliFrom(value uint8) (Pauli, error) {
	if value > uint8(Z) {
		return I, errs.ErrInvalidPauli
	}

	return Pauli(value), nil
}

// ParsePauli converts a one-character operator name to a Pauli.
func ParsePauli(s string) (Pauli, error) {
	switch s {
	case "I":
		return I, nil
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	default:
		return I, errs.ErrInvalidPauli
	}
}

// Valid reports whether p encodes one of the four Pauli operators.
func (p Pauli) Valid() bool {
	return p <= Z
}

func (p Pauli) String() string {
	switch p {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "Unknown"
	}
}
