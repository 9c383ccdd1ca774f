// Package qubit provides the qubit-side operator model: single-qubit Pauli
// operators, bit-packed multi-qubit Pauli strings, and the phase algebra of
// the Pauli group.
//
// # Pauli strings
//
// A Code packs a string of up to 64 Pauli operators into two 64-bit words,
// two bits per qubit position. The zero value is the identity string on all
// positions. Codes are plain comparable values: two codes are equal exactly
// when their packed words are bit-identical, trailing identities included.
//
//	var code qubit.Code
//	code.MustSet(0, qubit.X)
//	code.MustSet(3, qubit.Z)
//	fmt.Println(code) // XIIZ
//
// Bounds-checked accessors (At, Set, Update) are the public entry points.
// AtUnchecked and SetUnchecked skip the bounds check; their precondition is
// that the caller guarantees 0 <= index < Width.
//
// # Phase algebra
//
// Phase models the fourth roots of unity and Group pairs a Phase with a Code,
// giving the full multiplicative structure of the Pauli group. It is used to
// verify group properties of generated operator sets and is not needed by the
// Jordan-Wigner transform itself.
package qubit
