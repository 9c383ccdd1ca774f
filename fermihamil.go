// Package fermihamil encodes fermionic interaction Hamiltonians as sums of
// multi-qubit Pauli strings.
//
// A second-quantized electronic Hamiltonian is a weighted sum of offset,
// one-electron and two-electron interaction terms over spin orbitals. The
// Jordan-Wigner transform maps each term onto Pauli strings over a register
// of up to 64 qubits, preserving the canonical anticommutation relations
// through Z-parity strings.
//
// # Core Features
//
//   - Bit-packed Pauli strings: 64 positions in two 64-bit words
//   - Generic coefficient accumulators keyed by term or Pauli string
//   - Jordan-Wigner transform with per-term atomicity on index errors
//   - JSON envelope and binary hamfile container serialization
//   - Optional payload compression (None, Zstd, S2, LZ4)
//   - Built-in xxHash64 checksums for container integrity
//
// # Basic Usage
//
// Building a fermionic sum and mapping it onto qubits:
//
//	import "github.com/arloliu/fermihamil"
//
//	fermiSum := fermihamil.NewFermionSum()
//
//	// One-electron interaction between orbitals 0 and 1.
//	p := fermion.OrbitalWithIndex(0)
//	q := fermion.OrbitalWithIndex(1)
//	term, _ := fermion.OneElectron(p, q)
//	fermiSum.Add(term, 0.12345)
//
//	pauliSum := fermihamil.NewPauliSum()
//	if err := fermihamil.Transform(fermiSum, pauliSum); err != nil {
//	    return err
//	}
//
//	for code, coeff := range pauliSum.All() {
//	    fmt.Printf("%s %v\n", code, coeff)
//	}
//
// Serializing to a hamfile container:
//
//	data, _ := hamfile.WriteFermionSum(fermiSum,
//	    hamfile.WithCompression(format.CompressionZstd))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fermion,
// qubit, terms and mapping packages, simplifying the most common use cases
// with float64 coefficients. For generic coefficient types and fine-grained
// control, use those packages directly.
package fermihamil

import (
	"github.com/arloliu/fermihamil/mapping"
	"github.com/arloliu/fermihamil/terms"
)

// FermionSum is a fermionic sum with float64 coefficients.
type FermionSum = terms.FermionSum[float64]

// PauliSum is a Pauli-string sum with float64 coefficients.
type PauliSum = terms.PauliSum[float64]

// NewFermionSum creates an empty fermionic sum with float64 coefficients.
func NewFermionSum() *FermionSum {
	return terms.NewFermionSum[float64]()
}

// NewPauliSum creates an empty Pauli-string sum with float64 coefficients.
func NewPauliSum() *PauliSum {
	return terms.NewPauliSum[float64]()
}

// Transform folds the Jordan-Wigner expansion of every term in fermiSum into
// pauliSum. See mapping.JordanWigner for atomicity guarantees.
func Transform(fermiSum *FermionSum, pauliSum *PauliSum) error {
	return mapping.NewJordanWigner(fermiSum).AddTo(pauliSum)
}
