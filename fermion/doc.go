// Package fermion provides the fermionic side of the Hamiltonian model:
// spin-orbital indexing and the canonical second-quantized term variants.
//
// A Term is one of three shapes: the constant offset, a one-electron
// integral with a single creation/annihilation pair, or a two-electron
// integral with two pairs. The constructors enforce the canonical index
// ordering (creation indices ascending, annihilation indices descending for
// the two-electron case) required by the Jordan-Wigner case analysis, so a
// malformed ordering can never reach an accumulator: the constructors simply
// report no term.
package fermion
