// Package gen provides generators for orbitals and Hamiltonians.
//
// The random generators produce sums with uniformly distributed coefficients
// in [-1, 1), useful for benchmarks and for exercising the Jordan-Wigner
// mapping at scale. The dense generator enumerates every valid one- and
// two-electron interaction over a range of orbitals.
package gen
