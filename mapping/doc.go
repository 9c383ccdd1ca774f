// Package mapping transforms fermionic operator sums into qubit operator
// sums.
//
// The only mapping currently implemented is the Jordan-Wigner encoding:
// every creation operator a†_i expands to (X_i - iY_i)/2 times a Z string
// over all lower positions, every annihilation operator a_i to
// (X_i + iY_i)/2 times the same string. Substituting these into each
// canonical integral term and simplifying cancels all imaginary parts, so
// each fermionic term contributes between one and eight Pauli strings with
// real weights. The Z strings between paired indices are what preserve the
// fermionic anticommutation relations on the qubit side.
package mapping
