package gen

import (
	"iter"
	"math/rand/v2"

	"github.com/arloliu/fermihamil/fermion"
	"github.com/arloliu/fermihamil/qubit"
	"github.com/arloliu/fermihamil/terms"
)

// Orbitals returns an iterator over orbitals with indices in [lo, hi).
func Orbitals(lo, hi uint32) iter.Seq[fermion.Orbital] {
	return func(yield func(fermion.Orbital) bool) {
		for idx := lo; idx < hi; idx++ {
			if !yield(fermion.OrbitalWithIndex(idx)) {
				return
			}
		}
	}
}

// Pairs returns an iterator over all ordered pairs of elements from items,
// including pairs of an element with itself.
func Pairs[T any](items []T) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for _, a := range items {
			for _, b := range items {
				if !yield(a, b) {
					return
				}
			}
		}
	}
}

// RandomFermionSum generates numTerms random fermionic interaction terms with
// orbital indices up to maxOrbitalIndex inclusive and coefficients uniform in
// [-1, 1).
//
// Each term is drawn uniformly from the three interaction categories: offset,
// one-electron and two-electron. Index order invariants are satisfied by
// construction. maxOrbitalIndex must be at least 3 so both electron
// categories have room to draw valid index combinations.
func RandomFermionSum(rng *rand.Rand, numTerms int, maxOrbitalIndex uint32) *terms.FermionSum[float64] {
	repr := terms.NewFermionSumWithCapacity[float64](numTerms)
	maxVal := maxOrbitalIndex

	for count := 0; count < numTerms; count++ {
		coeff := randCoeff(rng)
		switch rng.IntN(3) {
		case 0:
			repr.Add(fermion.Offset(), coeff)
		case 1:
			p := rng.Uint32N(maxVal - 1)
			q := p + 1 + rng.Uint32N(maxVal-p)
			term, _ := fermion.OneElectron(
				fermion.OrbitalWithIndex(p),
				fermion.OrbitalWithIndex(q),
			)
			repr.Add(term, coeff)
		case 2:
			p := rng.Uint32N(maxVal - 2)
			q := p + 1 + rng.Uint32N(maxVal-p)
			s := p + rng.Uint32N(maxVal-1-p)
			r := s + 1 + rng.Uint32N(maxVal-s)
			term, _ := fermion.TwoElectron(
				fermion.OrbitalWithIndex(p),
				fermion.OrbitalWithIndex(q),
				fermion.OrbitalWithIndex(r),
				fermion.OrbitalWithIndex(s),
			)
			repr.Add(term, coeff)
		}
	}

	return repr
}

// RandomPauliSum generates numTerms random Pauli strings over the full
// 64-position register with coefficients uniform in [-1, 1).
func RandomPauliSum(rng *rand.Rand, numTerms int) *terms.PauliSum[float64] {
	repr := terms.NewPauliSumWithCapacity[float64](numTerms)
	for count := 0; count < numTerms; count++ {
		repr.Add(qubit.NewCode(rng.Uint64(), rng.Uint64()), randCoeff(rng))
	}

	return repr
}

// DenseFermionSum builds a Hamiltonian with every valid one- and two-electron
// interaction over orbitals with indices in [0, numOrbitals), plus a unit
// offset. Interaction coefficients are uniform in [-1, 1).
//
// For 64 orbitals this produces several million terms, which makes it a
// useful stress input for the Jordan-Wigner mapping.
func DenseFermionSum(rng *rand.Rand, numOrbitals uint32) *terms.FermionSum[float64] {
	orbitals := make([]fermion.Orbital, 0, numOrbitals)
	for orb := range Orbitals(0, numOrbitals) {
		orbitals = append(orbitals, orb)
	}

	repr := terms.NewFermionSum[float64]()
	repr.Add(fermion.Offset(), 1.0)

	pairs := make([][2]fermion.Orbital, 0, int(numOrbitals)*int(numOrbitals))
	for p, q := range Pairs(orbitals) {
		pairs = append(pairs, [2]fermion.Orbital{p, q})
		if term, ok := fermion.OneElectron(p, q); ok {
			repr.Add(term, randCoeff(rng))
		}
	}

	for a, b := range Pairs(pairs) {
		if term, ok := fermion.TwoElectron(a[0], a[1], b[0], b[1]); ok {
			repr.Add(term, randCoeff(rng))
		}
	}

	return repr
}

func randCoeff(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}
