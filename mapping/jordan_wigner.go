package mapping

import (
	"fmt"

	"github.com/arloliu/fermihamil/errs"
	"github.com/arloliu/fermihamil/fermion"
	"github.com/arloliu/fermihamil/qubit"
	"github.com/arloliu/fermihamil/terms"
)

// JordanWigner maps a fermionic operator sum onto a qubit register of
// qubit.Width positions. It borrows the input sum read-only; every AddTo
// call folds all of its terms into the destination sum.
//
//	fermiSum := terms.NewFermionSum[float64]()
//	p := fermion.OrbitalWithIndex(11)
//	term, _ := fermion.OneElectron(p, p)
//	fermiSum.Add(term, 1.0)
//
//	pauliSum := terms.NewPauliSum[float64]()
//	if err := mapping.NewJordanWigner(fermiSum).AddTo(pauliSum); err != nil {
//	    return err
//	}
//	// pauliSum now holds I with weight 0.5 and Z_11 with weight -0.5.
type JordanWigner[T terms.Float] struct {
	repr *terms.FermionSum[T]
}

// NewJordanWigner creates a Jordan-Wigner mapping over the given fermionic
// sum.
func NewJordanWigner[T terms.Float](repr *terms.FermionSum[T]) *JordanWigner[T] {
	return &JordanWigner[T]{repr: repr}
}

// AddTo expands every term of the source sum into its Pauli-string
// contributions and accumulates them into out.
//
// Terms are processed independently and atomically: if any orbital index of
// a term is at or beyond qubit.Width, AddTo returns errs.ErrIndexRange
// (wrapped) without having committed any contribution of that term.
// Contributions of terms processed before the failing one remain in out.
func (jw *JordanWigner[T]) AddTo(out *terms.PauliSum[T]) error {
	for term, coeff := range jw.repr.All() {
		if err := addTerm(term, coeff, out); err != nil {
			return err
		}
	}

	return nil
}

func addTerm[T terms.Float](term fermion.Term, coeff T, out *terms.PauliSum[T]) error {
	switch term.Kind() {
	case fermion.KindOffset:
		out.Add(qubit.Code{}, coeff)

		return nil
	case fermion.KindOneElectron:
		cr, an, _ := term.OneElectron()

		return oneElectron(cr.Index(), an.Index(), coeff, out)
	case fermion.KindTwoElectron:
		cr, an, _ := term.TwoElectron()

		return twoElectron(cr[0].Index(), cr[1].Index(), an[0].Index(), an[1].Index(), coeff, out)
	default:
		return fmt.Errorf("term kind %d: %w", term.Kind(), errs.ErrInvalidTerm)
	}
}

func checkIndex(name string, index uint32) error {
	if index >= qubit.Width {
		return fmt.Errorf("%s index %d exceeds register width %d: %w",
			name, index, qubit.Width, errs.ErrIndexRange)
	}

	return nil
}

func oneElectron[T terms.Float](cr, an uint32, coeff T, out *terms.PauliSum[T]) error {
	if cr == an {
		return oneElectronPP(cr, coeff, out)
	}

	return oneElectronPQ(cr, an, coeff, out)
}

// oneElectronPP expands the diagonal number term a†_p a_p into
// (I - Z_p)/2.
func oneElectronPP[T terms.Float](p uint32, coeff T, out *terms.PauliSum[T]) error {
	if err := checkIndex("cr", p); err != nil {
		return err
	}

	weight := coeff / 2

	var code qubit.Code
	out.Add(code, weight)

	code.SetUnchecked(int(p), qubit.Z)
	out.Add(code, -weight)

	return nil
}

// oneElectronPQ expands the hopping term a†_p a_q + a†_q a_p, p < q, into
// (X_p Z.. X_q + Y_p Z.. Y_q)/2 with the Z string spanning p+1..q-1.
func oneElectronPQ[T terms.Float](p, q uint32, coeff T, out *terms.PauliSum[T]) error {
	if err := checkIndex("cr", p); err != nil {
		return err
	}
	if err := checkIndex("an", q); err != nil {
		return err
	}

	weight := coeff / 2

	var code qubit.Code
	// Indices were bounds-checked above; canonical ordering gives p < q.
	for i := p + 1; i < q; i++ {
		code.SetUnchecked(int(i), qubit.Z)
	}
	code.SetUnchecked(int(p), qubit.X)
	code.SetUnchecked(int(q), qubit.X)
	out.Add(code, weight)

	code.SetUnchecked(int(p), qubit.Y)
	code.SetUnchecked(int(q), qubit.Y)
	out.Add(code, weight)

	return nil
}

func twoElectron[T terms.Float](p, q, r, s uint32, coeff T, out *terms.PauliSum[T]) error {
	switch {
	case p == s && q == r:
		return twoElectronPQ(p, q, coeff, out)
	case q == r:
		return twoElectronPQS(p, q, s, coeff, out)
	default:
		return twoElectronPQRS(p, q, r, s, coeff, out)
	}
}

// twoElectronPQ expands the number-number term a†_p a†_q a_q a_p into
// (I - Z_p - Z_q + Z_p Z_q)/4.
func twoElectronPQ[T terms.Float](p, q uint32, coeff T, out *terms.PauliSum[T]) error {
	if err := checkIndex("p", p); err != nil {
		return err
	}
	if err := checkIndex("q", q); err != nil {
		return err
	}

	weight := coeff / 4

	var code qubit.Code
	out.Add(code, weight)

	code.SetUnchecked(int(p), qubit.Z)
	out.Add(code, -weight)

	code.SetUnchecked(int(p), qubit.I)
	code.SetUnchecked(int(q), qubit.Z)
	out.Add(code, -weight)

	code.SetUnchecked(int(p), qubit.Z)
	out.Add(code, weight)

	return nil
}

// twoElectronPQS expands the three-index term sharing the orbital q between
// the creation and annihilation pairs. The Z string spans p+1..s-1; the four
// strings differ by the X/Y letters on p, s and the presence of Z_q.
func twoElectronPQS[T terms.Float](p, q, s uint32, coeff T, out *terms.PauliSum[T]) error {
	if err := checkIndex("p", p); err != nil {
		return err
	}
	if err := checkIndex("q", q); err != nil {
		return err
	}
	if err := checkIndex("s", s); err != nil {
		return err
	}

	weight := coeff / 4

	var code qubit.Code
	for i := p + 1; i < s; i++ {
		code.SetUnchecked(int(i), qubit.Z)
	}
	code.SetUnchecked(int(p), qubit.X)
	code.SetUnchecked(int(s), qubit.X)
	out.Add(code, weight)

	code.SetUnchecked(int(q), qubit.Z)
	out.Add(code, -weight)

	code.SetUnchecked(int(p), qubit.Y)
	code.SetUnchecked(int(s), qubit.Y)
	out.Add(code, -weight)

	code.SetUnchecked(int(q), qubit.I)
	out.Add(code, weight)

	return nil
}

// twoElectronPQRS expands the general four-index term. Z strings span
// p+1..q-1 and s+1..r-1; the eight strings on positions {p,q,r,s} carry the
// fixed sign pattern XXXX:+, XXYY:-, XYXY:+, YXXY:+, YXYX:+, YYXX:-,
// XYYX:+, YYYY:+, each weighted coeff/8.
func twoElectronPQRS[T terms.Float](p, q, r, s uint32, coeff T, out *terms.PauliSum[T]) error {
	if err := checkIndex("p", p); err != nil {
		return err
	}
	if err := checkIndex("q", q); err != nil {
		return err
	}
	if err := checkIndex("r", r); err != nil {
		return err
	}
	if err := checkIndex("s", s); err != nil {
		return err
	}

	weight := coeff / 8

	var base qubit.Code
	for i := p + 1; i < q; i++ {
		base.SetUnchecked(int(i), qubit.Z)
	}
	for i := s + 1; i < r; i++ {
		base.SetUnchecked(int(i), qubit.Z)
	}

	letters := [8]struct {
		ops  [4]qubit.Pauli
		sign T
	}{
		{[4]qubit.Pauli{qubit.X, qubit.X, qubit.X, qubit.X}, 1},
		{[4]qubit.Pauli{qubit.X, qubit.X, qubit.Y, qubit.Y}, -1},
		{[4]qubit.Pauli{qubit.X, qubit.Y, qubit.X, qubit.Y}, 1},
		{[4]qubit.Pauli{qubit.Y, qubit.X, qubit.X, qubit.Y}, 1},
		{[4]qubit.Pauli{qubit.Y, qubit.X, qubit.Y, qubit.X}, 1},
		{[4]qubit.Pauli{qubit.Y, qubit.Y, qubit.X, qubit.X}, -1},
		{[4]qubit.Pauli{qubit.X, qubit.Y, qubit.Y, qubit.X}, 1},
		{[4]qubit.Pauli{qubit.Y, qubit.Y, qubit.Y, qubit.Y}, 1},
	}

	for _, l := range letters {
		code := base
		code.SetUnchecked(int(p), l.ops[0])
		code.SetUnchecked(int(q), l.ops[1])
		code.SetUnchecked(int(r), l.ops[2])
		code.SetUnchecked(int(s), l.ops[3])
		out.Add(code, l.sign*weight)
	}

	return nil
}
