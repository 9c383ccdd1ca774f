package fermion

import (
	"fmt"
	"strings"
)

// TermKind discriminates the three canonical term shapes.
type TermKind uint8

const (
	KindOffset      TermKind = iota // KindOffset is the constant/identity term.
	KindOneElectron                 // KindOneElectron is a single creation/annihilation pair.
	KindTwoElectron                 // KindTwoElectron is a double creation/annihilation pair.
)

// Term is a second-quantized Hamiltonian term in canonical form. It is a
// comparable value type with structural equality: two terms are the same
// accumulator key exactly when their kind and orbital indices match.
//
// The zero value is the offset term. One- and two-electron terms are only
// obtainable through their constructors, which enforce the canonical index
// ordering.
type Term struct {
	kind TermKind
	orbs [4]Orbital
}

// Offset returns the constant/identity term.
func Offset() Term {
	return Term{}
}

// OneElectron builds a one-electron integral term with creation orbital cr
// and annihilation orbital an. Hermiticity folds the conjugate ordering into
// the same stored term, so the term exists only for cr <= an; otherwise ok
// is false and no term is produced.
func OneElectron(cr, an Orbital) (Term, bool) {
	if cr.Index() > an.Index() {
		return Term{}, false
	}

	return Term{
		kind: KindOneElectron,
		orbs: [4]Orbital{cr, an},
	}, true
}

// TwoElectron builds a two-electron integral term with creation orbitals
// (cr0, cr1) and annihilation orbitals (an0, an1). The canonical ordering
// requires cr0 < cr1 and an0 > an1 (the pairs need not be disjoint);
// otherwise ok is false and no term is produced.
func TwoElectron(cr0, cr1, an0, an1 Orbital) (Term, bool) {
	if cr0.Index() >= cr1.Index() || an0.Index() <= an1.Index() {
		return Term{}, false
	}

	return Term{
		kind: KindTwoElectron,
		orbs: [4]Orbital{cr0, cr1, an0, an1},
	}, true
}

// Kind returns the term shape.
func (t Term) Kind() TermKind {
	return t.kind
}

// OneElectron returns the creation and annihilation orbitals of a
// one-electron term. ok is false for any other term shape.
func (t Term) OneElectron() (cr, an Orbital, ok bool) {
	if t.kind != KindOneElectron {
		return Orbital{}, Orbital{}, false
	}

	return t.orbs[0], t.orbs[1], true
}

// TwoElectron returns the creation and annihilation orbital pairs of a
// two-electron term. ok is false for any other term shape.
func (t Term) TwoElectron() (cr, an [2]Orbital, ok bool) {
	if t.kind != KindTwoElectron {
		return [2]Orbital{}, [2]Orbital{}, false
	}

	return [2]Orbital{t.orbs[0], t.orbs[1]}, [2]Orbital{t.orbs[2], t.orbs[3]}, true
}

// Indices returns the orbital indices of the term in declaration order:
// empty for the offset, [cr, an] for one-electron terms and
// [cr0, cr1, an0, an1] for two-electron terms.
func (t Term) Indices() []uint32 {
	switch t.kind {
	case KindOneElectron:
		return []uint32{t.orbs[0].Index(), t.orbs[1].Index()}
	case KindTwoElectron:
		return []uint32{
			t.orbs[0].Index(), t.orbs[1].Index(),
			t.orbs[2].Index(), t.orbs[3].Index(),
		}
	default:
		return nil
	}
}

// String renders the term as its index list, e.g. "[]", "[1, 2]" or
// "[1, 2, 5, 4]".
func (t Term) String() string {
	idxs := t.Indices()
	parts := make([]string, len(idxs))
	for i, idx := range idxs {
		parts[i] = fmt.Sprintf("%d", idx)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
