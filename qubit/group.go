package qubit

// Phase is a fourth root of unity, the phase factor picked up when Pauli
// operators are multiplied.
type Phase uint8

const (
	PhasePlusOne  Phase = iota // +1
	PhaseMinusOne              // -1
	PhasePlusI                 // +i
	PhaseMinusI                // -i
)

// phaseMulTable[a][b] is the product of the two roots of unity.
var phaseMulTable = [4][4]Phase{
	{PhasePlusOne, PhaseMinusOne, PhasePlusI, PhaseMinusI},
	{PhaseMinusOne, PhasePlusOne, PhaseMinusI, PhasePlusI},
	{PhasePlusI, PhaseMinusI, PhaseMinusOne, PhasePlusOne},
	{PhaseMinusI, PhasePlusI, PhasePlusOne, PhaseMinusOne},
}

// PhaseIdentity returns the multiplicative identity +1.
func PhaseIdentity() Phase {
	return PhasePlusOne
}

// Mul returns the product of the two phases.
func (ph Phase) Mul(other Phase) Phase {
	return phaseMulTable[ph][other]
}

// Neg returns the additive inverse of the phase.
func (ph Phase) Neg() Phase {
	switch ph {
	case PhasePlusOne:
		return PhaseMinusOne
	case PhaseMinusOne:
		return PhasePlusOne
	case PhasePlusI:
		return PhaseMinusI
	default:
		return PhasePlusI
	}
}

// Conj returns the complex conjugate of the phase.
func (ph Phase) Conj() Phase {
	switch ph {
	case PhasePlusI:
		return PhaseMinusI
	case PhaseMinusI:
		return PhasePlusI
	default:
		return ph
	}
}

// Inverse returns the multiplicative inverse of the phase.
func (ph Phase) Inverse() Phase {
	return ph.Conj()
}

func (ph Phase) String() string {
	switch ph {
	case PhasePlusOne:
		return "+1"
	case PhaseMinusOne:
		return "-1"
	case PhasePlusI:
		return "+i"
	default:
		return "-i"
	}
}

// mulPauli multiplies two single-qubit Pauli operators and returns the
// resulting operator together with the phase picked up, per the usual
// relations XY = iZ, YZ = iX, ZX = iY and their reverses.
func mulPauli(a, b Pauli) (Phase, Pauli) {
	switch {
	case a == I:
		return PhasePlusOne, b
	case b == I:
		return PhasePlusOne, a
	case a == b:
		return PhasePlusOne, I
	}

	// a, b are distinct non-identity operators; the third one is the result.
	rest := X ^ Y ^ Z ^ a ^ b
	// Cyclic order X -> Y -> Z gives +i, anticyclic gives -i.
	if b == cyclicNext(a) {
		return PhasePlusI, rest
	}

	return PhaseMinusI, rest
}

func cyclicNext(p Pauli) Pauli {
	switch p {
	case X:
		return Y
	case Y:
		return Z
	default:
		return X
	}
}

// Group is an element of the Pauli group: a Pauli string together with a
// fourth-root-of-unity phase.
type Group struct {
	phase Phase
	code  Code
}

// NewGroup constructs a group element from its phase and Pauli string.
func NewGroup(phase Phase, code Code) Group {
	return Group{phase: phase, code: code}
}

// GroupFromCode wraps a Pauli string as a group element with phase +1.
func GroupFromCode(code Code) Group {
	return Group{phase: PhasePlusOne, code: code}
}

// GroupIdentity returns the group identity: phase +1, all-identity string.
func GroupIdentity() Group {
	return Group{}
}

// Phase returns the phase factor of the element.
func (g Group) Phase() Phase {
	return g.phase
}

// Code returns the Pauli string of the element.
func (g Group) Code() Code {
	return g.code
}

// Mul returns the group product g*h, multiplying position-wise and
// accumulating the phases picked up at each position.
func (g Group) Mul(h Group) Group {
	phase := g.phase.Mul(h.phase)

	var code Code
	for i := range Width {
		ph, p := mulPauli(g.code.AtUnchecked(i), h.code.AtUnchecked(i))
		phase = phase.Mul(ph)
		code.SetUnchecked(i, p)
	}

	return Group{phase: phase, code: code}
}

// Inverse returns the group inverse. Pauli strings square to the identity,
// so only the phase needs inverting.
func (g Group) Inverse() Group {
	return Group{phase: g.phase.Inverse(), code: g.code}
}

// IsHermitian reports whether the element is its own adjoint. Pauli strings
// are self-adjoint, so only the phase decides: the real phases +1 and -1
// give Hermitian elements, the imaginary ones do not.
func (g Group) IsHermitian() bool {
	return g.phase == PhasePlusOne || g.phase == PhaseMinusOne
}
