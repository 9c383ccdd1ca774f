package fermion

import (
	"fmt"
	"math"

	"github.com/arloliu/fermihamil/errs"
)

// Spin is the spin projection of an electron in a spatial orbital.
type Spin uint8

const (
	SpinDown Spin = 0 // SpinDown is the spin-1/2 "down" projection.
	SpinUp   Spin = 1 // SpinUp is the spin-1/2 "up" projection.
)

func (s Spin) String() string {
	if s == SpinUp {
		return "up"
	}

	return "down"
}

// Orbital is a spin-orbital: one spatial orbital combined with one spin
// value, addressed by the single index 2*n + spin. Orbitals are immutable
// comparable values.
type Orbital struct {
	index uint32
}

// NewOrbital builds the spin-orbital for spatial orbital n with the given
// spin. It returns errs.ErrIndexRange if 2*n + spin overflows the index
// width.
func NewOrbital(n uint32, s Spin) (Orbital, error) {
	if n > (math.MaxUint32-1)/2 {
		return Orbital{}, fmt.Errorf("orbital %d: %w", n, errs.ErrIndexRange)
	}

	return Orbital{index: 2*n + uint32(s)}, nil
}

// OrbitalWithIndex builds a spin-orbital directly from its index.
func OrbitalWithIndex(index uint32) Orbital {
	return Orbital{index: index}
}

// Index returns the spin-orbital index.
func (o Orbital) Index() uint32 {
	return o.index
}

// Spin returns the spin projection encoded in the index parity.
func (o Orbital) Spin() Spin {
	return Spin(o.index & 1)
}

// Spatial returns the spatial orbital number.
func (o Orbital) Spatial() uint32 {
	return o.index / 2
}
