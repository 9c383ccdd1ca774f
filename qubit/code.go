package qubit

import (
	"iter"
	"math/bits"
	"strings"

	"github.com/arloliu/fermihamil/errs"
)

// Width is the number of qubit positions a Code can address.
const Width = 64

const (
	pauliMask     = 0b11 // 2 bits per position
	wordPositions = 32   // positions stored per 64-bit word
)

// Code is a string of Width Pauli operators packed into two 64-bit words,
// two bits per position. The low word holds positions 0-31, the high word
// positions 32-63. The zero value is the all-identity string.
//
// Code is a comparable value type; equality is bitwise equality of the
// packed words, so codes with identical non-trivial support but different
// packing are never conflated and trailing identities always compare equal.
type Code struct {
	lo uint64
	hi uint64
}

// NewCode constructs a Code directly from its packed words.
// No validation is performed; every bit pattern decodes to a valid string.
func NewCode(lo, hi uint64) Code {
	return Code{lo: lo, hi: hi}
}

// CodeFromPaulis builds a Code from a sequence of operators, position 0
// first. Operators beyond Width are ignored; missing positions default to
// the identity.
func CodeFromPaulis(paulis ...Pauli) Code {
	var code Code
	for i, p := range paulis {
		if i >= Width {
			break
		}
		code.SetUnchecked(i, p)
	}

	return code
}

// Words returns the packed low and high words of the code.
func (c Code) Words() (lo, hi uint64) {
	return c.lo, c.hi
}

// AtUnchecked decodes the operator at the given position without a bounds
// check. The caller guarantees 0 <= index < Width; any other index decodes
// garbage from an undefined bit range.
func (c Code) AtUnchecked(index int) Pauli {
	if index < wordPositions {
		return Pauli(c.lo >> (uint(index) * 2) & pauliMask)
	}

	return Pauli(c.hi >> (uint(index-wordPositions) * 2) & pauliMask)
}

// At decodes the operator at the given position.
// It reports false for positions outside 0..Width-1 and never panics.
func (c Code) At(index int) (Pauli, bool) {
	if index < 0 || index >= Width {
		return I, false
	}

	return c.AtUnchecked(index), true
}

// SetUnchecked stores the operator at the given position without a bounds
// check. The caller guarantees 0 <= index < Width.
func (c *Code) SetUnchecked(index int, p Pauli) {
	if index < wordPositions {
		shift := uint(index) * 2
		c.lo &^= pauliMask << shift
		c.lo |= uint64(p) << shift

		return
	}

	shift := uint(index-wordPositions) * 2
	c.hi &^= pauliMask << shift
	c.hi |= uint64(p) << shift
}

// Set stores the operator at the given position.
// It returns errs.ErrIndexRange for positions outside 0..Width-1.
func (c *Code) Set(index int, p Pauli) error {
	if index < 0 || index >= Width {
		return errs.ErrIndexRange
	}
	c.SetUnchecked(index, p)

	return nil
}

// MustSet stores the operator at the given position and panics if the
// position is outside 0..Width-1. It is meant for literal positions known
// to be in range, e.g. in tests and term builders.
func (c *Code) MustSet(index int, p Pauli) {
	if err := c.Set(index, p); err != nil {
		panic("qubit: index should be within 0..64")
	}
}

// Update applies fn to the operator at the given position and stores the
// result. It reports false, without calling fn, for out-of-range positions.
func (c *Code) Update(index int, fn func(Pauli) Pauli) bool {
	if index < 0 || index >= Width {
		return false
	}
	c.SetUnchecked(index, fn(c.AtUnchecked(index)))

	return true
}

// All returns an iterator over all Width positions of the code in order,
// trailing identities included. The sequence is restartable.
func (c Code) All() iter.Seq2[int, Pauli] {
	return func(yield func(int, Pauli) bool) {
		for i := range Width {
			if !yield(i, c.AtUnchecked(i)) {
				return
			}
		}
	}
}

// IsIdentity reports whether every position holds the identity operator.
func (c Code) IsIdentity() bool {
	return c.lo == 0 && c.hi == 0
}

// NumNontrivial returns the number of positions holding a non-identity
// operator.
func (c Code) NumNontrivial() int {
	const oddBits = 0x5555555555555555

	return bits.OnesCount64((c.lo|c.lo>>1)&oddBits) +
		bits.OnesCount64((c.hi|c.hi>>1)&oddBits)
}

// MinRegisterSize returns the smallest register width that still covers all
// non-identity positions of the code, i.e. one past the highest non-trivial
// position. The identity code needs no register at all and yields 0.
func (c Code) MinRegisterSize() int {
	if c.hi != 0 {
		return wordPositions + (bits.Len64(c.hi)+1)/2
	}

	return (bits.Len64(c.lo) + 1) / 2
}

// Compare totally orders codes by their packed words, high word first.
// It returns -1, 0 or 1 analogous to cmp.Compare.
func (c Code) Compare(other Code) int {
	switch {
	case c.hi != other.hi:
		if c.hi < other.hi {
			return -1
		}

		return 1
	case c.lo != other.lo:
		if c.lo < other.lo {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// String renders the code as a string of operator letters, position 0
// first, with trailing identities truncated. The identity code renders as
// a single "I".
func (c Code) String() string {
	size := c.MinRegisterSize()
	if size == 0 {
		return "I"
	}

	var sb strings.Builder
	sb.Grow(size)
	for i := range size {
		sb.WriteString(c.AtUnchecked(i).String())
	}

	return sb.String()
}
