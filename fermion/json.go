package fermion

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/fermihamil/errs"
)

// MarshalJSON encodes the term as its orbital index array: [] for the
// offset, [cr, an] for one-electron terms, [cr0, cr1, an0, an1] for
// two-electron terms.
func (t Term) MarshalJSON() ([]byte, error) {
	idxs := t.Indices()
	if idxs == nil {
		idxs = []uint32{}
	}

	return json.Marshal(idxs)
}

// UnmarshalJSON decodes an orbital index array of length 0, 2 or 4 and
// validates the canonical ordering through the term constructors.
func (t *Term) UnmarshalJSON(data []byte) error {
	var idxs []uint32
	if err := json.Unmarshal(data, &idxs); err != nil {
		return err
	}

	switch len(idxs) {
	case 0:
		*t = Offset()
	case 2:
		term, ok := OneElectron(OrbitalWithIndex(idxs[0]), OrbitalWithIndex(idxs[1]))
		if !ok {
			return fmt.Errorf("one-electron indices %v: %w", idxs, errs.ErrInvalidTerm)
		}
		*t = term
	case 4:
		term, ok := TwoElectron(
			OrbitalWithIndex(idxs[0]), OrbitalWithIndex(idxs[1]),
			OrbitalWithIndex(idxs[2]), OrbitalWithIndex(idxs[3]),
		)
		if !ok {
			return fmt.Errorf("two-electron indices %v: %w", idxs, errs.ErrInvalidTerm)
		}
		*t = term
	default:
		return fmt.Errorf("index array length %d: %w", len(idxs), errs.ErrInvalidTerm)
	}

	return nil
}
