package qubit

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/fermihamil/errs"
)

// MarshalJSON encodes the operator as its one-character name, e.g. "X".
func (p Pauli) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, errs.ErrInvalidPauli
	}

	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a one-character operator name.
func (p *Pauli) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParsePauli(s)
	if err != nil {
		return fmt.Errorf("pauli %q: %w", s, err)
	}
	*p = parsed

	return nil
}

// MarshalJSON encodes the code as a string of 1 to Width operator letters
// with trailing identities truncated, e.g. "IXYZ".
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a string of operator letters. The string must hold
// between 1 and Width characters, each one of I, X, Y or Z; positions beyond
// the string length decode as the identity.
func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if len(s) == 0 || len(s) > Width {
		return fmt.Errorf("pauli string length %d outside 1..%d: %w", len(s), Width, errs.ErrIndexRange)
	}

	var code Code
	for i := range len(s) {
		p, err := ParsePauli(s[i : i+1])
		if err != nil {
			return fmt.Errorf("pauli string position %d: %w", i, err)
		}
		code.SetUnchecked(i, p)
	}
	*c = code

	return nil
}
