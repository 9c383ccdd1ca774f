package terms

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/fermihamil/errs"
	"github.com/arloliu/fermihamil/format"
)

// envelopeType is the fixed "type" discriminator of the sum envelope.
const envelopeType = "sumrepr"

type sumEnvelope struct {
	Type     string    `json:"type"`
	Encoding string    `json:"encoding"`
	Terms    []sumTerm `json:"terms"`
}

type sumTerm struct {
	Code  json.RawMessage `json:"code"`
	Value float64         `json:"value"`
}

type marshalableCode interface {
	comparable
	json.Marshaler
}

func marshalSum[T Float, C marshalableCode](s *Sum[T, C], encoding format.Encoding) ([]byte, error) {
	env := sumEnvelope{
		Type:     envelopeType,
		Encoding: encoding.String(),
		Terms:    make([]sumTerm, 0, s.Len()),
	}

	for code, coeff := range s.All() {
		raw, err := code.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshal code %v: %w", code, err)
		}
		env.Terms = append(env.Terms, sumTerm{Code: raw, Value: float64(coeff)})
	}

	return json.Marshal(env)
}

func unmarshalSum[T Float, C comparable, PC interface {
	*C
	json.Unmarshaler
}](data []byte, encoding format.Encoding, into *Sum[T, C],
) error {
	var env sumEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	if env.Type != envelopeType {
		return fmt.Errorf("type %q, want %q: %w", env.Type, envelopeType, errs.ErrInvalidEncoding)
	}
	if env.Encoding != encoding.String() {
		return fmt.Errorf("encoding %q, want %q: %w", env.Encoding, encoding, errs.ErrInvalidEncoding)
	}

	into.m = make(map[C]T, len(env.Terms))
	for i, term := range env.Terms {
		var code C
		if err := PC(&code).UnmarshalJSON(term.Code); err != nil {
			return fmt.Errorf("term %d: %w", i, err)
		}
		// Duplicate codes accumulate additively, same as Add.
		into.Add(code, T(term.Value))
	}

	return nil
}
