package terms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fermihamil/errs"
	"github.com/arloliu/fermihamil/fermion"
	"github.com/arloliu/fermihamil/qubit"
)

func TestFermionSumMarshalJSON(t *testing.T) {
	s := NewFermionSum[float64]()
	one, _ := fermion.OneElectron(fermion.OrbitalWithIndex(0), fermion.OrbitalWithIndex(1))
	s.Add(fermion.Offset(), 0.75)
	s.Add(one, 0.25)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var env struct {
		Type     string `json:"type"`
		Encoding string `json:"encoding"`
		Terms    []struct {
			Code  json.RawMessage `json:"code"`
			Value float64         `json:"value"`
		} `json:"terms"`
	}
	require.NoError(t, json.Unmarshal(data, &env))
	require.Equal(t, "sumrepr", env.Type)
	require.Equal(t, "fermions", env.Encoding)
	require.Len(t, env.Terms, 2)
}

func TestFermionSumUnmarshalJSON(t *testing.T) {
	payload := `{
		"type": "sumrepr",
		"encoding": "fermions",
		"terms": [
			{"code": [], "value": 0.75},
			{"code": [0, 1], "value": 0.25},
			{"code": [1, 2, 5, 4], "value": -0.5}
		]
	}`

	s := NewFermionSum[float64]()
	require.NoError(t, json.Unmarshal([]byte(payload), s))
	require.Equal(t, 3, s.Len())

	require.InDelta(t, 0.75, s.Coeff(fermion.Offset()), 1e-12)

	one, _ := fermion.OneElectron(fermion.OrbitalWithIndex(0), fermion.OrbitalWithIndex(1))
	require.InDelta(t, 0.25, s.Coeff(one), 1e-12)

	two, _ := fermion.TwoElectron(
		fermion.OrbitalWithIndex(1), fermion.OrbitalWithIndex(2),
		fermion.OrbitalWithIndex(5), fermion.OrbitalWithIndex(4),
	)
	require.InDelta(t, -0.5, s.Coeff(two), 1e-12)
}

func TestFermionSumUnmarshalDuplicatesAccumulate(t *testing.T) {
	payload := `{
		"type": "sumrepr",
		"encoding": "fermions",
		"terms": [
			{"code": [0, 1], "value": 0.1},
			{"code": [0, 1], "value": 0.09}
		]
	}`

	s := NewFermionSum[float64]()
	require.NoError(t, json.Unmarshal([]byte(payload), s))
	require.Equal(t, 1, s.Len())

	one, _ := fermion.OneElectron(fermion.OrbitalWithIndex(0), fermion.OrbitalWithIndex(1))
	require.InDelta(t, 0.19, s.Coeff(one), 1e-12)
}

func TestFermionSumUnmarshalErrors(t *testing.T) {
	s := NewFermionSum[float64]()

	err := json.Unmarshal([]byte(`{"type":"other","encoding":"fermions","terms":[]}`), s)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	err = json.Unmarshal([]byte(`{"type":"sumrepr","encoding":"qubits","terms":[]}`), s)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	err = json.Unmarshal([]byte(`{"type":"sumrepr","encoding":"fermions","terms":[{"code":[2,1],"value":1}]}`), s)
	require.ErrorIs(t, err, errs.ErrInvalidTerm)
}

func TestPauliSumJSONRoundTrip(t *testing.T) {
	s := NewPauliSum[float64]()
	s.Add(qubit.Code{}, 1.0)
	s.Add(qubit.CodeFromPaulis(qubit.I, qubit.X, qubit.Y, qubit.Z), -0.5)
	s.Add(qubit.NewCode(0, 3), 0.25)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	got := NewPauliSum[float64]()
	require.NoError(t, json.Unmarshal(data, got))
	require.Equal(t, s.Len(), got.Len())
	for code, coeff := range s.All() {
		require.InDelta(t, coeff, got.Coeff(code), 1e-12, "code %s", code)
	}
}

func TestPauliSumUnmarshalRejectsFermions(t *testing.T) {
	s := NewPauliSum[float64]()
	err := json.Unmarshal([]byte(`{"type":"sumrepr","encoding":"fermions","terms":[]}`), s)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestFermionSumJSONRoundTrip(t *testing.T) {
	s := NewFermionSum[float64]()
	one, _ := fermion.OneElectron(fermion.OrbitalWithIndex(3), fermion.OrbitalWithIndex(8))
	two, _ := fermion.TwoElectron(
		fermion.OrbitalWithIndex(11), fermion.OrbitalWithIndex(32),
		fermion.OrbitalWithIndex(31), fermion.OrbitalWithIndex(19),
	)
	s.Add(fermion.Offset(), 0.12345)
	s.Add(one, -0.5)
	s.Add(two, 0.25)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	got := NewFermionSum[float64]()
	require.NoError(t, json.Unmarshal(data, got))
	require.Equal(t, s.Len(), got.Len())
	for term, coeff := range s.All() {
		require.InDelta(t, coeff, got.Coeff(term), 1e-12, "term %s", term)
	}
}
