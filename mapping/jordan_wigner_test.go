package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fermihamil/errs"
	"github.com/arloliu/fermihamil/fermion"
	"github.com/arloliu/fermihamil/qubit"
	"github.com/arloliu/fermihamil/terms"
)

const mockCoeff = 0.12345

const epsilon = 1e-15

func transform(t *testing.T, fermiSum *terms.FermionSum[float64]) *terms.PauliSum[float64] {
	t.Helper()

	pauliSum := terms.NewPauliSum[float64]()
	require.NoError(t, NewJordanWigner(fermiSum).AddTo(pauliSum))

	return pauliSum
}

func TestJordanWignerOffset(t *testing.T) {
	fermiSum := terms.NewFermionSum[float64]()
	fermiSum.Add(fermion.Offset(), mockCoeff)

	pauliSum := transform(t, fermiSum)
	require.Equal(t, 1, pauliSum.Len())
	require.InDelta(t, mockCoeff, pauliSum.Coeff(qubit.Code{}), epsilon)
}

func checkOnePP(t *testing.T, index uint32) {
	t.Helper()

	fermiSum := terms.NewFermionSum[float64]()
	p := fermion.OrbitalWithIndex(index)
	term, ok := fermion.OneElectron(p, p)
	require.True(t, ok)
	fermiSum.Add(term, mockCoeff)

	pauliSum := transform(t, fermiSum)

	require.InDelta(t, mockCoeff*0.5, pauliSum.Coeff(qubit.Code{}), epsilon)

	var code qubit.Code
	code.MustSet(int(index), qubit.Z)
	require.InDelta(t, -mockCoeff*0.5, pauliSum.Coeff(code), epsilon)
}

func TestJordanWignerOnePP(t *testing.T) {
	checkOnePP(t, 0)
	checkOnePP(t, 1)
	checkOnePP(t, 2)
	checkOnePP(t, 63)
}

func checkOnePQ(t *testing.T, index1, index2 uint32) {
	t.Helper()
	require.Less(t, index1, index2)

	fermiSum := terms.NewFermionSum[float64]()
	term, ok := fermion.OneElectron(
		fermion.OrbitalWithIndex(index1),
		fermion.OrbitalWithIndex(index2),
	)
	require.True(t, ok)
	fermiSum.Add(term, mockCoeff)

	pauliSum := transform(t, fermiSum)

	var code qubit.Code
	for i := index1 + 1; i < index2; i++ {
		code.MustSet(int(i), qubit.Z)
	}
	code.MustSet(int(index1), qubit.X)
	code.MustSet(int(index2), qubit.X)
	require.InDelta(t, mockCoeff*0.5, pauliSum.Coeff(code), epsilon)

	code.MustSet(int(index1), qubit.Y)
	code.MustSet(int(index2), qubit.Y)
	require.InDelta(t, mockCoeff*0.5, pauliSum.Coeff(code), epsilon)
}

func TestJordanWignerOnePQ(t *testing.T) {
	checkOnePQ(t, 0, 1)
	checkOnePQ(t, 0, 3)
	checkOnePQ(t, 0, 17)

	checkOnePQ(t, 11, 17)
	checkOnePQ(t, 11, 47)
}

func checkTwoPQ(t *testing.T, index1, index2 uint32) {
	t.Helper()
	require.Less(t, index1, index2)

	fermiSum := terms.NewFermionSum[float64]()
	p := fermion.OrbitalWithIndex(index1)
	q := fermion.OrbitalWithIndex(index2)
	term, ok := fermion.TwoElectron(p, q, q, p)
	require.True(t, ok)
	fermiSum.Add(term, mockCoeff)

	pauliSum := transform(t, fermiSum)

	require.InDelta(t, mockCoeff*0.25, pauliSum.Coeff(qubit.Code{}), epsilon)

	var zp qubit.Code
	zp.MustSet(int(index1), qubit.Z)
	require.InDelta(t, -mockCoeff*0.25, pauliSum.Coeff(zp), epsilon)

	var zq qubit.Code
	zq.MustSet(int(index2), qubit.Z)
	require.InDelta(t, -mockCoeff*0.25, pauliSum.Coeff(zq), epsilon)

	var zpq qubit.Code
	zpq.MustSet(int(index1), qubit.Z)
	zpq.MustSet(int(index2), qubit.Z)
	require.InDelta(t, mockCoeff*0.25, pauliSum.Coeff(zpq), epsilon)
}

func TestJordanWignerTwoPQ(t *testing.T) {
	checkTwoPQ(t, 0, 1)
	checkTwoPQ(t, 0, 2)
	checkTwoPQ(t, 0, 3)

	checkTwoPQ(t, 11, 13)
	checkTwoPQ(t, 11, 33)
}

func checkTwoPQS(t *testing.T, index1, index2, index3 uint32) {
	t.Helper()
	require.Less(t, index1, index2)
	require.Greater(t, index2, index3)
	require.LessOrEqual(t, index1, index3)

	fermiSum := terms.NewFermionSum[float64]()
	term, ok := fermion.TwoElectron(
		fermion.OrbitalWithIndex(index1),
		fermion.OrbitalWithIndex(index2),
		fermion.OrbitalWithIndex(index2),
		fermion.OrbitalWithIndex(index3),
	)
	require.True(t, ok)
	fermiSum.Add(term, mockCoeff)

	pauliSum := transform(t, fermiSum)

	var base qubit.Code
	for i := index1 + 1; i < index3; i++ {
		base.MustSet(int(i), qubit.Z)
	}

	code := base
	code.MustSet(int(index1), qubit.X)
	code.MustSet(int(index3), qubit.X)
	require.InDelta(t, mockCoeff*0.25, pauliSum.Coeff(code), epsilon)

	code = base
	code.MustSet(int(index1), qubit.Y)
	code.MustSet(int(index3), qubit.Y)
	require.InDelta(t, mockCoeff*0.25, pauliSum.Coeff(code), epsilon)

	code = base
	code.MustSet(int(index1), qubit.X)
	code.MustSet(int(index3), qubit.X)
	code.MustSet(int(index2), qubit.Z)
	require.InDelta(t, -mockCoeff*0.25, pauliSum.Coeff(code), epsilon)

	code = base
	code.MustSet(int(index1), qubit.Y)
	code.MustSet(int(index3), qubit.Y)
	code.MustSet(int(index2), qubit.Z)
	require.InDelta(t, -mockCoeff*0.25, pauliSum.Coeff(code), epsilon)
}

func TestJordanWignerTwoPQS(t *testing.T) {
	checkTwoPQS(t, 0, 2, 1)
	checkTwoPQS(t, 0, 7, 3)
	checkTwoPQS(t, 11, 13, 12)

	checkTwoPQS(t, 11, 37, 22)
}

func checkTwoPQRS(t *testing.T, index1, index2, index3, index4 uint32) {
	t.Helper()
	require.Less(t, index1, index2)
	require.Greater(t, index3, index4)
	require.LessOrEqual(t, index1, index4)

	fermiSum := terms.NewFermionSum[float64]()
	term, ok := fermion.TwoElectron(
		fermion.OrbitalWithIndex(index1),
		fermion.OrbitalWithIndex(index2),
		fermion.OrbitalWithIndex(index3),
		fermion.OrbitalWithIndex(index4),
	)
	require.True(t, ok)
	fermiSum.Add(term, mockCoeff)

	pauliSum := transform(t, fermiSum)

	var base qubit.Code
	for i := index1 + 1; i < index2; i++ {
		base.MustSet(int(i), qubit.Z)
	}
	for i := index4 + 1; i < index3; i++ {
		base.MustSet(int(i), qubit.Z)
	}

	cases := []struct {
		ops  [4]qubit.Pauli
		sign float64
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
	for _, tc := range cases {
		code := base
		code.MustSet(int(index1), tc.ops[0])
		code.MustSet(int(index2), tc.ops[1])
		code.MustSet(int(index3), tc.ops[2])
		code.MustSet(int(index4), tc.ops[3])
		require.InDelta(t, tc.sign*mockCoeff*0.125, pauliSum.Coeff(code), epsilon,
			"ops %v%v%v%v", tc.ops[0], tc.ops[1], tc.ops[2], tc.ops[3])
	}
}

func TestJordanWignerTwoPQRS(t *testing.T) {
	checkTwoPQRS(t, 0, 1, 2, 0)
	checkTwoPQRS(t, 0, 1, 2, 1)
	checkTwoPQRS(t, 0, 1, 3, 2)

	checkTwoPQRS(t, 11, 32, 31, 19)
	checkTwoPQRS(t, 11, 31, 61, 29)
}

func TestJordanWignerIndexOutOfRange(t *testing.T) {
	t.Run("one-electron", func(t *testing.T) {
		fermiSum := terms.NewFermionSum[float64]()
		term, ok := fermion.OneElectron(
			fermion.OrbitalWithIndex(0),
			fermion.OrbitalWithIndex(64),
		)
		require.True(t, ok)
		fermiSum.Add(term, mockCoeff)

		pauliSum := terms.NewPauliSum[float64]()
		err := NewJordanWigner(fermiSum).AddTo(pauliSum)
		require.ErrorIs(t, err, errs.ErrIndexRange)

		// The failing term contributed nothing.
		require.Equal(t, 0, pauliSum.Len())
	})

	t.Run("two-electron", func(t *testing.T) {
		fermiSum := terms.NewFermionSum[float64]()
		term, ok := fermion.TwoElectron(
			fermion.OrbitalWithIndex(1),
			fermion.OrbitalWithIndex(70),
			fermion.OrbitalWithIndex(65),
			fermion.OrbitalWithIndex(2),
		)
		require.True(t, ok)
		fermiSum.Add(term, mockCoeff)

		pauliSum := terms.NewPauliSum[float64]()
		err := NewJordanWigner(fermiSum).AddTo(pauliSum)
		require.ErrorIs(t, err, errs.ErrIndexRange)
		require.Equal(t, 0, pauliSum.Len())
	})

	t.Run("diagonal at boundary", func(t *testing.T) {
		fermiSum := terms.NewFermionSum[float64]()
		p := fermion.OrbitalWithIndex(64)
		term, ok := fermion.OneElectron(p, p)
		require.True(t, ok)
		fermiSum.Add(term, mockCoeff)

		pauliSum := terms.NewPauliSum[float64]()
		err := NewJordanWigner(fermiSum).AddTo(pauliSum)
		require.ErrorIs(t, err, errs.ErrIndexRange)
		require.Equal(t, 0, pauliSum.Len())
	})
}

func TestJordanWignerAccumulatesAcrossTerms(t *testing.T) {
	// Two diagonal terms on distinct orbitals share the identity string, so
	// their identity contributions add up.
	fermiSum := terms.NewFermionSum[float64]()
	for _, idx := range []uint32{3, 5} {
		p := fermion.OrbitalWithIndex(idx)
		term, ok := fermion.OneElectron(p, p)
		require.True(t, ok)
		fermiSum.Add(term, mockCoeff)
	}

	pauliSum := transform(t, fermiSum)
	require.InDelta(t, mockCoeff, pauliSum.Coeff(qubit.Code{}), epsilon)
	require.Equal(t, 3, pauliSum.Len())
}

func TestJordanWignerAddToTwice(t *testing.T) {
	fermiSum := terms.NewFermionSum[float64]()
	fermiSum.Add(fermion.Offset(), mockCoeff)

	jw := NewJordanWigner(fermiSum)
	pauliSum := terms.NewPauliSum[float64]()
	require.NoError(t, jw.AddTo(pauliSum))
	require.NoError(t, jw.AddTo(pauliSum))

	require.InDelta(t, 2*mockCoeff, pauliSum.Coeff(qubit.Code{}), epsilon)
}
