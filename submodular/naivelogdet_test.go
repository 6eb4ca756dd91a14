package submodular_test

import (
	"testing"

	"github.com/arnegrau/ssm/kernel"
	"github.com/arnegrau/ssm/submodular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNaiveLogdet(t *testing.T, sigma float64) *submodular.NaiveLogdet {
	t.Helper()
	rbf, err := kernel.NewRBFKernel(1.0, 1.0)
	require.NoError(t, err)
	m, err := submodular.NewNaiveLogdet(rbf, sigma)
	require.NoError(t, err)

	return m
}

func TestNewNaiveLogdet_BadParams(t *testing.T) {
	rbf, err := kernel.NewRBFKernel(1, 1)
	require.NoError(t, err)

	_, err = submodular.NewNaiveLogdet(nil, 1.0)
	assert.ErrorIs(t, err, submodular.ErrNilKernel)

	_, err = submodular.NewNaiveLogdet(rbf, 0)
	assert.ErrorIs(t, err, submodular.ErrBadSigma)
}

func TestNaiveLogdet_EmptySolutionHasZeroFVal(t *testing.T) {
	m := newNaiveLogdet(t, 1.0)
	assert.Equal(t, 0.0, m.F(nil))
}

// TestNaiveLogdet_AgreesWithFastIVM exercises invariant 4 of spec §8
// against a second, independently implemented SubmodularFunction: two
// implementations of the same IVM formula must produce the same fval
// along the same append sequence.
func TestNaiveLogdet_AgreesWithFastIVM(t *testing.T) {
	rbf, err := kernel.NewRBFKernel(1.0, 1.0)
	require.NoError(t, err)
	fast, err := submodular.NewFastIVM(4, rbf, 1.0)
	require.NoError(t, err)
	naive := newNaiveLogdet(t, 1.0)

	var S [][]float64
	for _, x := range [][]float64{{0, 0}, {1, 1}, {0.5, 1.0}, {1.0, 0.5}} {
		want := fast.Update(S, x, len(S))
		got := naive.Update(S, x, len(S))
		S = append(S, x)

		assert.InDelta(t, want, got, 1e-9)
	}
}

func TestNaiveLogdet_PeekDoesNotMutate(t *testing.T) {
	m := newNaiveLogdet(t, 1.0)
	S := [][]float64{{0, 0}}
	m.Update(nil, S[0], 0)
	before := m.F(S)

	m.Peek(S, []float64{5, 5}, 1)

	assert.Equal(t, before, m.F(S))
}

func TestNaiveLogdet_CloneIndependence(t *testing.T) {
	m := newNaiveLogdet(t, 1.0)
	var S [][]float64
	for _, x := range [][]float64{{0, 0}, {1, 1}} {
		m.Update(S, x, len(S))
		S = append(S, x)
	}

	clone := m.Clone().(*submodular.NaiveLogdet)
	originalFVal := m.F(S)

	clone.Update(S, []float64{5, 5}, len(S))

	assert.Equal(t, originalFVal, m.F(S))
	assert.NotEqual(t, originalFVal, clone.Peek(S, []float64{5, 5}, len(S)))
}
