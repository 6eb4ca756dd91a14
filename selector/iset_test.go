package selector_test

import (
	"testing"

	"github.com/arnegrau/ssm/kernel"
	"github.com/arnegrau/ssm/selector"
	"github.com/arnegrau/ssm/submodular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndependentSetImprovement_BadParams(t *testing.T) {
	fn := newIVM(t, 2)

	_, err := selector.NewIndependentSetImprovement(0, fn)
	assert.ErrorIs(t, err, selector.ErrBadK)

	_, err = selector.NewIndependentSetImprovement(2, nil)
	assert.ErrorIs(t, err, selector.ErrNilSubmodularFunction)
}

func TestIndependentSetImprovement_FillsBeforeReplacing(t *testing.T) {
	s, err := selector.NewIndependentSetImprovement(2, newIVM(t, 2))
	require.NoError(t, err)

	require.NoError(t, s.Next([]float64{0, 0}))
	require.NoError(t, s.Next([]float64{1, 1}))

	assert.Len(t, s.Solution(), 2)
	assert.Equal(t, 1, s.NumCandidateSolutions())
}

func TestIndependentSetImprovement_ReplacesWeakestSlot(t *testing.T) {
	// sigma=0.5: a duplicate then earns weight 0.5*ln(1.8) ~ 0.294 while a
	// far-away item would earn 0.5*ln(5) ~ 0.805 in its place, which
	// clears the 2*w bar. (With sigma=1 the bar 2*0.5*ln(1.5) ~ 0.405 is
	// above the best possible 0.5*ln(2) ~ 0.347, so nothing is replaced.)
	rbf, err := kernel.NewRBFKernel(1.0, 1.0)
	require.NoError(t, err)
	fn, err := submodular.NewFastIVM(2, rbf, 0.5)
	require.NoError(t, err)
	s, err := selector.NewIndependentSetImprovement(2, fn)
	require.NoError(t, err)

	require.NoError(t, s.Next([]float64{0, 0}))
	require.NoError(t, s.Next([]float64{0, 0})) // duplicate: the smaller weight, in slot 1

	before := s.FVal()
	require.NoError(t, s.Next([]float64{10, 10})) // large gain relative to the weak slot

	assert.Equal(t, []float64{10, 10}, s.Solution()[1])
	assert.GreaterOrEqual(t, s.FVal(), before)
}

func TestIndependentSetImprovement_DimensionMismatch(t *testing.T) {
	s, err := selector.NewIndependentSetImprovement(2, newIVM(t, 2))
	require.NoError(t, err)

	require.NoError(t, s.Next([]float64{0, 0}))
	err = s.Next([]float64{0, 0, 0})
	assert.ErrorIs(t, err, selector.ErrDimensionMismatch)
}
