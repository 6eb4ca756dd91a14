package selector_test

import (
	"testing"

	"github.com/arnegrau/ssm/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThreeSieves_BadParams(t *testing.T) {
	fn := newIVM(t, 2)

	_, err := selector.NewThreeSieves(0, fn, 1.0, 0.1, 5, selector.StrategySieve)
	assert.ErrorIs(t, err, selector.ErrBadK)

	_, err = selector.NewThreeSieves(2, nil, 1.0, 0.1, 5, selector.StrategySieve)
	assert.ErrorIs(t, err, selector.ErrNilSubmodularFunction)

	_, err = selector.NewThreeSieves(2, fn, 1.0, 0.1, 0, selector.StrategySieve)
	assert.ErrorIs(t, err, selector.ErrBadT)

	_, err = selector.NewThreeSieves(2, fn, 1.0, 0.1, 5, selector.ThreeSievesStrategy(99))
	assert.ErrorIs(t, err, selector.ErrUnknownStrategy)
}

// TestThreeSieves_Scenario is Scenario E of spec §8: K=2, eps=0.1, T=5.
func TestThreeSieves_Scenario(t *testing.T) {
	s, err := selector.NewThreeSieves(2, newIVM(t, 2), 0.5, 0.1, 5, selector.StrategySieve)
	require.NoError(t, err)

	stream := [][]float64{{0, 0}, {1, 1}, {0.5, 1.0}, {1.0, 0.5}, {10, 10}}
	for _, x := range stream {
		require.NoError(t, s.Next(x))
	}

	assert.LessOrEqual(t, len(s.Solution()), 2)
	assert.Equal(t, 1, s.NumCandidateSolutions())
}

func TestThreeSieves_StrategyConstantNeverRelaxes(t *testing.T) {
	s, err := selector.NewThreeSieves(1, newIVM(t, 1), 1000.0, 0.5, 2, selector.StrategyConstant)
	require.NoError(t, err)

	// An unreachably high threshold guarantees every item is rejected;
	// under StrategyConstant the threshold must never move, so no item
	// in a small stream is ever accepted.
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Next([]float64{float64(i), float64(i)}))
	}

	assert.Empty(t, s.Solution())
}

func TestThreeSieves_DimensionMismatch(t *testing.T) {
	s, err := selector.NewThreeSieves(2, newIVM(t, 2), 0.5, 0.1, 5, selector.StrategySieve)
	require.NoError(t, err)

	require.NoError(t, s.Next([]float64{0, 0}))
	err = s.Next([]float64{0, 0, 0})
	assert.ErrorIs(t, err, selector.ErrDimensionMismatch)
}

func TestThreeSieves_FullSolutionIgnoresFurtherItems(t *testing.T) {
	s, err := selector.NewThreeSieves(1, newIVM(t, 1), 0.01, 0.5, 1, selector.StrategySieve)
	require.NoError(t, err)

	require.NoError(t, s.Next([]float64{0, 0}))
	require.Len(t, s.Solution(), 1)
	first := s.Solution()[0]

	require.NoError(t, s.Next([]float64{99, 99}))
	assert.Equal(t, first, s.Solution()[0])
	assert.Len(t, s.Solution(), 1)
}
