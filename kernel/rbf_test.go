package kernel_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/arnegrau/ssm/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRBFKernel_BadParams(t *testing.T) {
	_, err := kernel.NewRBFKernel(0, 1)
	assert.ErrorIs(t, err, kernel.ErrBadSigma)

	_, err = kernel.NewRBFKernel(-1, 1)
	assert.ErrorIs(t, err, kernel.ErrBadSigma)

	_, err = kernel.NewRBFKernel(1, 0)
	assert.ErrorIs(t, err, kernel.ErrBadScale)
}

func TestRBFKernel_SelfSimilarity(t *testing.T) {
	k, err := kernel.NewRBFKernel(1.0, 1.0)
	require.NoError(t, err)

	x := []float64{1, 2, 3}
	assert.InDelta(t, 1.0, k.K(x, x), 1e-12, "k(x,x) must equal scale for sigma arbitrary")
}

func TestRBFKernel_KnownValue(t *testing.T) {
	k, err := kernel.NewRBFKernel(1.0, 1.0)
	require.NoError(t, err)

	got := k.K([]float64{0, 0}, []float64{1, 1})
	want := math.Exp(-2.0)
	assert.InDelta(t, want, got, 1e-12)
}

func TestRBFKernel_Clone(t *testing.T) {
	k, err := kernel.NewRBFKernel(2.0, 3.0)
	require.NoError(t, err)

	clone := k.Clone().(*kernel.RBFKernel)
	assert.Equal(t, k.Sigma(), clone.Sigma())
	assert.Equal(t, k.Scale(), clone.Scale())

	// Mutating the original's fields (not exposed, but Clone must return
	// a distinct pointer) never aliases the clone.
	assert.NotSame(t, k, clone)
}

func TestLinearKernel_RankDeficiency(t *testing.T) {
	lk := kernel.NewLinearKernel()
	a := []float64{0, 0}
	b := []float64{1, 1}
	c := []float64{0, 1}

	assert.InDelta(t, 0.0, lk.K(a, a), 1e-12)
	assert.InDelta(t, 1.0, lk.K(b, b), 1e-12)
	assert.InDelta(t, 0.5, lk.K(c, c), 1e-12)
	assert.InDelta(t, 0.5, lk.K(b, c), 1e-12)
}

func TestFunc_Adapter(t *testing.T) {
	var f kernel.Kernel = kernel.Func(func(x, y []float64) float64 {
		var s float64
		for i := range x {
			s += x[i] * y[i]
		}

		return s
	})

	assert.Equal(t, 14.0, f.K([]float64{1, 2, 3}, []float64{1, 2, 3}))
	assert.Equal(t, reflect.ValueOf(f).Pointer(), reflect.ValueOf(f.Clone()).Pointer(),
		"Func.Clone returns itself: no state to copy")
}
