package selector_test

import (
	"math/rand"
	"testing"

	"github.com/arnegrau/ssm/kernel"
	"github.com/arnegrau/ssm/selector"
	"github.com/arnegrau/ssm/submodular"
)

// BenchmarkSieveStreaming_Next measures the per-item cost of refreshing
// the threshold grid and offering an item to every live sieve, the hot
// path of the sieve family.
func BenchmarkSieveStreaming_Next(b *testing.B) {
	const k = 10
	rbf, _ := kernel.NewRBFKernel(1.0, 1.0)
	fn, _ := submodular.NewFastIVM(k, rbf, 1.0)
	s, _ := selector.NewSieveStreaming(k, fn, 0.1, 0.1)
	rng := rand.New(rand.NewSource(3))

	items := make([]selector.Item, b.N)
	for i := range items {
		items[i] = benchVec(rng, 8)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Next(items[i])
	}
}

// BenchmarkThreeSieves_Next measures the single-candidate accept/reject
// path, the cheapest per-item cost among the streaming selectors.
func BenchmarkThreeSieves_Next(b *testing.B) {
	const k = 10
	rbf, _ := kernel.NewRBFKernel(1.0, 1.0)
	fn, _ := submodular.NewFastIVM(k, rbf, 1.0)
	s, _ := selector.NewThreeSieves(k, fn, 0.1, 0.1, 10, selector.StrategySieve)
	rng := rand.New(rand.NewSource(4))

	items := make([]selector.Item, b.N)
	for i := range items {
		items[i] = benchVec(rng, 8)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Next(items[i])
	}
}

func benchVec(rng *rand.Rand, d int) []float64 {
	v := make([]float64, d)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	return v
}
