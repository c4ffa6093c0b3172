package magnus_test

import (
	"math/rand"
	"testing"

	"github.com/lzawbrito/pulsego/magnus"
	"github.com/lzawbrito/pulsego/qmat"
)

// benchSamples draws n Hermitian 4×4 samples with a fixed seed.
func benchSamples(b *testing.B, n int) []*qmat.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(97))
	h := make([]*qmat.Dense, n)
	for i := range h {
		obs, err := qmat.RandomObservable(4, rng)
		if err != nil {
			b.Fatalf("sample generation failed: %v", err)
		}
		h[i] = obs
	}
	return h
}

// benchmarkThirdTerm runs the cubic kernel on n samples with w workers.
func benchmarkThirdTerm(b *testing.B, n, w int) {
	h := benchSamples(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := magnus.ThirdTerm(h, 0.1, magnus.WithWorkers(w)); err != nil {
			b.Fatalf("ThirdTerm failed: %v", err)
		}
	}
}

func BenchmarkThirdTerm_N16_Sequential(b *testing.B) { benchmarkThirdTerm(b, 16, 1) }
func BenchmarkThirdTerm_N16_Workers4(b *testing.B)   { benchmarkThirdTerm(b, 16, 4) }
func BenchmarkThirdTerm_N32_Sequential(b *testing.B) { benchmarkThirdTerm(b, 32, 1) }
func BenchmarkThirdTerm_N32_Workers4(b *testing.B)   { benchmarkThirdTerm(b, 32, 4) }

// BenchmarkSecondTerm_N64 exercises the quadratic kernel.
func BenchmarkSecondTerm_N64(b *testing.B) {
	h := benchSamples(b, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := magnus.SecondTerm(h, 0.1); err != nil {
			b.Fatalf("SecondTerm failed: %v", err)
		}
	}
}
