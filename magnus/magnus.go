// SPDX-License-Identifier: MIT

// Package magnus: discretized Magnus series terms.
//
// Index conventions follow the discretized series: the outer index runs over
// t1 < N−1 and inner indices never exceed their outer neighbor, so every
// commutator pairs a sample with one at an earlier-or-equal instant.

package magnus

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/lzawbrito/pulsego/evolution"
	"github.com/lzawbrito/pulsego/qmat"
)

// validate checks the sample array and returns the shared dimension.
func validate(h []*qmat.Dense) (int, error) {
	if len(h) < 2 {
		return 0, ErrTooFewSamples
	}
	for _, s := range h {
		if s == nil {
			return 0, ErrNilSample
		}
		if !s.IsSquare() || s.Rows() != h[0].Rows() {
			return 0, ErrShapeMismatch
		}
	}
	return h[0].Rows(), nil
}

// FirstTerm returns the 1st order Magnus term: the trapezoidal-rule integral
// of h over the sample range — weight 1 on the endpoints, weight 2 on every
// interior sample, all scaled by timeStep/2 — multiplied by −i·2π.
//
// h holds the Hamiltonian (MHz) at successive, evenly spaced instants;
// timeStep (µs) is the spacing between adjacent samples.
// Complexity: O(N) matrix additions.
func FirstTerm(h []*qmat.Dense, timeStep float64) (*qmat.Dense, error) {
	if _, err := validate(h); err != nil {
		return nil, err
	}
	integral := h[0].Clone()
	for t := 1; t < len(h)-1; t++ {
		next, err := qmat.Add(integral, qmat.Scale(2, h[t]))
		if err != nil {
			return nil, err
		}
		integral = next
	}
	integral, err := qmat.Add(integral, h[len(h)-1])
	if err != nil {
		return nil, err
	}
	integral = qmat.Scale(complex(timeStep/2, 0), integral)
	return qmat.Scale(complex(0, -2*math.Pi), integral), nil
}

// SecondTerm returns the 2nd order Magnus term: the double sum of
// [h[t1], h[t2]]·timeStep² over t2 ≤ t1 < N−1, scaled by −½·(2π)².
// This is the leading non-commutativity correction to the plain integral.
//
// WithWorkers(w) partitions the t1 range. Complexity: O(N²) commutators.
func SecondTerm(h []*qmat.Dense, timeStep float64, opts ...Option) (*qmat.Dense, error) {
	dim, err := validate(h)
	if err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts)

	integral, err := parallelSum(len(h)-1, cfg.workers, dim, func(lo, hi int) (*qmat.Dense, error) {
		sum, err := qmat.NewDense(dim, dim)
		if err != nil {
			return nil, err
		}
		for t1 := lo; t1 < hi; t1++ {
			for t2 := 0; t2 <= t1; t2++ {
				c, err := evolution.Commutator(h[t1], h[t2])
				if err != nil {
					return nil, err
				}
				if sum, err = qmat.Add(sum, c); err != nil {
					return nil, err
				}
			}
		}
		return sum, nil
	})
	if err != nil {
		return nil, err
	}

	scale := -0.5 * math.Pow(2*math.Pi, 2) * timeStep * timeStep
	return qmat.Scale(complex(scale, 0), integral), nil
}

// ThirdTerm returns the 3rd order Magnus term: the triple sum of
//
//	[h[t1], [h[t2], h[t3]]] + [h[t3], [h[t2], h[t1]]]
//
// times timeStep³ over t3 ≤ t2 ≤ t1 < N−1, scaled by (i/6)·(2π)³.
//
// This is the dominant cost center of the engine — cubic in sample count
// with four matrix multiplications per term; WithWorkers(w) partitions the
// outer t1 range across goroutines.
func ThirdTerm(h []*qmat.Dense, timeStep float64, opts ...Option) (*qmat.Dense, error) {
	dim, err := validate(h)
	if err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts)

	integral, err := parallelSum(len(h)-1, cfg.workers, dim, func(lo, hi int) (*qmat.Dense, error) {
		sum, err := qmat.NewDense(dim, dim)
		if err != nil {
			return nil, err
		}
		for t1 := lo; t1 < hi; t1++ {
			for t2 := 0; t2 <= t1; t2++ {
				for t3 := 0; t3 <= t2; t3++ {
					inner23, err := evolution.Commutator(h[t2], h[t3])
					if err != nil {
						return nil, err
					}
					left, err := evolution.Commutator(h[t1], inner23)
					if err != nil {
						return nil, err
					}
					inner21, err := evolution.Commutator(h[t2], h[t1])
					if err != nil {
						return nil, err
					}
					right, err := evolution.Commutator(h[t3], inner21)
					if err != nil {
						return nil, err
					}
					term, err := qmat.Add(left, right)
					if err != nil {
						return nil, err
					}
					if sum, err = qmat.Add(sum, term); err != nil {
						return nil, err
					}
				}
			}
		}
		return sum, nil
	})
	if err != nil {
		return nil, err
	}

	dt3 := timeStep * timeStep * timeStep
	return qmat.Scale(complex(0, math.Pow(2*math.Pi, 3)/6*dt3), integral), nil
}

// Generator returns the truncated series up to WithOrder(k): the sum of the
// 1st through k-th terms, approximating the logarithm of the evolution
// operator. Default order is 3.
func Generator(h []*qmat.Dense, timeStep float64, opts ...Option) (*qmat.Dense, error) {
	cfg := gatherOptions(opts)

	gen, err := FirstTerm(h, timeStep)
	if err != nil {
		return nil, err
	}
	if cfg.order >= 2 {
		second, err := SecondTerm(h, timeStep, opts...)
		if err != nil {
			return nil, err
		}
		if gen, err = qmat.Add(gen, second); err != nil {
			return nil, err
		}
	}
	if cfg.order >= 3 {
		third, err := ThirdTerm(h, timeStep, opts...)
		if err != nil {
			return nil, err
		}
		if gen, err = qmat.Add(gen, third); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

// parallelSum reduces fn over contiguous chunks of [0, upper) using the
// configured worker count and combines the partial sums in chunk order.
// The reduction is plain matrix addition — associative and commutative — so
// partitioning only changes floating-point summation order, never the set
// of terms.
func parallelSum(upper, workers, dim int, fn func(lo, hi int) (*qmat.Dense, error)) (*qmat.Dense, error) {
	if workers > upper {
		workers = upper
	}
	if workers <= 1 {
		return fn(0, upper)
	}

	partials := make([]*qmat.Dense, workers)
	chunk := (upper + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, upper)
		idx := w
		g.Go(func() error {
			p, err := fn(lo, hi)
			if err != nil {
				return err
			}
			partials[idx] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := partials[0]
	for _, p := range partials[1:] {
		next, err := qmat.Add(sum, p)
		if err != nil {
			return nil, err
		}
		sum = next
	}
	return sum, nil
}
