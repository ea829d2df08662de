// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// posting is one document containing a term.
type posting struct {
	doc   int32
	count float32
}

// CosineMatrix computes pairwise cosine similarity of vectors. Rows are
// spread over workers goroutines; workers <= 0 uses runtime.NumCPU().
func CosineMatrix(ctx context.Context, vectors []SparseVector, workers int) (*recommend.SimilarityMatrix, error) {
	n := len(vectors)
	m := recommend.NewSimilarityMatrix(n)
	if n == 0 {
		return m, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	norms := make([]float64, n)
	postings := make(map[int32][]posting)
	for d, v := range vectors {
		norms[d] = v.Norm()
		for k, idx := range v.Indices {
			postings[idx] = append(postings[idx], posting{doc: int32(d), count: v.Counts[k]})
		}
	}

	scratch := sync.Pool{
		New: func() any {
			acc := make([]float64, n)
			return &acc
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			accPtr := scratch.Get().(*[]float64)
			defer scratch.Put(accPtr)
			fillRow(m, vectors[i], i, norms, postings, *accPtr)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup returns nil when the loop stopped early on the parent context
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// fillRow writes the upper triangle of row i and mirrors it into column i.
// Only this call touches cells (i, j) and (j, i) for j > i.
func fillRow(m *recommend.SimilarityMatrix, v SparseVector, i int, norms []float64, postings map[int32][]posting, acc []float64) {
	if norms[i] == 0 {
		// zero vector: row and column stay 0, diagonal included
		return
	}
	m.Set(i, i, 1)

	touched := make([]int32, 0, 64)
	for k, idx := range v.Indices {
		ci := float64(v.Counts[k])
		for _, p := range postings[idx] {
			if int(p.doc) <= i {
				continue
			}
			if acc[p.doc] == 0 {
				touched = append(touched, p.doc)
			}
			acc[p.doc] += ci * float64(p.count)
		}
	}

	for _, j := range touched {
		sim := float32(clampUnit(acc[j] / (norms[i] * norms[j])))
		m.Set(i, int(j), sim)
		m.Set(int(j), i, sim)
		acc[j] = 0
	}
}

// clampUnit removes rounding overshoot outside [0, 1].
func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
