// Package index provides the nearest-neighbor search structure over the
// precomputed passage embeddings. The index is loaded once at startup and is
// read-only afterwards, so searches need no locking.
package index

import (
	"fmt"
	"sort"
)

// Flat is a brute-force index: a query is compared against every stored
// vector by squared Euclidean distance. Positions returned by Search line up
// with corpus record positions.
type Flat struct {
	dim     int
	vectors [][]float32
}

// New builds a flat index from pre-ordered vectors. All vectors must share
// one dimension.
func New(vectors [][]float32) (*Flat, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("index: no vectors")
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("index: zero-dimension vector at position 0")
	}
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("index: vector %d has dimension %d, want %d", i, len(v), dim)
		}
	}
	return &Flat{dim: dim, vectors: vectors}, nil
}

func (f *Flat) Len() int { return len(f.vectors) }

func (f *Flat) Dim() int { return f.dim }

// Search returns the positions of the k nearest vectors, nearest first.
// Fewer than k positions are returned when the index is smaller than k.
func (f *Flat) Search(q []float32, k int) ([]int, error) {
	if len(q) != f.dim {
		return nil, fmt.Errorf("index: query dimension %d does not match index dimension %d", len(q), f.dim)
	}
	if k <= 0 {
		return nil, nil
	}

	type scored struct {
		pos  int
		dist float64
	}
	all := make([]scored, len(f.vectors))
	for i, v := range f.vectors {
		all[i] = scored{pos: i, dist: squaredL2(q, v)}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].dist < all[j].dist })

	if k > len(all) {
		k = len(all)
	}
	positions := make([]int, k)
	for i := 0; i < k; i++ {
		positions[i] = all[i].pos
	}
	return positions, nil
}

func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
