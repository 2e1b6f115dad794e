// Package bloom de-duplicates asset references across a migration run
// using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/wprefactor"
)

var _ wprefactor.AssetFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for asset path de-duplication.
// It is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected assets
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether the asset might already be in the filter
// and adds it in the same step.
func (f *Filter) TestAndAdd(asset string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(asset)
}
