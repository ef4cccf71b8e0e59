// Package bloom provides page-identifier deduplication using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter for page-identifier deduplication.
// It is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected identifiers
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an identifier to the filter.
func (f *Filter) Add(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(id)
}

// Test returns true if the identifier might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(id)
}

// TestAndAdd tests and adds in one step, returning the test result.
func (f *Filter) TestAndAdd(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(id)
}

// EstimatedCount returns the approximate number of identifiers in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
