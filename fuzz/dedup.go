package fuzz

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Dedup remembers digit strings the runner has already exercised. It is
// probabilistic: a small fraction of fresh inputs may be reported as seen,
// which only costs the run some coverage, never a false mismatch.
type Dedup struct {
	mutex  *sync.RWMutex
	filter *bloom.BloomFilter
}

func NewDedup(expected uint) *Dedup {
	return &Dedup{
		mutex:  &sync.RWMutex{},
		filter: bloom.NewWithEstimates(expected, 0.01), // 1% false positive rate
	}
}

func (d *Dedup) Add(s string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.filter.AddString(s)
}

func (d *Dedup) Seen(s string) bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.filter.TestString(s)
}
