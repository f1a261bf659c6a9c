package report

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity bounds how many reports a session keeps.
const DefaultCapacity = 32

// Book holds the reports requested during a session. The oldest reports
// are evicted once capacity is reached.
type Book struct {
	mu      sync.Mutex
	cache   *lru.Cache[string, FarmerReport]
	current string
}

// NewBook creates a Book holding at most capacity reports.
func NewBook(capacity int) (*Book, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, FarmerReport](capacity)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}
	return &Book{cache: cache}, nil
}

// Add stores r and makes it the current report.
func (b *Book) Add(r FarmerReport) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cache.Add(r.ID, r)
	b.current = r.ID
}

// Get returns the report with the given ID.
func (b *Book) Get(id string) (FarmerReport, bool) {
	r, ok := b.cache.Peek(id)
	return detach(r), ok
}

// Current returns the most recently added report.
func (b *Book) Current() (FarmerReport, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == "" {
		return FarmerReport{}, false
	}
	r, ok := b.cache.Peek(b.current)
	return detach(r), ok
}

// All returns the stored reports, oldest first.
func (b *Book) All() []FarmerReport {
	keys := b.cache.Keys()
	out := make([]FarmerReport, 0, len(keys))
	for _, k := range keys {
		if r, ok := b.cache.Peek(k); ok {
			out = append(out, detach(r))
		}
	}
	return out
}

// Len returns the number of stored reports.
func (b *Book) Len() int {
	return b.cache.Len()
}

// detach keeps callers from editing the stored diagnosis lists.
func detach(r FarmerReport) FarmerReport {
	r.Diagnosis = r.Diagnosis.Clone()
	return r
}
