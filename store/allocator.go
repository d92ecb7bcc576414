package store

import "sync"

// Kind names an entity type with its own identifier sequence.
type Kind string

const (
	KindCategory Kind = "category"
	KindProvider Kind = "provider"
	KindInquiry  Kind = "inquiry"
)

// Allocator hands out monotonically increasing ids, one sequence per kind.
// Every sequence starts at 1 and ids are never handed out twice.
type Allocator struct {
	mu   sync.Mutex
	next map[Kind]int
}

func NewAllocator() *Allocator {
	return &Allocator{next: make(map[Kind]int)}
}

// Next returns the next id for kind.
func (a *Allocator) Next(kind Kind) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.next[kind] + 1
	a.next[kind] = id
	return id
}
