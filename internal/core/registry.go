package core

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"sync/atomic"

	rc "github.com/comalice/rivercrossing"
)

// DefaultRegistrySize is the capacity used when a non-positive one is given.
const DefaultRegistrySize = 128

var ErrNotFound = errors.New("report not found")

// Key identifies a solve by its endpoints. States are canonical, so Key is
// comparable and usable as a map key.
type Key struct {
	Start rc.State
	Goal  rc.State
}

func (k Key) String() string {
	return k.Start.Key() + "->" + k.Goal.Key()
}

// Registry keeps reports of past solves.
type Registry interface {
	// Register stores r under key, replacing any previous entry.
	Register(ctx context.Context, key Key, r Report) error

	// Lookup returns the report for key or ErrNotFound.
	Lookup(ctx context.Context, key Key) (Report, error)

	// ByID returns the report with the given ID or ErrNotFound.
	ByID(ctx context.Context, id string) (Report, error)

	// Stats returns hit and miss counters.
	Stats() RegistryStats
}

// RegistryStats counts registry traffic.
type RegistryStats struct {
	Size      int
	Hits      int64
	Misses    int64
	Evictions int64
}

// MemoryRegistry is a bounded in-memory Registry that evicts the least
// recently used report.
type MemoryRegistry struct {
	mu       sync.Mutex
	capacity int
	items    map[Key]*list.Element
	ids      map[string]Key
	order    *list.List // front = most recent

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type registryEntry struct {
	key    Key
	report Report
}

// NewMemoryRegistry creates a registry holding at most capacity reports.
func NewMemoryRegistry(capacity int) *MemoryRegistry {
	if capacity <= 0 {
		capacity = DefaultRegistrySize
	}
	return &MemoryRegistry{
		capacity: capacity,
		items:    make(map[Key]*list.Element, capacity),
		ids:      make(map[string]Key, capacity),
		order:    list.New(),
	}
}

func (r *MemoryRegistry) Register(ctx context.Context, key Key, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	report = cloneReport(report)
	report.Cached = false

	if elem, ok := r.items[key]; ok {
		entry := elem.Value.(*registryEntry)
		delete(r.ids, entry.report.ID)
		entry.report = report
		r.ids[report.ID] = key
		r.order.MoveToFront(elem)
		return nil
	}

	if r.order.Len() >= r.capacity {
		r.evictOldest()
	}
	r.items[key] = r.order.PushFront(&registryEntry{key: key, report: report})
	r.ids[report.ID] = key
	return nil
}

func (r *MemoryRegistry) Lookup(ctx context.Context, key Key) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	elem, ok := r.items[key]
	if !ok {
		r.misses.Add(1)
		return Report{}, ErrNotFound
	}
	r.hits.Add(1)
	r.order.MoveToFront(elem)
	return cloneReport(elem.Value.(*registryEntry).report), nil
}

func (r *MemoryRegistry) ByID(ctx context.Context, id string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.ids[id]
	if !ok {
		return Report{}, ErrNotFound
	}
	return cloneReport(r.items[key].Value.(*registryEntry).report), nil
}

func (r *MemoryRegistry) Stats() RegistryStats {
	r.mu.Lock()
	size := r.order.Len()
	r.mu.Unlock()
	return RegistryStats{
		Size:      size,
		Hits:      r.hits.Load(),
		Misses:    r.misses.Load(),
		Evictions: r.evictions.Load(),
	}
}

// Len returns the number of stored reports.
func (r *MemoryRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

// evictOldest removes the least recently used entry. Caller holds mu.
func (r *MemoryRegistry) evictOldest() {
	elem := r.order.Back()
	if elem == nil {
		return
	}
	entry := elem.Value.(*registryEntry)
	r.order.Remove(elem)
	delete(r.items, entry.key)
	delete(r.ids, entry.report.ID)
	r.evictions.Add(1)
}
