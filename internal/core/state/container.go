// Package state owns the single shared document reference. Every local
// mutation command and the sync orchestrator's commit step funnel through
// the container; consumers only ever see snapshots, never live references.
package state

import (
	"sync"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// Container is an observable holder of the current document. Reads return
// deep copies, writes go through the single Update/Replace path, and every
// write is delivered to subscribers as a fresh snapshot.
type Container struct {
	mu     sync.RWMutex
	doc    domain.Document
	subs   map[int]chan domain.Document
	nextID int
}

// NewContainer creates a container seeded with the given document.
func NewContainer(initial domain.Document) *Container {
	return &Container{
		doc:  initial.Normalize(),
		subs: make(map[int]chan domain.Document),
	}
}

// Snapshot returns a deep copy of the current document. The read is a single
// atomic operation relative to concurrent writes.
func (c *Container) Snapshot() domain.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc.Clone()
}

// Update applies mutate to a copy of the current document, installs the
// result and returns it. mutate runs under the container lock, which
// serializes all writers.
func (c *Container) Update(mutate func(domain.Document) domain.Document) domain.Document {
	doc, _ := c.UpdateAndPersist(func(d domain.Document) (domain.Document, error) {
		return mutate(d), nil
	}, nil)
	return doc
}

// UpdateAndPersist applies mutate and, when it succeeds, installs the
// result, notifies subscribers and runs persist on the installed snapshot
// before releasing the write lock. A mutate error aborts the write: nothing
// is installed, notified or persisted. Holding the lock across persist
// keeps the persisted history in install order; a writer acknowledged
// earlier can never reach storage after a later one.
func (c *Container) UpdateAndPersist(mutate func(domain.Document) (domain.Document, error), persist func(domain.Document) error) (domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := mutate(c.doc.Clone())
	if err != nil {
		return domain.Document{}, err
	}
	next = next.Normalize()
	c.doc = next
	snapshot := next.Clone()
	c.notifyLocked(snapshot)

	if persist != nil {
		if err := persist(snapshot); err != nil {
			return snapshot, err
		}
	}
	return snapshot, nil
}

// Replace installs doc wholesale. The write is a single atomic operation
// relative to concurrent local mutations.
func (c *Container) Replace(doc domain.Document) domain.Document {
	return c.Update(func(domain.Document) domain.Document {
		return doc.Clone()
	})
}

// Subscribe registers an observer. Snapshots of every subsequent write are
// delivered on the returned channel; delivery is non-blocking and a laggard
// subscriber misses updates rather than stalling writers. The returned
// cancel function unregisters and closes the channel.
func (c *Container) Subscribe(buffer int) (<-chan domain.Document, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan domain.Document, buffer)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
		c.mu.Unlock()
	}
	return ch, cancel
}

func (c *Container) notifyLocked(snapshot domain.Document) {
	for _, sub := range c.subs {
		select {
		case sub <- snapshot.Clone():
		default:
		}
	}
}
