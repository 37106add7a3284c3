// Package binding adapts the State Store for views: it keeps a cached store
// snapshot that is refreshed whenever the State Store notifies, and exposes
// every State Store method unchanged.
package binding

import (
	"sync"

	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/joshua-takyi/streetbite/internal/store"
)

type Binding struct {
	*store.StateStore

	mu          sync.RWMutex
	stores      []models.Store
	version     uint64
	hooks       []func(version uint64)
	unsubscribe func()
}

func New(state *store.StateStore) *Binding {
	b := &Binding{
		StateStore: state,
		stores:     state.GetStores(),
	}
	b.unsubscribe = state.Subscribe(b.refresh)
	return b
}

// Stores returns the cached snapshot taken after the last notification.
func (b *Binding) Stores() []models.Store {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]models.Store, len(b.stores))
	for i, st := range b.stores {
		out[i] = st.Clone()
	}
	return out
}

// Version counts refreshes since the binding was created.
func (b *Binding) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// OnRefresh registers fn to run after every refresh, on the goroutine that
// performed the mutation.
func (b *Binding) OnRefresh(fn func(version uint64)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks = append(b.hooks, fn)
}

func (b *Binding) Close() {
	b.unsubscribe()
}

// refresh re-reads under b.mu so concurrent refreshes cannot install an
// older snapshot over a newer one. The State Store lock is never held here.
func (b *Binding) refresh() {
	b.mu.Lock()
	b.stores = b.StateStore.GetStores()
	b.version++
	version := b.version
	hooks := append([]func(uint64){}, b.hooks...)
	b.mu.Unlock()

	for _, fn := range hooks {
		fn(version)
	}
}
