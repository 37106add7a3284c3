// Package store holds the in-memory State Store: the single authority over
// every mutable collection of the application. Each successful mutation
// notifies subscribers synchronously on the calling goroutine, after the
// write lock has been released.
package store

import (
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/streetbite/internal/models"
)

// Listener is invoked after every mutation. It takes no arguments; callers
// re-query whatever they need.
type Listener func()

type listenerEntry struct {
	id uint64
	fn Listener
}

type StateStore struct {
	mu            sync.RWMutex
	stores        []*models.Store
	posts         []*models.CommunityPost // newest first
	reservations  []*models.Reservation
	reviews       []*models.Review
	notifications []*models.Notification // newest first
	analytics     []models.LocationAnalytics
	messages      []*models.ChatMessage
	users         map[string]models.User

	lmu          sync.Mutex
	listeners    []listenerEntry
	nextListener uint64

	now    func() time.Time
	rng    *rand.Rand
	newID  func() string
	logger *slog.Logger
}

type Option func(*StateStore)

func WithClock(now func() time.Time) Option {
	return func(s *StateStore) { s.now = now }
}

func WithRand(rng *rand.Rand) Option {
	return func(s *StateStore) { s.rng = rng }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *StateStore) { s.newID = gen }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *StateStore) { s.logger = logger }
}

// WithFixtures seeds the store. Records are copied; the fixture value can be
// reused for several stores.
func WithFixtures(fx Fixtures) Option {
	return func(s *StateStore) { s.seed(fx) }
}

func New(opts ...Option) *StateStore {
	s := &StateStore{
		users:  make(map[string]models.User),
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		newID:  uuid.NewString,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn and returns its disposer. Calling the disposer more
// than once is harmless.
func (s *StateStore) Subscribe(fn Listener) func() {
	s.lmu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.lmu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.lmu.Lock()
			defer s.lmu.Unlock()
			for i, l := range s.listeners {
				if l.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// notify must be called without s.mu held so listeners can read the store.
func (s *StateStore) notify() {
	s.lmu.Lock()
	ls := make([]listenerEntry, len(s.listeners))
	copy(ls, s.listeners)
	s.lmu.Unlock()

	for _, l := range ls {
		l.fn()
	}
}

func (s *StateStore) seed(fx Fixtures) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range fx.Stores {
		v := st.Clone()
		s.stores = append(s.stores, &v)
	}
	for _, p := range fx.Posts {
		v := p.Clone()
		s.posts = append(s.posts, &v)
	}
	rated := make(map[string]struct{})
	for _, r := range fx.Reviews {
		v := r.Clone()
		s.reviews = append(s.reviews, &v)
		rated[r.StoreID] = struct{}{}
	}
	for id := range rated {
		s.recomputeRating(id)
	}
	s.analytics = append(s.analytics, fx.Analytics...)
	for _, m := range fx.Messages {
		v := m
		s.messages = append(s.messages, &v)
	}
}
