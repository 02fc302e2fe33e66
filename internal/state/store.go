package state

import (
	"sync"

	"go.uber.org/zap"

	"taskboard-client/internal/metrics"
)

// Store composes the four state slices behind one subscription point.
// Dispatch is serialized: each transition is applied to completion
// before the next, so overlapping network completions cannot tear a
// state tree even though they may arrive in any order. The store does
// no request fencing; for a single entity id the final state reflects
// the most recently completed operation, and callers that overlap edits
// to the same entity must serialize themselves.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int

	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New creates a Store with empty caches. Both logger and metrics may be
// nil.
func New(logger *zap.Logger, m *metrics.Metrics) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		state:     newState(),
		listeners: make(map[int]func(State)),
		logger:    logger,
		metrics:   m,
	}
}

// Dispatch applies one transition and notifies subscribers with the new
// snapshot. Listeners run on the dispatching goroutine after the state
// swap; they receive the snapshot as an argument and may call back into
// the store.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	snapshot := s.state
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	s.logger.Debug("Dispatched state transition", zap.String("action", a.Type()))
	if s.metrics != nil {
		s.metrics.RecordStoreDispatch(a.Type())
	}

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// GetState returns the current snapshot. Snapshots are copy-on-write:
// later dispatches never mutate a returned value.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener invoked after every dispatch. The
// returned function removes the listener; calling it twice is a no-op.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
