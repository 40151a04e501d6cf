package flight

import (
	"context"
	"strconv"
	"sync"
	"time"

	"flightdemo/pkg/idgen"
	"flightdemo/pkg/logger"
)

type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateSearching SessionState = "searching"
	StateResults   SessionState = "results"
	StateEmpty     SessionState = "empty"
	StateFallback  SessionState = "fallback"
)

// Session is the results-page state for one page view. Each submission gets a new
// generation; a completion is applied only if it still carries the latest generation
// and the session has not been closed.
type Session struct {
	id int64

	mu           sync.Mutex
	state        SessionState
	generation   int64
	closed       bool
	request      *SearchRequest
	presentation *Presentation
}

type SessionSnapshot struct {
	ID           string         `json:"id"`
	State        SessionState   `json:"state"`
	Generation   string         `json:"generation,omitempty"`
	Request      *SearchRequest `json:"request,omitempty"`
	Presentation *Presentation  `json:"results,omitempty"`
	Discarded    bool           `json:"discarded,omitempty"`
}

func newSession(id int64) *Session {
	return &Session{id: id, state: StateIdle}
}

func (s *Session) ID() int64 {
	return s.id
}

// Begin moves the session to Searching under a new generation.
func (s *Session) Begin(generation int64, req SearchRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.generation = generation
	s.state = StateSearching
	s.request = &req
	s.presentation = nil
	return true
}

// Complete applies a finished search. It reports false when the response is stale.
func (s *Session) Complete(generation int64, result SearchResult, presentation Presentation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.generation {
		return false
	}

	switch {
	case result.Provenance == ProvenanceFallback:
		s.state = StateFallback
	case len(result.Offers) == 0:
		s.state = StateEmpty
	default:
		s.state = StateResults
	}
	s.presentation = &presentation
	return true
}

// Close marks the page as gone. Later completions are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Snapshot shares the request and presentation pointers. Begin and Complete replace
// them wholesale and never mutate a stored value, so readers may hold them.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{
		ID:           strconv.FormatInt(s.id, 10),
		State:        s.state,
		Request:      s.request,
		Presentation: s.presentation,
	}
	if s.generation != 0 {
		snap.Generation = strconv.FormatInt(s.generation, 10)
	}
	return snap
}

type searcher interface {
	SearchFlights(ctx context.Context, req SearchRequest) SearchResult
}

// DefaultSessionTTL is how long a session survives without being read or searched.
const DefaultSessionTTL = 30 * time.Minute

const sessionCleanupInterval = 10 * time.Minute

// Sessions owns the open results-page sessions. A session idle for longer than the TTL
// is expired on read and by a background sweep, so page views that end without a
// Close do not accumulate.
type Sessions struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	expiry   map[int64]time.Time
	ttl      time.Duration
	now      func() time.Time
	done     chan struct{}
	once     sync.Once

	ids      idgen.Generator
	builder  *Builder
	searcher searcher
	logger   logger.Logger
}

// NewSessions starts the expiry sweep; call Stop to end it. A non-positive ttl uses
// DefaultSessionTTL.
func NewSessions(ids idgen.Generator, builder *Builder, searcher searcher, ttl time.Duration, logger logger.Logger) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	m := &Sessions{
		sessions: make(map[int64]*Session),
		expiry:   make(map[int64]time.Time),
		ttl:      ttl,
		now:      time.Now,
		done:     make(chan struct{}),
		ids:      ids,
		builder:  builder,
		searcher: searcher,
		logger:   logger,
	}
	go m.cleanupRoutine()
	return m
}

func (m *Sessions) Open() *Session {
	s := newSession(m.ids.GenerateID())

	m.mu.Lock()
	m.sessions[s.id] = s
	m.expiry[s.id] = m.now().Add(m.ttl)
	m.mu.Unlock()

	return s
}

// Get returns an open session and extends its lifetime.
func (m *Sessions) Get(id int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := m.now()
	if now.After(m.expiry[id]) {
		m.evictLocked(id, s)
		return nil, ErrSessionNotFound
	}

	m.expiry[id] = now.Add(m.ttl)
	return s, nil
}

func (m *Sessions) Close(id int64) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		m.evictLocked(id, s)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

// Len reports the number of sessions currently held.
func (m *Sessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Stop ends the expiry sweep. Sessions stay readable.
func (m *Sessions) Stop() {
	m.once.Do(func() {
		close(m.done)
	})
}

func (m *Sessions) cleanupRoutine() {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.removeExpired()
		case <-m.done:
			return
		}
	}
}

func (m *Sessions) removeExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, s := range m.sessions {
		if now.After(m.expiry[id]) {
			m.evictLocked(id, s)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Debug("expired results sessions", logger.Field{Key: "count", Value: removed})
	}
	return removed
}

// evictLocked drops the session and closes it so an in-flight search cannot apply.
// m.mu must be held.
func (m *Sessions) evictLocked(id int64, s *Session) {
	delete(m.sessions, id)
	delete(m.expiry, id)
	s.Close()
}

// Submit validates the input and runs one search for the session. Validation errors are
// returned before any state change. When a newer submission or a Close overtakes this
// one, its result is dropped and the returned snapshot is marked Discarded.
func (m *Sessions) Submit(ctx context.Context, id int64, in RawInput) (SessionSnapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return SessionSnapshot{}, err
	}

	req, err := m.builder.Build(in)
	if err != nil {
		return SessionSnapshot{}, err
	}

	generation := m.ids.GenerateID()
	if !s.Begin(generation, req) {
		return SessionSnapshot{}, ErrSessionNotFound
	}

	result := m.searcher.SearchFlights(ctx, req)

	if !s.Complete(generation, result, Present(result, req)) {
		m.logger.Info("discarding stale search response",
			logger.Field{Key: "session_id", Value: id},
			logger.Field{Key: "generation", Value: generation},
		)
		snap := s.Snapshot()
		snap.Discarded = true
		return snap, nil
	}

	return s.Snapshot(), nil
}
