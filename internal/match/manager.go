// Package match keeps the registry of running matches. Every match sits
// behind its own mutex so callers on different goroutines can share it.
package match

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/conquest/internal/config"
	"github.com/mitchelldurbincs/conquest/internal/game"
)

const finishedMatchTTL = 10 * time.Minute // Keep finished matches for 10 minutes

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrAtCapacity    = errors.New("match manager at capacity")
	ErrClosed        = errors.New("match manager closed")
)

type matchEntry struct {
	mu    sync.Mutex
	match *game.Match

	// Activity tracking for cleanup
	createdAt    time.Time
	lastActivity time.Time
}

// Manager manages all active matches
type Manager struct {
	mu          sync.RWMutex
	matches     map[string]*matchEntry
	maxMatches  int
	idleTimeout time.Duration
	closed      bool

	logger zerolog.Logger
	now    func() time.Time

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewManager creates a match manager with the registry limits of cfg. A
// positive cleanup interval starts the background cleanup; Close stops it.
func NewManager(cfg config.MatchConfig) *Manager {
	m := &Manager{
		matches:     make(map[string]*matchEntry),
		maxMatches:  cfg.MaxMatches,
		idleTimeout: time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
		logger:      log.With().Str("component", "MatchManager").Logger(),
		now:         time.Now,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	if interval := time.Duration(cfg.CleanupIntervalSeconds) * time.Second; interval > 0 {
		go m.runCleanup(interval)
	} else {
		close(m.done)
	}
	return m
}

// CreateMatch sets up a new match under a fresh id. The match logs through
// the manager's logger.
func (m *Manager) CreateMatch(ctx context.Context, cfg game.GameConfig) (string, *game.Match, error) {
	if err := m.checkCapacity(); err != nil {
		return "", nil, err
	}

	if cfg.MatchID == "" {
		cfg.MatchID = uuid.NewString()
	}
	cfg.Logger = m.logger.With().Str("match_id", cfg.MatchID).Logger()

	match, err := game.SetupMatch(ctx, cfg)
	if err != nil {
		return "", nil, fmt.Errorf("failed to set up match: %w", err)
	}

	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", nil, ErrClosed
	}
	if m.maxMatches > 0 && len(m.matches) >= m.maxMatches {
		return "", nil, fmt.Errorf("%w: %d/%d matches active", ErrAtCapacity, len(m.matches), m.maxMatches)
	}
	if _, exists := m.matches[cfg.MatchID]; exists {
		return "", nil, fmt.Errorf("match %s already exists", cfg.MatchID)
	}
	m.matches[cfg.MatchID] = &matchEntry{match: match, createdAt: now, lastActivity: now}

	m.logger.Info().
		Str("match_id", cfg.MatchID).
		Int("players", len(cfg.Players)).
		Int("active_matches", len(m.matches)).
		Msg("Created match")
	return cfg.MatchID, match, nil
}

func (m *Manager) checkCapacity() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	if m.maxMatches > 0 && len(m.matches) >= m.maxMatches {
		m.logger.Warn().
			Int("current_matches", len(m.matches)).
			Int("max_matches", m.maxMatches).
			Msg("Rejecting match creation - manager at capacity")
		return fmt.Errorf("%w: %d/%d matches active", ErrAtCapacity, len(m.matches), m.maxMatches)
	}
	return nil
}

// GetMatch retrieves a match by id. The match is not safe for concurrent
// use; go through Do when other goroutines may touch it.
func (m *Manager) GetMatch(id string) (*game.Match, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.matches[id]
	if !ok {
		return nil, false
	}
	return e.match, true
}

// Do runs fn with exclusive access to a match and records the activity.
func (m *Manager) Do(id string, fn func(*game.Match) error) error {
	m.mu.RLock()
	e, ok := m.matches[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastActivity = m.now()
	return fn(e.match)
}

// RemoveMatch drops a match from the registry and reports whether it existed.
func (m *Manager) RemoveMatch(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.matches[id]; !ok {
		return false
	}
	delete(m.matches, id)
	m.logger.Info().Str("match_id", id).Int("active_matches", len(m.matches)).Msg("Removed match")
	return true
}

// ActiveMatches returns the number of registered matches
func (m *Manager) ActiveMatches() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matches)
}

// Close stops the background cleanup and refuses new matches. Registered
// matches stay reachable.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()
		close(m.stop)
	})
	<-m.done
}

// runCleanup periodically removes finished and abandoned matches
func (m *Manager) runCleanup(interval time.Duration) {
	defer close(m.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.cleanupMatches()
		}
	}
}

// cleanupMatches removes finished matches after finishedMatchTTL and matches
// idle for longer than the idle timeout.
func (m *Manager) cleanupMatches() {
	// Collect references without holding the registry lock while taking match locks
	m.mu.RLock()
	ids := make([]string, 0, len(m.matches))
	entries := make([]*matchEntry, 0, len(m.matches))
	for id, e := range m.matches {
		ids = append(ids, id)
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	now := m.now()
	var toDelete []string
	for i, e := range entries {
		e.mu.Lock()
		inactive := now.Sub(e.lastActivity)
		over := e.match.IsOver()
		createdAt := e.createdAt
		e.mu.Unlock()

		reason := ""
		switch {
		case over && inactive > finishedMatchTTL:
			reason = "finished match TTL expired"
		case m.idleTimeout > 0 && inactive > m.idleTimeout:
			reason = "match abandoned (no activity)"
		default:
			continue
		}
		toDelete = append(toDelete, ids[i])
		m.logger.Info().
			Str("match_id", ids[i]).
			Str("reason", reason).
			Dur("age", now.Sub(createdAt)).
			Dur("inactive", inactive).
			Msg("Cleaning up match")
	}

	if len(toDelete) == 0 {
		return
	}
	m.mu.Lock()
	for _, id := range toDelete {
		delete(m.matches, id)
	}
	remaining := len(m.matches)
	m.mu.Unlock()

	m.logger.Info().
		Int("cleaned", len(toDelete)).
		Int("remaining", remaining).
		Msg("Match cleanup completed")
}
