// Package sessions tracks open profile-editing sessions, each with its own
// draft/saved store.
package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/store"
	"github.com/light-bringer/partner-profile-service/internal/pkg/clock"
)

// Session is one user editing one partner profile.
type Session struct {
	ID        string
	PartnerID string
	UserID    string
	Store     *store.Store
	OpenedAt  time.Time

	lastSeen time.Time
}

// Registry owns the open sessions. Sessions idle for longer than the idle
// timeout are closed by Sweep.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
	clock    clock.Clock
	logger   *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(idleTTL time.Duration, clk clock.Clock, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		clock:    clk,
		logger:   logger,
	}
}

// Open starts a session with an uninitialized store.
func (r *Registry) Open(partnerID, userID string) *Session {
	now := r.clock.Now()
	s := &Session{
		ID:        uuid.New().String(),
		PartnerID: partnerID,
		UserID:    userID,
		Store:     store.New(r.logger.With(zap.String("partner_id", partnerID))),
		OpenedAt:  now,
		lastSeen:  now,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.Debug("session opened", zap.String("session_id", s.ID), zap.String("partner_id", partnerID))
	return s
}

// Get returns the session and marks it as recently used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s.lastSeen = r.clock.Now()
	return s, nil
}

// Close removes the session.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions idle since before now minus the idle timeout and
// returns how many were closed. Sessions with a save in flight are kept.
func (r *Registry) Sweep(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	closed := 0
	for id, s := range r.sessions {
		if !s.lastSeen.Before(cutoff) {
			continue
		}
		if s.Store.Status() == store.StatusSaving {
			continue
		}
		if s.Store.HasUnsavedChanges() {
			r.logger.Info("discarding unsaved edits of idle session",
				zap.String("session_id", id), zap.String("partner_id", s.PartnerID))
		}
		delete(r.sessions, id)
		closed++
	}
	return closed
}

// Run sweeps every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(r.clock.Now()); n > 0 {
				r.logger.Debug("idle sessions closed", zap.Int("count", n), zap.Int("open", r.Len()))
			}
		}
	}
}
