// Package store holds the draft and saved copies of a partner profile for
// one editing session.
package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
)

// Status is the lifecycle state of a Store.
type Status int

const (
	StatusUninitialized Status = iota
	StatusReady
	StatusDirty
	StatusSaving
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusDirty:
		return "dirty"
	case StatusSaving:
		return "saving"
	default:
		return "uninitialized"
	}
}

// Snapshot is a consistent copy of both profiles taken when a save begins.
type Snapshot struct {
	Draft *domain.PartnerProfile
	Saved *domain.PartnerProfile
}

// Store keeps the saved profile (last known server truth) and the draft
// the user is editing. All methods are safe for concurrent use and every
// profile handed in or out is deep-copied.
type Store struct {
	mu      sync.RWMutex
	logger  *zap.Logger
	draft   *domain.PartnerProfile
	saved   *domain.PartnerProfile
	saving  bool
	lastErr string
	changes *domain.ChangeTracker
}

// New creates an uninitialized store.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		logger:  logger,
		changes: domain.NewChangeTracker(),
	}
}

// Initialize sets draft and saved to copies of p and clears any error.
func (s *Store) Initialize(p *domain.PartnerProfile) {
	if p == nil {
		s.logger.Debug("initialize called without a profile")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saved = p.Clone()
	s.draft = p.Clone()
	s.lastErr = ""
	s.changes.Clear()
}

// UpdateField writes value to field on the draft, marks the field's
// provenance flag false and clears the last error. It is a no-op on an
// uninitialized store and fails while a save is in progress.
func (s *Store) UpdateField(field domain.Field, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		s.logger.Debug("update ignored, store not initialized", zap.String("field", string(field)))
		return nil
	}
	if s.saving {
		return domain.ErrSaveInProgress
	}
	if err := domain.Set(s.draft, field, value); err != nil {
		return err
	}
	s.changes.MarkDirty(field)
	s.lastErr = ""
	return nil
}

// SetSavedProfile replaces both profiles with copies of p, ending any save
// and clearing the last error. The profile id is fixed at Initialize: a
// profile with a different id is ignored, though the save still ends.
func (s *Store) SetSavedProfile(p *domain.PartnerProfile) {
	if p == nil {
		s.logger.Debug("set saved profile called without a profile")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saved != nil && p.ID != s.saved.ID {
		s.logger.Warn("set saved profile ignored, profile id mismatch",
			zap.String("profile_id", s.saved.ID),
			zap.String("got_id", p.ID))
		s.saving = false
		return
	}

	s.saved = p.Clone()
	s.draft = p.Clone()
	s.saving = false
	s.lastErr = ""
	s.changes.Clear()
}

// ResetToSaved discards draft edits.
func (s *Store) ResetToSaved() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saved == nil {
		s.logger.Debug("reset ignored, store not initialized")
		return nil
	}
	if s.saving {
		return domain.ErrSaveInProgress
	}
	s.draft = s.saved.Clone()
	s.changes.Clear()
	return nil
}

// BeginSave enters the saving state and returns copies of both profiles.
// ok is false, with a nil error, when there is nothing to save.
func (s *Store) BeginSave() (snap Snapshot, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil || s.saved == nil {
		return Snapshot{}, false, nil
	}
	if s.saving {
		return Snapshot{}, false, domain.ErrSaveInProgress
	}
	if domain.ProfilesEqual(s.draft, s.saved) {
		return Snapshot{}, false, nil
	}
	s.saving = true
	return Snapshot{Draft: s.draft.Clone(), Saved: s.saved.Clone()}, true, nil
}

// SetIsSaving toggles the saving flag.
func (s *Store) SetIsSaving(saving bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = saving
}

// SetError records msg as the last error. An empty msg clears it.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

// ClearError clears the last error.
func (s *Store) ClearError() {
	s.SetError("")
}

// Draft returns a copy of the draft, or nil before Initialize.
func (s *Store) Draft() *domain.PartnerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft.Clone()
}

// Saved returns a copy of the saved profile, or nil before Initialize.
func (s *Store) Saved() *domain.PartnerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved.Clone()
}

// HasUnsavedChanges reports whether the draft differs from saved on the
// tracked fields. It is recomputed on every call.
func (s *Store) HasUnsavedChanges() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasUnsavedChanges()
}

func (s *Store) hasUnsavedChanges() bool {
	return !domain.ProfilesEqual(s.draft, s.saved)
}

// Status returns the current lifecycle state.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.draft == nil:
		return StatusUninitialized
	case s.saving:
		return StatusSaving
	case s.hasUnsavedChanges():
		return StatusDirty
	default:
		return StatusReady
	}
}

// LastError returns the last recorded error message, or "".
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// TouchedFields lists the fields edited since the last sync, in profile order.
func (s *Store) TouchedFields() []domain.Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changes.DirtyFields()
}
