package domain

import "slices"

// ChangeTracker records which fields were edited through the update API
// since the profile was last synced with the remote service.
type ChangeTracker struct {
	dirtyFields map[Field]bool
}

// NewChangeTracker creates a new ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirtyFields: make(map[Field]bool),
	}
}

// MarkDirty marks a field as edited.
func (ct *ChangeTracker) MarkDirty(field Field) {
	ct.dirtyFields[field] = true
}

// Dirty checks if a field has been edited.
func (ct *ChangeTracker) Dirty(field Field) bool {
	return ct.dirtyFields[field]
}

// Clear clears all dirty field markers.
func (ct *ChangeTracker) Clear() {
	ct.dirtyFields = make(map[Field]bool)
}

// HasChanges returns true if any field has been edited.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}

// DirtyFields returns the edited fields in profile order.
func (ct *ChangeTracker) DirtyFields() []Field {
	fields := make([]Field, 0, len(ct.dirtyFields))
	for _, field := range fieldOrder {
		if ct.dirtyFields[field] {
			fields = append(fields, field)
		}
	}
	return slices.Clip(fields)
}
