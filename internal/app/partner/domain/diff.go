package domain

import (
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TrackedFields are the fields ProfilesEqual compares. Edits to any other
// field (social URLs, cycle tracking, insights, provenance flags, identity)
// do not make a profile dirty.
//
// TODO(profile-sync): confirm with product whether cycleTracking and the
// social URLs should join this set; they are editable but currently never
// mark the session dirty.
var TrackedFields = []Field{
	FieldGoals,
	FieldLoveLanguage,
	FieldCommunicationStyles,
	FieldAttachmentTendency,
	FieldDealBreakers,
	FieldAppreciatedThings,
	FieldWorkRhythm,
	FieldSocialEnergyLevel,
	FieldDateBudget,
	FieldHobbies,
	FieldFavoriteHobbies,
	FieldSocialSignals,
	FieldSpecialDays,
}

// ProfileDiff maps each changed field to its value on the draft.
type ProfileDiff map[Field]any

// Fields returns the changed fields in profile order.
func (d ProfileDiff) Fields() []Field {
	out := make([]Field, 0, len(d))
	for _, f := range fieldOrder {
		if _, ok := d[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Has reports whether f changed.
func (d ProfileDiff) Has(f Field) bool {
	_, ok := d[f]
	return ok
}

// IsEmpty returns true if nothing changed.
func (d ProfileDiff) IsEmpty() bool {
	return len(d) == 0
}

// equateEmpty makes a nil slice equal to an empty one; the wire transform
// produces empty slices while hand-built profiles often leave them nil.
var equateEmpty = cmpopts.EquateEmpty()

// FieldEqual compares two values of the same field. Scalars compare by
// value (including through pointers), slices positionally and nested
// objects structurally.
func FieldEqual(a, b any) bool {
	return cmp.Equal(a, b, equateEmpty)
}

// ComputeProfileDiff returns every field whose draft value differs from the
// saved value. Unchanged fields are absent from the result.
func ComputeProfileDiff(draft, saved *PartnerProfile) ProfileDiff {
	diff := make(ProfileDiff)
	if draft == nil {
		return diff
	}
	if saved == nil {
		saved = &PartnerProfile{}
	}
	for _, f := range fieldOrder {
		s := fieldSpecs[f]
		dv, sv := s.get(draft), s.get(saved)
		if !FieldEqual(dv, sv) {
			diff[f] = dv
		}
	}
	return diff
}

// ProfilesEqual compares a and b on TrackedFields only. It is the
// "has unsaved changes" test, not a full equality check.
func ProfilesEqual(a, b *PartnerProfile) bool {
	if a == nil || b == nil {
		return a == b
	}
	for _, f := range TrackedFields {
		s := fieldSpecs[f]
		if !FieldEqual(s.get(a), s.get(b)) {
			return false
		}
	}
	return true
}

// IsTracked reports whether edits to f affect ProfilesEqual.
func IsTracked(f Field) bool {
	return slices.Contains(TrackedFields, f)
}
