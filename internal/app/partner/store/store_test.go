package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
)

func newProfile() *domain.PartnerProfile {
	p := domain.NewPartnerProfile("42")
	p.Goals = []domain.Goal{domain.GoalForFun}
	p.GoalsIsAIGenerated = domain.Bool(true)
	p.LoveLanguage = domain.LoveLanguageQualityTime
	p.LoveLanguageIsAIGenerated = domain.Bool(true)
	p.Hobbies = []domain.Hobby{domain.HobbyHiking}
	p.HobbiesIsAIGenerated = domain.Bool(true)
	p.ChemistryScore = domain.Int(70)
	return p
}

func initialized(t *testing.T) *Store {
	t.Helper()
	s := New(zap.NewNop())
	s.Initialize(newProfile())
	return s
}

func TestStore_ScenarioReset(t *testing.T) {
	s := initialized(t)

	require.NoError(t, s.UpdateField(domain.FieldGoals, []domain.Goal{domain.GoalLongTerm, domain.GoalDateToMarry}))
	assert.True(t, s.HasUnsavedChanges())
	assert.Equal(t, StatusDirty, s.Status())

	require.NoError(t, s.ResetToSaved())

	assert.Equal(t, []domain.Goal{domain.GoalForFun}, s.Draft().Goals)
	assert.False(t, s.HasUnsavedChanges())
	assert.Equal(t, StatusReady, s.Status())
	assert.Empty(t, s.TouchedFields())
}

func TestStore_Initialize(t *testing.T) {
	t.Run("copies the profile", func(t *testing.T) {
		p := newProfile()
		s := New(zap.NewNop())
		s.Initialize(p)

		p.Goals[0] = domain.GoalCasual
		assert.Equal(t, domain.GoalForFun, s.Draft().Goals[0])
		assert.Equal(t, domain.GoalForFun, s.Saved().Goals[0])
	})

	t.Run("clears the last error", func(t *testing.T) {
		s := initialized(t)
		s.SetError("boom")
		s.Initialize(newProfile())
		assert.Empty(t, s.LastError())
	})

	t.Run("nil profile is ignored", func(t *testing.T) {
		s := New(nil)
		s.Initialize(nil)
		assert.Equal(t, StatusUninitialized, s.Status())
	})
}

func TestStore_Uninitialized(t *testing.T) {
	s := New(zap.NewNop())

	assert.NoError(t, s.UpdateField(domain.FieldGoals, []domain.Goal{domain.GoalCasual}))
	assert.NoError(t, s.ResetToSaved())
	assert.Nil(t, s.Draft())
	assert.Nil(t, s.Saved())
	assert.False(t, s.HasUnsavedChanges())
	assert.Equal(t, StatusUninitialized, s.Status())

	_, ok, err := s.BeginSave()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_UpdateField(t *testing.T) {
	t.Run("clears the companion flag for every flagged field", func(t *testing.T) {
		for _, f := range domain.Fields() {
			flag, ok := domain.CompanionFlag(f)
			if !ok {
				continue
			}
			for _, prior := range []*bool{nil, domain.Bool(true), domain.Bool(false)} {
				p := newProfile()
				require.NoError(t, setFlag(p, flag, prior))
				s := New(zap.NewNop())
				s.Initialize(p)

				current, err := domain.Get(s.Draft(), f)
				require.NoError(t, err)
				require.NoError(t, s.UpdateField(f, current))

				got, err := domain.Get(s.Draft(), flag)
				require.NoError(t, err)
				assert.Equal(t, domain.Bool(false), got, "field %s prior %v", f, prior)
			}
		}
	})

	t.Run("clears the nested attachment flag", func(t *testing.T) {
		s := initialized(t)
		require.NoError(t, s.UpdateField(domain.FieldAttachmentTendency, &domain.AttachmentTendency{
			Tendency:      domain.AttachmentSecure,
			IsAIGenerated: domain.Bool(true),
		}))
		assert.Equal(t, domain.Bool(false), s.Draft().AttachmentTendency.IsAIGenerated)
	})

	t.Run("leaves saved untouched", func(t *testing.T) {
		s := initialized(t)
		require.NoError(t, s.UpdateField(domain.FieldName, "Riley"))
		assert.Equal(t, "Riley", s.Draft().Name)
		assert.Empty(t, s.Saved().Name)
	})

	t.Run("clears the last error", func(t *testing.T) {
		s := initialized(t)
		s.SetError("network down")
		require.NoError(t, s.UpdateField(domain.FieldName, "Riley"))
		assert.Empty(t, s.LastError())
	})

	t.Run("records touched fields", func(t *testing.T) {
		s := initialized(t)
		require.NoError(t, s.UpdateField(domain.FieldHobbies, []domain.Hobby{domain.HobbyArt}))
		require.NoError(t, s.UpdateField(domain.FieldName, "Riley"))
		assert.Equal(t, []domain.Field{domain.FieldName, domain.FieldHobbies}, s.TouchedFields())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		s := initialized(t)
		assert.ErrorIs(t, s.UpdateField("nope", 1), domain.ErrUnknownField)
		assert.ErrorIs(t, s.UpdateField(domain.FieldID, "43"), domain.ErrFieldNotEditable)
		assert.ErrorIs(t, s.UpdateField(domain.FieldGoals, "long_term"), domain.ErrFieldType)
		assert.Empty(t, s.TouchedFields())
	})
}

func setFlag(p *domain.PartnerProfile, flag domain.Field, v *bool) error {
	switch flag {
	case domain.FieldGoalsIsAIGenerated:
		p.GoalsIsAIGenerated = v
	case domain.FieldLoveLanguageIsAIGenerated:
		p.LoveLanguageIsAIGenerated = v
	case domain.FieldCommunicationStylesIsAIGenerated:
		p.CommunicationStylesIsAIGenerated = v
	case domain.FieldAppreciatedThingsIsAIGenerated:
		p.AppreciatedThingsIsAIGenerated = v
	case domain.FieldWorkRhythmIsAIGenerated:
		p.WorkRhythmIsAIGenerated = v
	case domain.FieldSocialEnergyLevelIsAIGenerated:
		p.SocialEnergyLevelIsAIGenerated = v
	case domain.FieldDateBudgetIsAIGenerated:
		p.DateBudgetIsAIGenerated = v
	case domain.FieldHobbiesIsAIGenerated:
		p.HobbiesIsAIGenerated = v
	default:
		return domain.ErrUnknownField
	}
	return nil
}

func TestStore_DirtyDetectionScope(t *testing.T) {
	tests := []struct {
		field domain.Field
		value any
		dirty bool
	}{
		{domain.FieldChemistryScore, domain.Int(95), false},
		{domain.FieldInstagramURL, "https://instagram.com/x", false},
		{domain.FieldCycleTracking, &domain.CycleTracking{IsPrivate: true}, false},
		{domain.FieldName, "Riley", false},
		{domain.FieldHobbies, []domain.Hobby{domain.HobbyArt}, true},
		{domain.FieldLoveLanguage, domain.LoveLanguageGifts, true},
		{domain.FieldSpecialDays, []domain.SpecialDay{{Name: "Anniversary"}}, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			s := initialized(t)
			require.NoError(t, s.UpdateField(tt.field, tt.value))
			assert.Equal(t, tt.dirty, s.HasUnsavedChanges())
		})
	}
}

func TestStore_Save(t *testing.T) {
	t.Run("clean store has nothing to save", func(t *testing.T) {
		s := initialized(t)
		_, ok, err := s.BeginSave()
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, StatusReady, s.Status())
	})

	t.Run("begin save snapshots and blocks edits", func(t *testing.T) {
		s := initialized(t)
		require.NoError(t, s.UpdateField(domain.FieldHobbies, []domain.Hobby{domain.HobbyArt}))

		snap, ok, err := s.BeginSave()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []domain.Hobby{domain.HobbyArt}, snap.Draft.Hobbies)
		assert.Equal(t, []domain.Hobby{domain.HobbyHiking}, snap.Saved.Hobbies)
		assert.Equal(t, StatusSaving, s.Status())

		_, _, err = s.BeginSave()
		assert.ErrorIs(t, err, domain.ErrSaveInProgress)
		assert.ErrorIs(t, s.UpdateField(domain.FieldName, "x"), domain.ErrSaveInProgress)
		assert.ErrorIs(t, s.ResetToSaved(), domain.ErrSaveInProgress)
	})

	t.Run("set saved profile collapses draft into saved", func(t *testing.T) {
		s := initialized(t)
		require.NoError(t, s.UpdateField(domain.FieldHobbies, []domain.Hobby{domain.HobbyArt}))
		snap, _, err := s.BeginSave()
		require.NoError(t, err)

		s.SetSavedProfile(snap.Draft)

		assert.Equal(t, StatusReady, s.Status())
		assert.Equal(t, []domain.Hobby{domain.HobbyArt}, s.Saved().Hobbies)
		assert.False(t, s.HasUnsavedChanges())
		assert.Empty(t, s.TouchedFields())
	})

	t.Run("saved profile with another id is ignored", func(t *testing.T) {
		s := initialized(t)
		require.NoError(t, s.UpdateField(domain.FieldHobbies, []domain.Hobby{domain.HobbyArt}))
		_, _, err := s.BeginSave()
		require.NoError(t, err)

		other := newProfile()
		other.ID = "43"
		s.SetSavedProfile(other)

		assert.Equal(t, "42", s.Saved().ID)
		assert.Equal(t, "42", s.Draft().ID)
		assert.Equal(t, []domain.Hobby{domain.HobbyArt}, s.Draft().Hobbies)
		assert.Equal(t, StatusDirty, s.Status())
	})

	t.Run("failed save returns to dirty with error", func(t *testing.T) {
		s := initialized(t)
		require.NoError(t, s.UpdateField(domain.FieldHobbies, []domain.Hobby{domain.HobbyArt}))
		_, _, err := s.BeginSave()
		require.NoError(t, err)

		s.SetError("timeout")
		s.SetIsSaving(false)

		assert.Equal(t, StatusDirty, s.Status())
		assert.Equal(t, "timeout", s.LastError())
		assert.Equal(t, []domain.Hobby{domain.HobbyArt}, s.Draft().Hobbies)
	})
}

func TestStore_ReadsAreCopies(t *testing.T) {
	s := initialized(t)
	d := s.Draft()
	d.Goals[0] = domain.GoalCasual
	d.Hobbies = append(d.Hobbies, domain.HobbyArt)

	assert.False(t, s.HasUnsavedChanges())
	assert.Equal(t, domain.GoalForFun, s.Draft().Goals[0])
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	s := initialized(t)
	hobbies := domain.Hobbies.Values()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.UpdateField(domain.FieldHobbies, []domain.Hobby{hobbies[i%len(hobbies)]})
			_ = s.HasUnsavedChanges()
			_ = s.Draft()
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Draft().Hobbies, 1)
	assert.Equal(t, domain.Bool(false), s.Draft().HobbiesIsAIGenerated)
}
