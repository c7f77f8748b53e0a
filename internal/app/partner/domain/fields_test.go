package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleValues holds one valid, non-zero value for every editable field.
var sampleValues = map[Field]any{
	FieldName:                      "Alex",
	FieldNickname:                  "Al",
	FieldAge:                       Int(29),
	FieldLocation:                  "Lisbon",
	FieldAvatarURL:                 "https://example.com/a.png",
	FieldStage:                     StageEngaged,
	FieldIsPremium:                 true,
	FieldGoals:                     []Goal{GoalLongTerm, GoalDateToMarry},
	FieldLoveLanguage:              LoveLanguageQualityTime,
	FieldCommunicationStyles:       []CommunicationStyle{CommunicationDirect},
	FieldAttachmentTendency:        &AttachmentTendency{Tendency: AttachmentAnxious, IsAIGenerated: Bool(true)},
	FieldDealBreakers:              []DealBreaker{DealBreakerSmoking},
	FieldAppreciatedThings:         []AppreciatedThing{AppreciatesSurprises},
	FieldWorkRhythm:                WorkNightOwl,
	FieldSocialEnergyLevel:         SocialExtrovert,
	FieldDateBudget:                BudgetHigh,
	FieldHobbies:                   []Hobby{HobbyYoga, HobbyArt},
	FieldFavoriteHobbies:           []Hobby{HobbyYoga},
	FieldCycleTracking:             &CycleTracking{PredictedStart: "2026-10-01", IsPrivate: true},
	FieldSocialSignals:             []SocialSignal{{Title: "Night texter"}},
	FieldSocialSignalTags:          []string{"responsive"},
	FieldInstagramURL:              "https://instagram.com/alex",
	FieldFacebookURL:               "https://facebook.com/alex",
	FieldThreadsURL:                "https://threads.net/@alex",
	FieldTikTokURL:                 "https://tiktok.com/@alex",
	FieldInterestLevel:             InterestHigh,
	FieldInterestLevelConfidence:   Float(0.7),
	FieldMoodTrend:                 MoodStable,
	FieldChemistryScore:            Int(91),
	FieldChemistryScoreDescription: "Great match",
	FieldWhatWorksWell:             []string{"Humor"},
	FieldSpecialDays:               []SpecialDay{{ID: "1", Type: SpecialDayAnniversary, Name: "Anniv", Date: "2024-06-01"}},
	FieldGiftIdeas:                 []GiftIdea{{ID: "1", Name: "Plant", Price: "30"}},
}

func TestFields_Registry(t *testing.T) {
	for _, f := range Fields() {
		assert.True(t, f.Valid(), "field %s", f)
	}
	assert.False(t, Field("favouriteColour").Valid())

	for f := range sampleValues {
		assert.True(t, f.Editable(), "field %s should be editable", f)
	}
	assert.False(t, FieldID.Editable())
	assert.False(t, FieldGoalsIsAIGenerated.Editable())
}

func TestSet_RoundTripsThroughGet(t *testing.T) {
	for f, v := range sampleValues {
		t.Run(string(f), func(t *testing.T) {
			p := NewPartnerProfile("1")
			require.NoError(t, Set(p, f, v))
			got, err := Get(p, f)
			require.NoError(t, err)
			if f == FieldAttachmentTendency {
				// the nested provenance flag is cleared on edit
				assert.Equal(t, AttachmentAnxious, got.(*AttachmentTendency).Tendency)
				return
			}
			assert.True(t, FieldEqual(v, got), "want %v got %v", v, got)
		})
	}
}

func TestSet_ClearsCompanionFlag(t *testing.T) {
	for f, v := range sampleValues {
		flag, ok := CompanionFlag(f)
		if !ok {
			continue
		}
		t.Run(string(f), func(t *testing.T) {
			for _, prior := range []*bool{nil, Bool(true), Bool(false)} {
				p := NewPartnerProfile("1")
				require.NoError(t, fieldSpecs[flag].set(p, prior))

				require.NoError(t, Set(p, f, v))

				got, err := Get(p, flag)
				require.NoError(t, err)
				require.NotNil(t, got.(*bool))
				assert.False(t, *got.(*bool))
			}
		})
	}
}

func TestSet_ClearsNestedAttachmentFlag(t *testing.T) {
	p := NewPartnerProfile("1")
	in := &AttachmentTendency{Tendency: AttachmentSecure, IsAIGenerated: Bool(true)}

	require.NoError(t, Set(p, FieldAttachmentTendency, in))

	require.NotNil(t, p.AttachmentTendency.IsAIGenerated)
	assert.False(t, *p.AttachmentTendency.IsAIGenerated)
	assert.True(t, *in.IsAIGenerated, "caller's value must not be mutated")
}

func TestSet_Errors(t *testing.T) {
	p := NewPartnerProfile("1")

	t.Run("unknown field", func(t *testing.T) {
		assert.ErrorIs(t, Set(p, Field("nope"), "x"), ErrUnknownField)
	})

	t.Run("id is immutable", func(t *testing.T) {
		assert.ErrorIs(t, Set(p, FieldID, "2"), ErrFieldNotEditable)
		assert.Equal(t, "1", p.ID)
	})

	t.Run("flags are not directly editable", func(t *testing.T) {
		assert.ErrorIs(t, Set(p, FieldHobbiesIsAIGenerated, Bool(true)), ErrFieldNotEditable)
	})

	t.Run("wrong type", func(t *testing.T) {
		assert.ErrorIs(t, Set(p, FieldGoals, []string{"long_term"}), ErrFieldType)
		assert.ErrorIs(t, Set(p, FieldAge, 30), ErrFieldType)
	})

	t.Run("nil resets to zero value", func(t *testing.T) {
		p.Age = Int(30)
		require.NoError(t, Set(p, FieldAge, nil))
		assert.Nil(t, p.Age)
	})
}

func TestSet_CopiesSlices(t *testing.T) {
	p := NewPartnerProfile("1")
	goals := []Goal{GoalCasual}
	require.NoError(t, Set(p, FieldGoals, goals))
	goals[0] = GoalLongTerm
	assert.Equal(t, []Goal{GoalCasual}, p.Goals)
}
