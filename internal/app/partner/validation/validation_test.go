package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
)

func validProfile() *domain.PartnerProfile {
	p := domain.NewPartnerProfile("p-1")
	p.Name = "Jordan"
	p.Age = domain.Int(30)
	p.Goals = []domain.Goal{domain.GoalLongTerm}
	p.Hobbies = []domain.Hobby{domain.HobbyHiking, domain.HobbyArt}
	p.FavoriteHobbies = []domain.Hobby{domain.HobbyArt}
	p.InstagramURL = "https://instagram.com/jordan"
	p.SpecialDays = []domain.SpecialDay{{Name: "Birthday", Date: "1996-05-01", Type: domain.SpecialDayBirthday}}
	return p
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid profile", func(t *testing.T) {
		require.NoError(t, v.Validate(validProfile()))
	})

	t.Run("nil profile", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(nil), domain.ErrValidation)
	})

	t.Run("aggregates failures with json names", func(t *testing.T) {
		p := validProfile()
		p.ID = ""
		p.Age = domain.Int(12)
		p.InstagramURL = "not a url"

		err := v.Validate(p)

		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "id: is required, age: must be at least 18, instagramUrl: must be a valid URL")
	})

	t.Run("nested collection entries", func(t *testing.T) {
		p := validProfile()
		p.SpecialDays = append(p.SpecialDays, domain.SpecialDay{Name: "Trip"})

		err := v.Validate(p)

		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "specialDays[1].date: is required")
	})

	t.Run("favorite hobbies must be a subset of hobbies", func(t *testing.T) {
		p := validProfile()
		p.FavoriteHobbies = []domain.Hobby{domain.HobbyYoga}

		err := v.Validate(p)

		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "favoriteHobbies: must be a subset of hobbies")
	})

	t.Run("enum values outside their set", func(t *testing.T) {
		p := validProfile()
		p.LoveLanguage = "telepathy"
		p.Goals = []domain.Goal{domain.GoalCasual, "Long-term"}

		err := v.Validate(p)

		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "loveLanguage: unsupported value telepathy")
		assert.Contains(t, err.Error(), "goals: unsupported value Long-term")
	})
}
