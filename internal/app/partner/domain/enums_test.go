package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnum_Parse(t *testing.T) {
	t.Run("canonical value", func(t *testing.T) {
		g, ok := Goals.Parse("long_term")
		assert.True(t, ok)
		assert.Equal(t, GoalLongTerm, g)
	})

	t.Run("display spelling", func(t *testing.T) {
		g, ok := Goals.Parse("Long-term")
		assert.True(t, ok)
		assert.Equal(t, GoalLongTerm, g)

		l, ok := LoveLanguages.Parse("Quality Time")
		assert.True(t, ok)
		assert.Equal(t, LoveLanguageQualityTime, l)
	})

	t.Run("alias", func(t *testing.T) {
		a, ok := AttachmentStyles.Parse("Disorganized")
		assert.True(t, ok)
		assert.Equal(t, AttachmentFearfulAvoidant, a)
	})

	t.Run("unknown value", func(t *testing.T) {
		_, ok := Goals.Parse("Not-a-real-goal")
		assert.False(t, ok)
	})

	t.Run("empty value", func(t *testing.T) {
		_, ok := Goals.Parse("")
		assert.False(t, ok)
	})
}

func TestEnum_Filter(t *testing.T) {
	got := Goals.Filter([]string{"Long-term", "Not-a-real-goal", "for_fun"})
	assert.Equal(t, []Goal{GoalLongTerm, GoalForFun}, got)

	empty := Hobbies.Filter(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestEnum_Contains(t *testing.T) {
	assert.True(t, Hobbies.Contains(HobbyYoga))
	assert.False(t, Hobbies.Contains(Hobby("skydiving")))
	assert.False(t, Hobbies.Contains(""))
	assert.False(t, Goals.Contains(Goal("Long-term")))
	assert.False(t, DateBudgets.Contains(DateBudget("$$")))
}

func TestEnum_ValuesIsACopy(t *testing.T) {
	values := MoodTrends.Values()
	values[0] = "broken"
	assert.Equal(t, MoodImproving, MoodTrends.Values()[0])
}

func TestParseDateBudgetTier(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want DateBudget
		ok   bool
	}{
		{"tier one", 1, BudgetLow, true},
		{"tier four", 4, BudgetLuxury, true},
		{"out of range", 7, "", false},
		{"fractional", 2.5, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDateBudgetTier(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	b, ok := DateBudgets.Parse("$$$")
	assert.True(t, ok)
	assert.Equal(t, BudgetHigh, b)
}
