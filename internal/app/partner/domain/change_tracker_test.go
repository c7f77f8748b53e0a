package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeTracker(t *testing.T) {
	ct := NewChangeTracker()
	assert.False(t, ct.HasChanges())

	ct.MarkDirty(FieldHobbies)
	ct.MarkDirty(FieldGoals)
	ct.MarkDirty(FieldGoals)

	assert.True(t, ct.HasChanges())
	assert.True(t, ct.Dirty(FieldGoals))
	assert.False(t, ct.Dirty(FieldName))
	assert.Equal(t, []Field{FieldGoals, FieldHobbies}, ct.DirtyFields())

	ct.Clear()
	assert.False(t, ct.HasChanges())
	assert.Empty(t, ct.DirtyFields())
}
