package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_Select(t *testing.T) {
	t.Run("all columns", func(t *testing.T) {
		stmt := From("profile_snapshots").Build()
		assert.Equal(t, "SELECT * FROM profile_snapshots", stmt.SQL)
		assert.Empty(t, stmt.Params)
	})

	t.Run("columns, conditions, order and limit", func(t *testing.T) {
		stmt := From("profile_snapshots").
			Select("snapshot_id", "saved_at").
			Where(Eq("partner_id", "p-1")).
			Where(Eq("user_id", "u-1")).
			OrderBy("saved_at", Desc).
			Limit(20).
			Build()

		assert.Equal(t,
			"SELECT snapshot_id, saved_at FROM profile_snapshots WHERE partner_id = @p0 AND user_id = @p1 ORDER BY saved_at DESC LIMIT @limit",
			stmt.SQL)
		assert.Equal(t, map[string]any{"p0": "p-1", "p1": "u-1", "limit": int64(20)}, stmt.Params)
	})

	t.Run("ascending order", func(t *testing.T) {
		stmt := From("outbox_events").OrderBy("created_at", Asc).Build()
		assert.Equal(t, "SELECT * FROM outbox_events ORDER BY created_at ASC", stmt.SQL)
	})
}

func TestBuilder_Conditions(t *testing.T) {
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	stmt := From("profile_snapshots").
		Where(Lt("saved_at", cutoff)).
		Where(Gte("saved_at", cutoff.AddDate(-1, 0, 0))).
		Where(ArrayContains("changed_fields", "goals")).
		Build()

	assert.Equal(t,
		"SELECT * FROM profile_snapshots WHERE saved_at < @p0 AND saved_at >= @p1 AND @p2 IN UNNEST(changed_fields)",
		stmt.SQL)
	assert.Equal(t, cutoff, stmt.Params["p0"])
	assert.Equal(t, "goals", stmt.Params["p2"])
}

func TestBuilder_WhereIf(t *testing.T) {
	base := From("profile_snapshots").Where(Eq("partner_id", "p-1"))

	assert.Equal(t, "SELECT * FROM profile_snapshots WHERE partner_id = @p0",
		base.WhereIf(false, Eq("user_id", "")).Build().SQL)
	assert.Equal(t, "SELECT * FROM profile_snapshots WHERE partner_id = @p0 AND user_id = @p1",
		base.WhereIf(true, Eq("user_id", "u-1")).Build().SQL)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("profile_snapshots").Select("snapshot_id")
	withWhere := base.Where(Eq("partner_id", "p-1"))
	withLimit := withWhere.Limit(5)

	assert.Equal(t, "SELECT snapshot_id FROM profile_snapshots", base.Build().SQL)
	assert.Equal(t, "SELECT snapshot_id FROM profile_snapshots WHERE partner_id = @p0", withWhere.Build().SQL)
	assert.Contains(t, withLimit.Build().SQL, "LIMIT @limit")
	assert.NotContains(t, withWhere.Build().SQL, "LIMIT")
}

func TestBuilder_Count(t *testing.T) {
	stmt := From("profile_snapshots").
		Select("snapshot_id").
		Where(Eq("partner_id", "p-1")).
		OrderBy("saved_at", Desc).
		Limit(10).
		Count().
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM profile_snapshots WHERE partner_id = @p0", stmt.SQL)
	assert.Equal(t, map[string]any{"p0": "p-1"}, stmt.Params)
}

func TestBuilder_BuildDelete(t *testing.T) {
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	stmt := From("outbox_events").
		Where(Eq("status", "PROCESSED")).
		Where(Lt("created_at", cutoff)).
		BuildDelete()

	assert.Equal(t, "DELETE FROM outbox_events WHERE status = @p0 AND created_at < @p1", stmt.SQL)
	assert.Equal(t, map[string]any{"p0": "PROCESSED", "p1": cutoff}, stmt.Params)

	assert.Equal(t, "DELETE FROM outbox_events WHERE true", From("outbox_events").BuildDelete().SQL)
}
