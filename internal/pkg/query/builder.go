// Package query builds parameterized Cloud Spanner SQL statements.
package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Builder constructs SELECT and DELETE statements. Every method returns a
// new Builder, so a base query can be shared and refined.
type Builder struct {
	table      string
	selectCols []string
	where      []Condition
	orderByCol string
	orderByDir Direction
	limitVal   int64
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select specifies the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where adds a condition. Multiple calls are combined with AND.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.where = append(nb.where, condition)
	return nb
}

// WhereIf adds condition only when ok is true, for optional filters.
func (b *Builder) WhereIf(ok bool, condition Condition) *Builder {
	if !ok {
		return b
	}
	return b.Where(condition)
}

// OrderBy specifies the column and direction for sorting.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderByCol = column
	nb.orderByDir = direction
	return nb
}

// Limit sets the maximum number of rows to return. Zero means no limit.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Count returns a COUNT(*) query over the same table and conditions.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.limitVal = 0
	nb.orderByCol = ""
	return nb
}

// Build renders the SELECT statement.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	params := b.writeWhere(&sql)

	if b.orderByCol != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderByCol)
		if b.orderByDir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}
	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	return spanner.Statement{SQL: sql.String(), Params: params}
}

// BuildDelete renders a DELETE over the same table and conditions.
// Spanner requires a WHERE clause on DML, so an unconditioned delete
// renders "WHERE true".
func (b *Builder) BuildDelete() spanner.Statement {
	var sql strings.Builder
	sql.WriteString("DELETE FROM ")
	sql.WriteString(b.table)
	params := b.writeWhere(&sql)
	if len(b.where) == 0 {
		sql.WriteString(" WHERE true")
	}
	return spanner.Statement{SQL: sql.String(), Params: params}
}

func (b *Builder) writeWhere(sql *strings.Builder) map[string]any {
	params := make(map[string]any)
	if len(b.where) == 0 {
		return params
	}
	parts := make([]string, 0, len(b.where))
	paramIndex := 0
	for _, c := range b.where {
		fragment, condParams := c.SQL(paramIndex)
		parts = append(parts, fragment)
		for k, v := range condParams {
			params[k] = v
		}
		paramIndex += len(condParams)
	}
	sql.WriteString(" WHERE ")
	sql.WriteString(strings.Join(parts, " AND "))
	return params
}

func (b *Builder) clone() *Builder {
	nb := *b
	nb.selectCols = append([]string(nil), b.selectCols...)
	nb.where = append([]Condition(nil), b.where...)
	return &nb
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
