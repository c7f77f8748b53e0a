package query

import "fmt"

// Condition is a WHERE clause fragment. Implementations render Spanner
// named parameters (@p0, @p1, ...) starting at paramIndex.
type Condition interface {
	SQL(paramIndex int) (string, map[string]any)
}

// compareCondition renders "field <op> @pN".
type compareCondition struct {
	field string
	op    string
	value any
}

func (c *compareCondition) SQL(paramIndex int) (string, map[string]any) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, paramName), map[string]any{paramName: c.value}
}

// Eq matches rows where field equals value.
// Example: Eq("partner_id", "p-1") generates "partner_id = @p0"
func Eq(field string, value any) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Lt matches rows where field is strictly less than value.
// Example: Lt("saved_at", cutoff) generates "saved_at < @p0"
func Lt(field string, value any) Condition {
	return &compareCondition{field: field, op: "<", value: value}
}

// Gte matches rows where field is greater than or equal to value.
func Gte(field string, value any) Condition {
	return &compareCondition{field: field, op: ">=", value: value}
}

// arrayContainsCondition renders "@pN IN UNNEST(field)".
type arrayContainsCondition struct {
	field string
	value any
}

// ArrayContains matches rows whose ARRAY column holds value.
// Example: ArrayContains("changed_fields", "goals") generates "@p0 IN UNNEST(changed_fields)"
func ArrayContains(field string, value any) Condition {
	return &arrayContainsCondition{field: field, value: value}
}

func (c *arrayContainsCondition) SQL(paramIndex int) (string, map[string]any) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("@%s IN UNNEST(%s)", paramName, c.field), map[string]any{paramName: c.value}
}
