package main

import (
	"fmt"
	"regexp"
	"strings"
)

// splitDDLStatements strips comment lines and splits a migration file on
// semicolons.
func splitDDLStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}

var createObjectRe = regexp.MustCompile(`(?i)^CREATE\s+(?:UNIQUE\s+|NULL_FILTERED\s+)*(TABLE|INDEX)\s+(?:IF\s+NOT\s+EXISTS\s+)?` + "`?" + `([A-Za-z_][A-Za-z0-9_]*)`)

// objectName returns "table:name" or "index:name" for CREATE statements.
func objectName(stmt string) (string, bool) {
	m := createObjectRe.FindStringSubmatch(stmt)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s:%s", strings.ToLower(m[1]), strings.ToLower(m[2])), true
}

// pendingStatements drops CREATE statements for objects the database
// already has. Other statements are always kept.
func pendingStatements(existing, stmts []string) []string {
	have := make(map[string]bool, len(existing))
	for _, e := range existing {
		if name, ok := objectName(e); ok {
			have[name] = true
		}
	}

	var out []string
	for _, s := range stmts {
		if name, ok := objectName(s); ok && have[name] {
			continue
		}
		out = append(out, s)
	}
	return out
}

// parseDatabasePath splits projects/P/instances/I/databases/D.
func parseDatabasePath(path string) (project, instance, database string, err error) {
	parts := strings.Split(path, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return "", "", "", fmt.Errorf("invalid database path %q", path)
	}
	return parts[1], parts[3], parts[5], nil
}
