package app

import "strings"

// maxTracedQueryLength bounds the db.statement attribute; ingestion inserts
// with long RETURNING lists are cut here.
const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace so multi-line repository queries
// render on one line in span attributes.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
