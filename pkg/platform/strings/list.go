// Package strings holds small helpers for list-valued configuration.
package strings

import "strings"

// SplitList parses a comma-separated value into its entries. Each entry is
// trimmed; empty entries and repeats are dropped, first occurrence wins.
// Broker lists like " kafka-1:9092, kafka-2:9092,kafka-1:9092 " come out as
// ["kafka-1:9092", "kafka-2:9092"]. An empty or all-whitespace input yields
// nil so callers can treat absence and emptiness the same way.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	var entries []string
	for _, p := range parts {
		entry := strings.TrimSpace(p)
		if entry == "" {
			continue
		}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		entries = append(entries, entry)
	}
	return entries
}
