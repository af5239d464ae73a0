package utils

import "strings"

// Truncate returns s truncated to maxLen characters, with "..." appended if truncated.
// If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// JoinTruncated joins items with ", " and truncates the result to maxLen.
func JoinTruncated(items []string, maxLen int) string {
	return Truncate(strings.Join(items, ", "), maxLen)
}
