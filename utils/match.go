package utils

import (
	"regexp"
	"strings"
)

// FindFirstMatch evaluates patterns in order against text and returns the first
// non-empty captured group of the first pattern that matches. Patterns earlier in
// the list take strict precedence over later ones: a generic fallback pattern only
// applies when every more specific pattern before it fails. Returns "" when no
// pattern matches or every matched group is empty.
func FindFirstMatch(text string, patterns []*regexp.Regexp) string {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		for _, group := range match[1:] {
			if trimmed := strings.TrimSpace(group); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
