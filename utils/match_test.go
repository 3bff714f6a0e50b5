package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindFirstMatchPrefersEarlierPatterns(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)ref[:\s]*([a-z0-9]+)`),
		regexp.MustCompile(`(\d+)`),
	}

	// The keyword-anchored pattern wins even though the generic one also
	// matches earlier text.
	assert.Equal(t, "abc123", FindFirstMatch("999 Ref: abc123", patterns))

	// Generic fallback applies only when the specific pattern fails.
	assert.Equal(t, "999", FindFirstMatch("999 only", patterns))
}

func TestFindFirstMatchSkipsEmptyGroups(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?:(\d+)|([a-z]+)) end`),
	}

	assert.Equal(t, "abc", FindFirstMatch("abc end", patterns))
}

func TestFindFirstMatchFallsThroughOnBlankCapture(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`foo(\s*)bar`),
		regexp.MustCompile(`(bar)`),
	}

	// A capture that trims to nothing counts as no match.
	assert.Equal(t, "bar", FindFirstMatch("foo bar", patterns))
}

func TestFindFirstMatchNoMatch(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(\d{5})`),
	}

	assert.Equal(t, "", FindFirstMatch("nothing here", patterns))
}
