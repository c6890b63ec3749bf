package utils

import (
	"github.com/bmatcuk/doublestar/v4"
)

// MatchPattern checks if a path matches a glob pattern (with or without trailing slash).
// This handles directory patterns by checking both the path and path with trailing slash.
func MatchPattern(pattern, path string) bool {
	// Check pattern against path
	if match, _ := doublestar.Match(pattern, path); match {
		return true
	}
	// Also check with trailing slash to match directory patterns
	if match, _ := doublestar.Match(pattern, path+"/"); match {
		return true
	}
	return false
}

// MatchAnyPattern checks if a path matches any of the given glob patterns.
func MatchAnyPattern(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if MatchPattern(pattern, path) {
			return true
		}
	}
	return false
}
