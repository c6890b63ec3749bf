package utils

import (
	"strings"
)

// TrimOutputToString converts command output to a trimmed string.
func TrimOutputToString(out []byte) string {
	return strings.TrimSpace(string(out))
}

// FirstNonEmpty returns the first non-empty string from the given values.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
