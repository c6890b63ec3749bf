package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{
			name: "ErrProjectNotFound",
			err:  ErrProjectNotFound,
			msg:  "project directory not found",
		},
		{
			name: "ErrNotGitRepository",
			err:  ErrNotGitRepository,
			msg:  "not a git repository",
		},
		{
			name: "ErrEmptyUsername",
			err:  ErrEmptyUsername,
			msg:  "username cannot be empty",
		},
		{
			name: "ErrEmptyToken",
			err:  ErrEmptyToken,
			msg:  "token cannot be empty",
		},
		{
			name: "ErrNothingToCommit",
			err:  ErrNothingToCommit,
			msg:  "nothing to commit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.msg)
			}

			// Wrapped sentinels must still match with errors.Is
			wrapped := fmt.Errorf("publish: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is() failed for wrapped %s", tt.name)
			}
		})
	}
}
