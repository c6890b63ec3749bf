package utils

import (
	"testing"
)

func TestTrimOutputToString(t *testing.T) {
	tests := []struct {
		name string
		out  []byte
		want string
	}{
		{
			name: "trailing newline",
			out:  []byte("main\n"),
			want: "main",
		},
		{
			name: "surrounding whitespace",
			out:  []byte("  abc123  \n"),
			want: "abc123",
		},
		{
			name: "empty output",
			out:  []byte(""),
			want: "",
		},
		{
			name: "only whitespace",
			out:  []byte(" \n\t"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimOutputToString(tt.out); got != tt.want {
				t.Errorf("TrimOutputToString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{
			name:   "first wins",
			values: []string{"flag", "config", "default"},
			want:   "flag",
		},
		{
			name:   "skips empty",
			values: []string{"", "config", "default"},
			want:   "config",
		},
		{
			name:   "falls through to default",
			values: []string{"", "", "default"},
			want:   "default",
		},
		{
			name:   "all empty",
			values: []string{"", ""},
			want:   "",
		},
		{
			name:   "no values",
			values: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNonEmpty(tt.values...); got != tt.want {
				t.Errorf("FirstNonEmpty() = %q, want %q", got, tt.want)
			}
		})
	}
}
