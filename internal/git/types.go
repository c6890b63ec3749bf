// Package git provides Git operations abstraction layer.
package git

import (
	"context"
	"os/exec"
)

// Execer is an interface for executing commands.
type Execer interface {
	Run(cmd *exec.Cmd) error
	Output(cmd *exec.Cmd) ([]byte, error)
}

// DefaultExecer is the default command executor.
type DefaultExecer struct{}

// Run executes a command.
func (e *DefaultExecer) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

// Output executes a command and returns its output.
func (e *DefaultExecer) Output(cmd *exec.Cmd) ([]byte, error) {
	return cmd.Output()
}

// Identity represents the committer identity applied to a repository.
type Identity struct {
	Name  string
	Email string
}

// PushOptions contains options for pushing.
type PushOptions struct {
	Remote      string // Remote name
	Branch      string // Branch to push
	SetUpstream bool   // Configure upstream tracking
	Force       bool   // Force push
}

// contextKey is used for context values.
type contextKey string

// execerContextKey is the context key for the execer.
const execerContextKey contextKey = "execer"

// WithExecer returns a context with the given execer.
func WithExecer(ctx context.Context, e Execer) context.Context {
	return context.WithValue(ctx, execerContextKey, e)
}

// GetExecer returns the execer from the context.
func GetExecer(ctx context.Context) Execer {
	if e, ok := ctx.Value(execerContextKey).(Execer); ok {
		return e
	}
	return &DefaultExecer{}
}
