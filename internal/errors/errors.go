// Package errors provides shared error variables used across the ghpush codebase.
//
// Errors are organized by domain:
//   - Project errors: Related to the local project directory
//   - Credential errors: Related to interactively supplied credentials
//   - Git errors: Related to the underlying git invocations
package errors

import "errors"

// Project errors are returned by project-directory operations.
var (
	// ErrProjectNotFound is returned when the project path does not exist.
	ErrProjectNotFound = errors.New("project directory not found")

	// ErrNotGitRepository is returned when a path is not a git repository.
	ErrNotGitRepository = errors.New("not a git repository")
)

// Credential errors are returned by the credential prompts.
var (
	// ErrEmptyUsername is returned when the username prompt yields nothing.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyToken is returned when the token prompt yields nothing.
	ErrEmptyToken = errors.New("token cannot be empty")
)

// Git errors are returned by repository operations.
var (
	// ErrNothingToCommit is returned when a commit is attempted with a clean tree.
	ErrNothingToCommit = errors.New("nothing to commit")
)
