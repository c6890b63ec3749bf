// Package constants provides shared constants used across the ghpush codebase.
//
// Constants are organized by category:
//   - File and directory names
//   - Git defaults: remote and branch names used when nothing else is configured
//   - Error message strings: string constants for error matching/comparison
package constants

// File and directory names
const (
	// ConfigFileName is the name of the optional per-project configuration file.
	ConfigFileName = ".ghpush.yaml"

	// GitDirName is the name of the git metadata directory inside a repository.
	GitDirName = ".git"
)

// Git defaults
const (
	// DefaultRemote is the remote name used when none is configured.
	DefaultRemote = "origin"

	// DefaultBranch is the branch published when none is configured.
	DefaultBranch = "main"

	// DefaultCommitMessage is the commit message used when none is configured.
	DefaultCommitMessage = "Update project"
)

// Error message strings (for error matching/comparison)
const (
	// ErrMsgNothingToCommit is the git output fragment identifying a no-op commit.
	ErrMsgNothingToCommit = "nothing to commit"
)
