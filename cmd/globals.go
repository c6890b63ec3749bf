// Package cmd provides CLI command implementations.
package cmd

// GlobalOptions contains global CLI options.
type GlobalOptions struct {
	Remote    string `help:"Remote name to publish to" env:"GHPUSH_REMOTE"`
	Branch    string `help:"Branch to publish" env:"GHPUSH_BRANCH"`
	UserName  string `name:"user-name" help:"Commit identity name, applied to the repository scope only" env:"GIT_USER_NAME"`
	UserEmail string `name:"user-email" help:"Commit identity email, applied to the repository scope only" env:"GIT_USER_EMAIL"`
}
