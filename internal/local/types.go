package local

// Config is the optional per-project configuration loaded from .ghpush.yaml.
// Every field may be empty; command-line flags take precedence over the file,
// and built-in defaults fill whatever remains.
type Config struct {
	// Remote is the remote name to publish to.
	Remote string `yaml:"remote,omitempty"`

	// Branch is the branch to publish.
	Branch string `yaml:"branch,omitempty"`

	// Username is the account name used for the push.
	Username string `yaml:"username,omitempty"`

	// Message is the commit message for publishing runs.
	Message string `yaml:"message,omitempty"`

	// Exclude lists doublestar glob patterns of paths never staged.
	Exclude []string `yaml:"exclude,omitempty"`
}
