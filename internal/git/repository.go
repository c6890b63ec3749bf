package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/om270459-crypto/ghpush/internal/constants"
	ghperrors "github.com/om270459-crypto/ghpush/internal/errors"
	"github.com/om270459-crypto/ghpush/internal/logger"
	"github.com/om270459-crypto/ghpush/internal/utils"
)

// Repository represents a Git repository rooted at a working directory.
type Repository struct {
	rootDir string // Working directory
	exec    Execer // Command executor
}

// Init initializes a new repository at the given path.
func Init(ctx context.Context, path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	cmd := newGitCmd("init").Dir(absPath)
	if err := cmd.Run(ctx, GetExecer(ctx)); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}

	return Open(ctx, absPath)
}

// Open opens an existing repository.
func Open(ctx context.Context, path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	// A .git entry may be a directory or, for worktrees, a file.
	if _, err := os.Stat(filepath.Join(absPath, constants.GitDirName)); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ghperrors.ErrNotGitRepository, path)
	}

	return &Repository{
		rootDir: absPath,
		exec:    GetExecer(ctx),
	}, nil
}

// InitOrOpen opens the repository at path, initializing it first if absent.
// The returned bool reports whether a new repository was created.
func InitOrOpen(ctx context.Context, path string) (*Repository, bool, error) {
	repo, err := Open(ctx, path)
	if err == nil {
		return repo, false, nil
	}
	if !errors.Is(err, ghperrors.ErrNotGitRepository) {
		return nil, false, err
	}

	repo, err = Init(ctx, path)
	if err != nil {
		return nil, false, err
	}
	return repo, true, nil
}

// Root returns the repository root directory.
func (r *Repository) Root() string {
	return r.rootDir
}

// gitCmd creates a new Git command rooted at the repository.
func (r *Repository) gitCmd(args ...string) *gitCmd {
	cmd := newGitCmd(args...)
	cmd.dir = r.rootDir
	return cmd
}

// executeGitOutput executes a git command and returns trimmed string output with error handling.
func (r *Repository) executeGitOutput(ctx context.Context, operation string, args ...string) (string, error) {
	out, err := r.gitCmd(args...).Output(ctx, r.exec)
	if err != nil {
		return "", fmt.Errorf("%s: %w", operation, err)
	}
	return utils.TrimOutputToString(out), nil
}

// SetConfig sets a repository-scoped git config value.
// Identity configuration goes through here so it never leaks into the
// user's global configuration.
func (r *Repository) SetConfig(ctx context.Context, key, value string) error {
	if err := r.gitCmd("config", key, value).Run(ctx, r.exec); err != nil {
		return fmt.Errorf("config %s: %w", key, err)
	}
	return nil
}

// SetIdentity applies the committer identity to the repository scope.
// Empty fields are skipped.
func (r *Repository) SetIdentity(ctx context.Context, id Identity) error {
	if id.Name != "" {
		if err := r.SetConfig(ctx, "user.name", id.Name); err != nil {
			return err
		}
	}
	if id.Email != "" {
		if err := r.SetConfig(ctx, "user.email", id.Email); err != nil {
			return err
		}
	}
	return nil
}

// CurrentBranch returns the branch HEAD points at. Works on an unborn HEAD.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	return r.executeGitOutput(ctx, "current branch", "symbolic-ref", "--short", "HEAD")
}

// BranchExists checks if a local branch exists.
func (r *Repository) BranchExists(ctx context.Context, name string) bool {
	err := r.gitCmd("rev-parse", "--verify", "refs/heads/"+name).Run(ctx, r.exec)
	return err == nil
}

// EnsureBranch makes the given branch current: checks it out if it exists,
// creates and checks it out otherwise.
func (r *Repository) EnsureBranch(ctx context.Context, name string) error {
	current, err := r.CurrentBranch(ctx)
	if err == nil && current == name {
		return nil
	}

	if r.BranchExists(ctx, name) {
		if err := r.gitCmd("checkout", name).Run(ctx, r.exec); err != nil {
			return fmt.Errorf("checkout %s: %w", name, err)
		}
		return nil
	}

	// checkout -b also works on an unborn HEAD right after init
	if err := r.gitCmd("checkout", "-b", name).Run(ctx, r.exec); err != nil {
		return fmt.Errorf("create branch %s: %w", name, err)
	}
	return nil
}

// RemoteURL gets the URL of a remote.
func (r *Repository) RemoteURL(ctx context.Context, remote string) (string, error) {
	return r.executeGitOutput(ctx, "get remote url", "remote", "get-url", remote)
}

// AddRemote adds a named remote.
func (r *Repository) AddRemote(ctx context.Context, remote, url string) error {
	if err := r.gitCmd("remote", "add", remote, url).Run(ctx, r.exec); err != nil {
		return fmt.Errorf("remote add %s: %w", remote, err)
	}
	return nil
}

// SetRemoteURL updates the URL of an existing remote.
func (r *Repository) SetRemoteURL(ctx context.Context, remote, url string) error {
	if err := r.gitCmd("remote", "set-url", remote, url).Run(ctx, r.exec); err != nil {
		return fmt.Errorf("remote set-url %s: %w", remote, err)
	}
	return nil
}

// EnsureRemote points the named remote at url, adding the remote if it is
// missing and updating it otherwise.
func (r *Repository) EnsureRemote(ctx context.Context, remote, url string) error {
	if _, err := r.RemoteURL(ctx, remote); err != nil {
		return r.AddRemote(ctx, remote, url)
	}
	return r.SetRemoteURL(ctx, remote, url)
}

// StageAll stages all changes in the working tree.
func (r *Repository) StageAll(ctx context.Context) error {
	if err := r.gitCmd("add", "-A").Run(ctx, r.exec); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return nil
}

// StagePaths stages the given paths.
func (r *Repository) StagePaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	if err := r.gitCmd(args...).Run(ctx, r.exec); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return nil
}

// ChangedPaths returns the paths that differ from HEAD (staged, unstaged,
// and untracked), as reported by porcelain status.
func (r *Repository) ChangedPaths(ctx context.Context) ([]string, error) {
	out, err := r.gitCmd("status", "--porcelain").Output(ctx, r.exec)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return parseStatusPaths(out), nil
}

// HasChanges reports whether the working tree or index differs from HEAD.
func (r *Repository) HasChanges(ctx context.Context) (bool, error) {
	out, err := r.gitCmd("status", "--porcelain").Output(ctx, r.exec)
	if err != nil {
		return false, fmt.Errorf("status: %w", err)
	}
	return utils.TrimOutputToString(out) != "", nil
}

// parseStatusPaths parses the output of git status --porcelain.
func parseStatusPaths(out []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		// Renames are reported as "old -> new"; the new path is the one staged.
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+4:]
		}
		path = strings.Trim(path, `"`)
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}

// Commit records the staged changes with the given message.
// Returns ErrNothingToCommit when the tree is clean.
func (r *Repository) Commit(ctx context.Context, message string) error {
	out, err := r.gitCmd("commit", "-m", message).Output(ctx, r.exec)
	if err != nil {
		if strings.Contains(string(out), constants.ErrMsgNothingToCommit) {
			return ghperrors.ErrNothingToCommit
		}
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Push pushes a branch to a remote.
func (r *Repository) Push(ctx context.Context, opts PushOptions) error {
	args := []string{"push"}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.Force {
		args = append(args, "--force")
	}
	args = append(args, opts.Remote, opts.Branch)

	if err := r.gitCmd(args...).Run(ctx, r.exec); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// gitCmd is a helper for executing git commands.
type gitCmd struct {
	args []string
	dir  string
}

// newGitCmd creates a new git command.
func newGitCmd(args ...string) *gitCmd {
	return &gitCmd{
		args: args,
	}
}

// Dir sets the working directory.
func (c *gitCmd) Dir(dir string) *gitCmd {
	c.dir = dir
	return c
}

// toExecCmd converts to an exec.Cmd.
func (c *gitCmd) toExecCmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", c.args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	return cmd
}

// logGitCommand logs a git command execution.
func (c *gitCmd) logGitCommand(ctx context.Context, msg string) {
	logger.Log(ctx).Debug().
		Strs("args", redactArgs(c.args)).
		Str("dir", c.dir).
		Msg(msg)
}

// redactArgs strips credentials from URL-shaped arguments before logging.
func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	for i, arg := range args {
		if strings.HasPrefix(arg, "https://") && strings.Contains(arg, "@") {
			redacted[i] = utils.RedactURL(arg)
			continue
		}
		redacted[i] = arg
	}
	return redacted
}

// Run executes the command.
func (c *gitCmd) Run(ctx context.Context, e Execer) error {
	c.logGitCommand(ctx, "Executing git command")
	return e.Run(c.toExecCmd(ctx))
}

// Output executes the command and returns its output.
func (c *gitCmd) Output(ctx context.Context, e Execer) ([]byte, error) {
	c.logGitCommand(ctx, "Executing git command")
	return e.Output(c.toExecCmd(ctx))
}
