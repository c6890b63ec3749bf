package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/om270459-crypto/ghpush/internal/constants"
	ghperrors "github.com/om270459-crypto/ghpush/internal/errors"
	"github.com/om270459-crypto/ghpush/internal/git"
	"github.com/om270459-crypto/ghpush/internal/local"
	"github.com/om270459-crypto/ghpush/internal/logger"
	"github.com/om270459-crypto/ghpush/internal/utils"
)

// PublishCmd publishes a local project directory to a remote repository.
type PublishCmd struct {
	Path string `arg:"" help:"Project directory to publish"`
	URL  string `arg:"" name:"repo-url" help:"Repository URL (HTTPS or SSH shorthand)"`

	Message  string `short:"m" help:"Commit message"`
	Username string `help:"Account name for the push (prompted when empty)"`
	Token    string `env:"GHPUSH_TOKEN" hidden:"" help:"Access token (prompted when empty)"`
}

// publishContext holds the resolved resources for a publish operation.
type publishContext struct {
	proj      *local.Project
	repo      *git.Repository
	remote    string // Remote name
	branch    string // Branch to publish
	message   string // Commit message
	canonical string // Credential-free HTTPS remote URL
}

// Run executes the publish command.
func (c *PublishCmd) Run(globals *GlobalOptions, ctx context.Context) error {
	pctx, err := c.preparePublishContext(ctx, globals)
	if err != nil {
		return err
	}

	if err := c.commitChanges(ctx, pctx); err != nil {
		return err
	}

	username, token, err := c.gatherCredentials(ctx, pctx.proj.Config())
	if err != nil {
		return err
	}

	pushURL := utils.InjectCredentials(pctx.canonical, username, token)
	if err := pushWithScrub(ctx, pctx, pushURL); err != nil {
		return err
	}

	logger.Log(ctx).Info().
		Str("remote", pctx.remote).
		Str("branch", pctx.branch).
		Str("url", pctx.canonical).
		Msg("Publish complete")
	return nil
}

// preparePublishContext opens the project and repository and brings branch
// and remote into the required state.
func (c *PublishCmd) preparePublishContext(ctx context.Context, globals *GlobalOptions) (*publishContext, error) {
	proj, err := local.Open(c.Path)
	if err != nil {
		return nil, err
	}

	repo, created, err := git.InitOrOpen(ctx, proj.Root())
	if err != nil {
		return nil, err
	}
	if created {
		logger.Log(ctx).Info().Str("root", repo.Root()).Msg("Initialized empty repository")
	}

	if err := configureIdentity(ctx, repo, globals); err != nil {
		return nil, err
	}

	cfg := proj.Config()
	pctx := &publishContext{
		proj:      proj,
		repo:      repo,
		remote:    utils.FirstNonEmpty(globals.Remote, cfg.Remote, constants.DefaultRemote),
		branch:    utils.FirstNonEmpty(globals.Branch, cfg.Branch, constants.DefaultBranch),
		message:   utils.FirstNonEmpty(c.Message, cfg.Message, constants.DefaultCommitMessage),
		canonical: utils.NormalizeRepoURL(c.URL),
	}

	if err := repo.EnsureBranch(ctx, pctx.branch); err != nil {
		return nil, err
	}

	if err := repo.EnsureRemote(ctx, pctx.remote, pctx.canonical); err != nil {
		return nil, err
	}

	return pctx, nil
}

// commitChanges stages and commits local changes. A clean tree is reported
// and the publish continues; the push may still establish upstream tracking.
func (c *PublishCmd) commitChanges(ctx context.Context, pctx *publishContext) error {
	if err := stageChanges(ctx, pctx.repo, pctx.proj); err != nil {
		return err
	}

	changed, err := pctx.repo.HasChanges(ctx)
	if err != nil {
		return err
	}
	if !changed {
		logger.Log(ctx).Info().Msg("Nothing to commit, working tree clean")
		return nil
	}

	if err := pctx.repo.Commit(ctx, pctx.message); err != nil {
		if errors.Is(err, ghperrors.ErrNothingToCommit) {
			logger.Log(ctx).Info().Msg("Nothing to commit, working tree clean")
			return nil
		}
		return err
	}

	logger.Log(ctx).Info().Str("message", pctx.message).Msg("Committed local changes")
	return nil
}

// pushWithScrub points the remote at the transient credential-embedded URL,
// pushes, and restores the canonical URL. The restore is unconditional: it
// runs on every exit path, including push failure and cancellation, so the
// credential never outlives the push attempt in any configuration file.
func pushWithScrub(ctx context.Context, pctx *publishContext, pushURL string) (err error) {
	if err := pctx.repo.SetRemoteURL(ctx, pctx.remote, pushURL); err != nil {
		return fmt.Errorf("set push url: %w", err)
	}

	defer func() {
		// The scrub must survive ctx cancellation.
		scrubCtx := context.WithoutCancel(ctx)
		if rerr := pctx.repo.SetRemoteURL(scrubCtx, pctx.remote, pctx.canonical); rerr != nil {
			logger.Log(ctx).Error().Err(rerr).Msg("Failed to restore remote URL, credential may be stored in the remote configuration")
			if err == nil {
				err = fmt.Errorf("restore remote url: %w", rerr)
			}
		}
	}()

	logger.Log(ctx).Info().
		Str("remote", pctx.remote).
		Str("branch", pctx.branch).
		Msg("Pushing")

	return pctx.repo.Push(ctx, git.PushOptions{
		Remote:      pctx.remote,
		Branch:      pctx.branch,
		SetUpstream: true,
	})
}
