package cmd

import (
	"bufio"
	"context"
	"os"
	"strings"

	ghperrors "github.com/om270459-crypto/ghpush/internal/errors"
	"github.com/om270459-crypto/ghpush/internal/git"
	"github.com/om270459-crypto/ghpush/internal/local"
	"github.com/om270459-crypto/ghpush/internal/logger"
	"github.com/om270459-crypto/ghpush/internal/prompt"
	"github.com/om270459-crypto/ghpush/internal/utils"
)

// configureIdentity applies the commit identity from GIT_USER_NAME and
// GIT_USER_EMAIL to the repository scope. When neither is set, no
// configuration call is made at all.
func configureIdentity(ctx context.Context, repo *git.Repository, globals *GlobalOptions) error {
	if globals.UserName == "" && globals.UserEmail == "" {
		return nil
	}

	logger.Log(ctx).Debug().
		Str("name", globals.UserName).
		Str("email", globals.UserEmail).
		Msg("Configuring commit identity")

	return repo.SetIdentity(ctx, git.Identity{
		Name:  globals.UserName,
		Email: globals.UserEmail,
	})
}

// stageChanges stages the working tree. With exclude patterns configured the
// changed paths are filtered individually; otherwise everything is staged.
func stageChanges(ctx context.Context, repo *git.Repository, proj *local.Project) error {
	if len(proj.Config().Exclude) == 0 {
		return repo.StageAll(ctx)
	}

	changed, err := repo.ChangedPaths(ctx)
	if err != nil {
		return err
	}

	paths := proj.FilterStagePaths(changed)
	if len(paths) == 0 {
		logger.Log(ctx).Debug().Msg("All changed paths excluded, nothing staged")
		return nil
	}

	return repo.StagePaths(ctx, paths)
}

// gatherCredentials resolves the username and token, prompting interactively
// for whatever is missing. The token is read once, held only in memory, and
// must be non-empty before any push is attempted.
func (c *PublishCmd) gatherCredentials(ctx context.Context, cfg *local.Config) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	username := utils.FirstNonEmpty(c.Username, cfg.Username)
	if username == "" {
		var err error
		username, err = prompt.Username(ctx, reader)
		if err != nil {
			return "", "", err
		}
	}

	token := strings.TrimSpace(c.Token)
	if token == "" {
		var err error
		token, err = prompt.Token(ctx, reader)
		if err != nil {
			return "", "", err
		}
	}
	if token == "" {
		return "", "", ghperrors.ErrEmptyToken
	}

	return username, token, nil
}
