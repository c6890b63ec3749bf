// Package prompt reads interactive credentials from the terminal.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	ghperrors "github.com/om270459-crypto/ghpush/internal/errors"
	"github.com/om270459-crypto/ghpush/internal/utils"
)

// Username prompts for the account name in plain text.
func Username(ctx context.Context, reader *bufio.Reader) (string, error) {
	fmt.Fprint(os.Stderr, "Username: ")

	name, err := utils.ReadLine(ctx, reader)
	if err != nil {
		return "", fmt.Errorf("read username: %w", err)
	}
	if name == "" {
		return "", ghperrors.ErrEmptyUsername
	}
	return name, nil
}

// Token prompts for the access token with hidden input when stdin is a
// terminal, falling back to a buffered line read for piped input.
// The token is never echoed and only ever held in process memory.
func Token(ctx context.Context, reader *bufio.Reader) (string, error) {
	fmt.Fprint(os.Stderr, "Token: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr) // newline after hidden input
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		token := strings.TrimSpace(string(raw))
		if token == "" {
			return "", ghperrors.ErrEmptyToken
		}
		return token, nil
	}

	token, err := utils.ReadLine(ctx, reader)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return "", ghperrors.ErrEmptyToken
	}
	return token, nil
}
