package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"tasker/internal/backend/googletasks"
	"tasker/internal/exitcode"
)

const (
	oauthCallbackTimeout = 5 * time.Minute
	tokenExchangeTimeout = 30 * time.Second
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd authorizes push against the user's Google account.
type LoginCmd struct{}

func (c *LoginCmd) Name() string                   { return "login" }
func (c *LoginCmd) Aliases() []string              { return nil }
func (c *LoginCmd) Synopsis() string               { return "Authenticate with Google for push" }
func (c *LoginCmd) Usage() string                  { return "tasker login [common flags]" }
func (c *LoginCmd) NeedsStore() bool               { return false }
func (c *LoginCmd) NeedsAuth() bool                { return false }
func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string) int {
	cfg := env.Config

	if !cfg.HasOAuthClient() {
		printOAuthSetup(env.ErrOut, cfg.Dir)
		return exitcode.AuthError
	}

	if cfg.HasToken() && googletasks.TokenUsable(ctx, cfg) {
		if !cfg.Quiet {
			fmt.Fprintln(env.Out, "already logged in")
		}
		return exitcode.Success
	}

	oauthConfig, err := googletasks.OAuthConfig(cfg)
	if err != nil {
		return authFail(env.ErrOut, err)
	}

	cb, err := listenForCallback()
	if err != nil {
		return authFail(env.ErrOut, err)
	}
	defer cb.close()

	oauthConfig.RedirectURL = cb.redirectURL()
	env.Log.Debug("waiting for oauth callback", zap.String("redirect_url", oauthConfig.RedirectURL))

	// PKCE: the verifier never leaves this process.
	verifier := oauth2.GenerateVerifier()
	fmt.Fprintln(env.ErrOut, "Open this URL in your browser:")
	fmt.Fprintln(env.ErrOut, oauthConfig.AuthCodeURL(cb.state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	))

	code, err := cb.wait(ctx, oauthCallbackTimeout)
	if err != nil {
		return authFail(env.ErrOut, err)
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, tokenExchangeTimeout)
	defer cancel()
	token, err := oauthConfig.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return authFail(env.ErrOut, fmt.Errorf("failed to exchange code for token: %w", err))
	}

	if err := cfg.EnsureDir(); err != nil {
		return authFail(env.ErrOut, fmt.Errorf("failed to create config directory: %w", err))
	}
	if err := googletasks.SaveToken(cfg.TokenPath(), token); err != nil {
		return authFail(env.ErrOut, fmt.Errorf("failed to save token: %w", err))
	}

	env.Log.Debug("saved oauth token", zap.String("path", cfg.TokenPath()))
	return ok(env)
}

func authFail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.AuthError
}

func printOAuthSetup(w io.Writer, dir string) {
	fmt.Fprintf(w, "error: oauth_client.json not found in %s\n\n", dir)
	fmt.Fprintf(w, `To push tasks to Google Tasks, you need OAuth credentials:

1. Go to https://console.cloud.google.com/apis/credentials
2. Create a project (or select an existing one)
3. Enable the Google Tasks API:
   https://console.cloud.google.com/apis/library/tasks.googleapis.com
4. Create OAuth 2.0 credentials:
   - Click 'Create Credentials' > 'OAuth client ID'
   - Choose 'Desktop app' as application type
   - Download the JSON file
5. Save it as:
   %s/oauth_client.json

Then run 'tasker login' again.
`, dir)
}
