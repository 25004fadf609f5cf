package commands

import (
	"context"
	"flag"
	"fmt"

	"tasker/internal/exitcode"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string                   { return "logout" }
func (c *LogoutCmd) Aliases() []string              { return nil }
func (c *LogoutCmd) Synopsis() string               { return "Remove stored Google credentials" }
func (c *LogoutCmd) Usage() string                  { return "tasker logout [common flags]" }
func (c *LogoutCmd) NeedsStore() bool               { return false }
func (c *LogoutCmd) NeedsAuth() bool                { return false }
func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, env *Env, args []string) int {
	cfg := env.Config
	if !cfg.HasToken() {
		if !cfg.Quiet {
			fmt.Fprintln(env.Out, "not logged in")
		}
		return exitcode.Success
	}

	if err := cfg.RemoveToken(); err != nil {
		fmt.Fprintf(env.ErrOut, "error: failed to remove token: %v\n", err)
		return exitcode.AuthError
	}
	return ok(env)
}
