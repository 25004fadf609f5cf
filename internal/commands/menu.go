package commands

import (
	"context"
	"flag"
	"fmt"

	"tasker/internal/console"
	"tasker/internal/exitcode"
)

func init() {
	Register(&MenuCmd{})
}

// MenuCmd runs the interactive menu on stdin.
type MenuCmd struct{}

func (c *MenuCmd) Name() string                   { return "menu" }
func (c *MenuCmd) Aliases() []string              { return []string{"interactive"} }
func (c *MenuCmd) Synopsis() string               { return "Interactive task menu" }
func (c *MenuCmd) Usage() string                  { return "tasker menu" }
func (c *MenuCmd) NeedsStore() bool               { return true }
func (c *MenuCmd) NeedsAuth() bool                { return false }
func (c *MenuCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MenuCmd) Run(ctx context.Context, env *Env, args []string) int {
	menu := console.New(env.Tasks, env.In, env.Out, env.Log)
	if err := menu.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(env.ErrOut, "error: cancelled")
			return exitcode.UserError
		}
		return fail(env.ErrOut, err)
	}
	return exitcode.Success
}
