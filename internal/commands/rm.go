package commands

import (
	"context"
	"flag"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string                   { return "rm" }
func (c *RmCmd) Aliases() []string              { return []string{"remove"} }
func (c *RmCmd) Synopsis() string               { return "Delete a task" }
func (c *RmCmd) Usage() string                  { return "tasker rm <n>" }
func (c *RmCmd) NeedsStore() bool               { return true }
func (c *RmCmd) NeedsAuth() bool                { return false }
func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string) int {
	index, err := resolveIndex(env.Tasks, args)
	if err != nil {
		return fail(env.ErrOut, err)
	}
	if err := env.Tasks.Remove(index); err != nil {
		return fail(env.ErrOut, err)
	}
	return ok(env)
}
