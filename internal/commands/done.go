package commands

import (
	"context"
	"flag"

	"tasker/internal/service"
)

func init() {
	Register(&DoneCmd{})
	Register(&UndoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string                   { return "done" }
func (c *DoneCmd) Aliases() []string              { return nil }
func (c *DoneCmd) Synopsis() string               { return "Mark a task completed" }
func (c *DoneCmd) Usage() string                  { return "tasker done <n>" }
func (c *DoneCmd) NeedsStore() bool               { return true }
func (c *DoneCmd) NeedsAuth() bool                { return false }
func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string) int {
	return runSetCompleted(env, args, true)
}

// UndoneCmd implements the undone command.
type UndoneCmd struct{}

func (c *UndoneCmd) Name() string                   { return "undone" }
func (c *UndoneCmd) Aliases() []string              { return []string{"reopen"} }
func (c *UndoneCmd) Synopsis() string               { return "Mark a task not completed" }
func (c *UndoneCmd) Usage() string                  { return "tasker undone <n>" }
func (c *UndoneCmd) NeedsStore() bool               { return true }
func (c *UndoneCmd) NeedsAuth() bool                { return false }
func (c *UndoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneCmd) Run(ctx context.Context, env *Env, args []string) int {
	return runSetCompleted(env, args, false)
}

// runSetCompleted is the shared implementation for done and undone.
func runSetCompleted(env *Env, args []string, completed bool) int {
	index, err := resolveIndex(env.Tasks, args)
	if err != nil {
		return fail(env.ErrOut, err)
	}
	if err := env.Tasks.Edit(index, service.Update{Completed: service.Some(completed)}); err != nil {
		return fail(env.ErrOut, err)
	}
	return ok(env)
}
