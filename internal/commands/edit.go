package commands

import (
	"context"
	"flag"
	"fmt"

	"tasker/internal/exitcode"
	"tasker/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only flags that are given change the task.
type EditCmd struct {
	title  optString
	due    optString
	done   optBool
	undone optBool
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change a task's title, deadline or status" }
func (c *EditCmd) Usage() string {
	return "tasker edit [--title <title>] [--due <YYYY-MM-DD>] [--done|--undone] <n>"
}
func (c *EditCmd) NeedsStore() bool { return true }
func (c *EditCmd) NeedsAuth() bool  { return false }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	*c = EditCmd{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.due, "due", "")
	fs.Var(&c.done, "done", "")
	fs.Var(&c.undone, "undone", "")
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string) int {
	index, err := resolveIndex(env.Tasks, args)
	if err != nil {
		return fail(env.ErrOut, err)
	}

	u := service.Update{
		Title:    c.title.optional(),
		Deadline: c.due.optional(),
	}

	switch {
	case c.done.set && c.undone.set:
		fmt.Fprintln(env.ErrOut, "error: cannot use both --done and --undone")
		return exitcode.UserError
	case c.done.set:
		u.Completed = service.Some(c.done.value)
	case c.undone.set:
		u.Completed = service.Some(!c.undone.value)
	}

	if err := env.Tasks.Edit(index, u); err != nil {
		return fail(env.ErrOut, err)
	}
	return ok(env)
}
