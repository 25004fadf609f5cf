package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"tasker/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	due string
}

// SetDue sets the deadline (for testing).
func (c *AddCmd) SetDue(due string) {
	c.due = due
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "tasker add --due <YYYY-MM-DD> <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }
func (c *AddCmd) NeedsAuth() bool   { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.due, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string) int {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(env.ErrOut, "error: title required")
		return exitcode.UserError
	}
	if strings.TrimSpace(c.due) == "" {
		fmt.Fprintln(env.ErrOut, "error: deadline required (--due YYYY-MM-DD)")
		return exitcode.UserError
	}

	if err := env.Tasks.Add(title, c.due); err != nil {
		return fail(env.ErrOut, err)
	}
	return ok(env)
}
