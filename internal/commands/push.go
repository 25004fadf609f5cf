package commands

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"tasker/internal/exitcode"
	"tasker/internal/service"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd copies local tasks into a Google Tasks list.
type PushCmd struct {
	listName string
	openOnly bool
}

// SetListName sets the target list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Copy tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "tasker push [--list <list-name>] [--open]" }
func (c *PushCmd) NeedsStore() bool  { return true }
func (c *PushCmd) NeedsAuth() bool   { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.BoolVar(&c.openOnly, "open", false, "")
}

func (c *PushCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	listName := c.listName
	if listName == "" {
		listName = env.Config.GoogleList
	}

	var f service.Filter
	if c.openOnly {
		f.Status = service.Some(false)
	}
	items := env.Tasks.Filter(f)
	if len(items) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(env.Out, "no tasks to push")
		}
		return exitcode.Success
	}

	n, err := env.Remote.Push(ctx, listName, items)
	if err != nil {
		env.Log.Warn("push failed", zap.Int("pushed", n), zap.Error(err))
		fmt.Fprintf(env.ErrOut, "error: backend error: %v (%d of %d pushed)\n", err, n, len(items))
		return exitcode.BackendError
	}

	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "pushed %d tasks to %s\n", n, listName)
	}
	return exitcode.Success
}
