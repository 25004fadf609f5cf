package commands

import (
	"context"
	"flag"
	"fmt"

	"tasker/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string                   { return "help" }
func (c *HelpCmd) Aliases() []string              { return nil }
func (c *HelpCmd) Synopsis() string               { return "Print usage" }
func (c *HelpCmd) Usage() string                  { return "tasker help" }
func (c *HelpCmd) NeedsStore() bool               { return false }
func (c *HelpCmd) NeedsAuth() bool                { return false }
func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	fmt.Fprint(env.Out, helpText)
	fmt.Fprintln(env.Out)
	fmt.Fprintln(env.Out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(env.Out, "  %-8s %s\n", cmd.Name(), cmd.Synopsis())
	}
	return exitcode.Success
}

const helpText = `Usage:
  tasker                                          List all tasks
  tasker list [common flags] [--status open|done] [--due <YYYY-MM-DD>]
  tasker add [common flags] --due <YYYY-MM-DD> <title...>
  tasker edit [common flags] [--title <title>] [--due <YYYY-MM-DD>] [--done|--undone] <n>
  tasker done [common flags] <n>
  tasker undone [common flags] <n>
  tasker rm [common flags] <n>
  tasker menu [common flags]
  tasker push [common flags] [--list <list-name>] [--open]
  tasker login [common flags]
  tasker logout [common flags]
  tasker help
  tasker version

<n> is the task number shown by tasker list.
Flags go before positional arguments.

Common flags:
  --config <dir>   Override config directory
  --file <path>    Override tasks file
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
