package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"tasker/internal/exitcode"
	"tasker/internal/output"
	"tasker/internal/service"
	"tasker/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tasker` (no args) and `tasker list [filters]`.
type ListCmd struct {
	status string
	due    string
}

// SetFilters sets the filter flags (for testing).
func (c *ListCmd) SetFilters(status, due string) {
	c.status = status
	c.due = due
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "tasker list [--status open|done] [--due YYYY-MM-DD]"
}
func (c *ListCmd) NeedsStore() bool { return true }
func (c *ListCmd) NeedsAuth() bool  { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.due, "due", "", "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	f, err := parseFilter(c.status, c.due)
	if err != nil {
		return fail(env.ErrOut, err)
	}

	// Numbers are store display numbers, so they stay valid for edit/done/rm
	// even when a filter hides some tasks.
	found := false
	for num, t := range env.Tasks.List() {
		if !f.Match(t) {
			continue
		}
		output.FormatTask(env.Out, num, t)
		found = true
	}

	if !found && !env.Config.Quiet {
		fmt.Fprintln(env.Out, "no tasks found")
	}
	return exitcode.Success
}

// parseFilter turns --status and --due values into a filter.
func parseFilter(status, due string) (service.Filter, error) {
	var f service.Filter

	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "all":
	case "done", "completed":
		f.Status = service.Some(true)
	case "open", "pending":
		f.Status = service.Some(false)
	default:
		return f, fmt.Errorf("invalid status: %s (want open or done)", status)
	}

	if due != "" {
		d, err := task.ParseDate(due)
		if err != nil {
			return f, err
		}
		f.DueOnOrBefore = service.Some(d)
	}
	return f, nil
}
