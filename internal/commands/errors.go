package commands

import (
	"fmt"
	"io"

	"tasker/internal/exitcode"
	"tasker/internal/task"
)

// fail prints err and maps it to an exit code.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return codeFor(err)
}

// codeFor maps task and store errors to exit codes.
func codeFor(err error) int {
	switch {
	case task.IsKind(err, task.KindStorage), task.IsKind(err, task.KindSchema):
		return exitcode.StorageError
	default:
		return exitcode.UserError
	}
}

// ok prints the success marker unless quiet.
func ok(env *Env) int {
	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "ok")
	}
	return exitcode.Success
}
