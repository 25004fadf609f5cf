// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasker/internal/task"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [x] YYYY-MM-DD  {TITLE}\n"; the box is "[ ]" for open tasks.
func FormatTask(w io.Writer, num int, t task.Task) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s  %s\n", num, box, t.Deadline, normalizeTitle(t.Title))
}

// normalizeTitle keeps a title on one line.
func normalizeTitle(title string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(title)
}
