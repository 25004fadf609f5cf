package service

import (
	"fmt"

	"tasker/internal/task"
)

// IndexOf converts a 1-based display number into a 0-based index into tasks.
// Numbers outside 1..Len() are an IndexError.
func IndexOf(tasks Tasks, num int) (int, error) {
	if num < 1 || num > tasks.Len() {
		return 0, task.NewError(task.KindIndex, fmt.Sprintf("task number out of range: %d", num))
	}
	return num - 1, nil
}
