package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"tasker/internal/service"
)

// ErrTaskRefRequired indicates no task number was provided.
var ErrTaskRefRequired = errors.New("task number required")

// ParseTaskNumber parses the 1-based task number shown by `tasker list`.
// Exactly one all-digit argument is accepted.
func ParseTaskNumber(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	if !isAllDigits(args[0]) {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	return num, nil
}

// resolveIndex parses args as a task number and converts it to a store index.
func resolveIndex(tasks service.Tasks, args []string) (int, error) {
	num, err := ParseTaskNumber(args)
	if err != nil {
		return 0, err
	}
	return service.IndexOf(tasks, num)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
