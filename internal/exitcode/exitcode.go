// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad date, task number out of range).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// StorageError indicates the tasks file could not be read, parsed or written.
	StorageError = 3

	// BackendError indicates a remote API/network error.
	BackendError = 4
)
