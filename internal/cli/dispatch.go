// Package cli parses the command line and dispatches to registered commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tasker/internal/commands"
	"tasker/internal/config"
	"tasker/internal/exitcode"
	"tasker/internal/logging"
	"tasker/internal/service"
)

// TasksFactory opens the local task collection for cfg.TasksPath.
type TasksFactory func(cfg *config.Config, log *zap.Logger) (service.Tasks, error)

// RemoteFactory creates the remote task service.
// Used to inject the backend during dispatch.
type RemoteFactory func(ctx context.Context, cfg *config.Config, log *zap.Logger) (service.Remote, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	tasks    TasksFactory
	remote   RemoteFactory
}

// NewDispatcher creates a new dispatcher with the given registry and factories.
func NewDispatcher(registry *commands.Registry, tasks TasksFactory, remote RemoteFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		tasks:    tasks,
		remote:   remote,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], in, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var tasksFile string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&tasksFile, "file", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return reportFlagError(errOut, err)
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.Load(configDir, tasksFile)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	ctx = logging.ContextWithRunID(ctx, uuid.NewString())
	log := logging.WithRunID(ctx, logging.New(errOut, logging.Config{Level: cfg.LogLevel, Debug: debug}))
	defer func() { _ = log.Sync() }()
	log.Debug("dispatch", zap.String("command", cmd.Name()), zap.String("tasks_file", cfg.TasksPath))

	env := &commands.Env{
		Config: cfg,
		Log:    log,
		In:     in,
		Out:    out,
		ErrOut: errOut,
	}

	if cmd.NeedsStore() {
		env.Tasks, err = d.tasks(cfg, log)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StorageError
		}
	}

	if cmd.NeedsAuth() {
		if code := d.connectRemote(ctx, cfg, env, errOut); code != exitcode.Success {
			return code
		}
	}

	return cmd.Run(ctx, env, positionalArgs)
}

// connectRemote checks credentials and sets env.Remote.
func (d *Dispatcher) connectRemote(ctx context.Context, cfg *config.Config, env *commands.Env, errOut io.Writer) int {
	if d.remote == nil {
		fmt.Fprintln(errOut, "error: no remote backend configured")
		return exitcode.BackendError
	}

	remote, err := d.remote(ctx, cfg, env.Log)
	if err != nil {
		if strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "oauth") {
			if !cfg.HasToken() {
				fmt.Fprintln(errOut, "error: not logged in (run: tasker login)")
			} else {
				fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			}
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return exitcode.BackendError
	}
	env.Remote = remote
	return exitcode.Success
}

// reportFlagError prints a flag parsing error in the CLI's own wording.
func reportFlagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	if strings.Contains(errStr, "flag needs an argument") {
		flagName := strings.TrimSpace(errStr[strings.LastIndex(errStr, ":")+1:])
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return exitcode.UserError
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
