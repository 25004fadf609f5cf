// Package console implements the interactive task menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tasker/internal/output"
	"tasker/internal/service"
	"tasker/internal/task"
)

// errEOF ends the menu when input runs out mid-prompt.
var errEOF = errors.New("end of input")

// Menu reads numbered choices from in and drives a task collection.
type Menu struct {
	tasks service.Tasks
	in    *bufio.Scanner
	out   io.Writer
	log   *zap.Logger
}

// New returns a menu over tasks.
func New(tasks service.Tasks, in io.Reader, out io.Writer, log *zap.Logger) *Menu {
	if log == nil {
		log = zap.NewNop()
	}
	return &Menu{
		tasks: tasks,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
	}
}

// Run loops until the user exits, input ends, or ctx is cancelled.
// Errors from individual actions are printed and the menu is shown again.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out)
		fmt.Fprint(m.out, menuText)
		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return m.finish(err)
		}

		var actionErr error
		switch choice {
		case "1":
			actionErr = m.add()
		case "2":
			actionErr = m.edit()
		case "3":
			actionErr = m.remove()
		case "4":
			m.list()
		case "5":
			actionErr = m.filter()
		case "6":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Please choose again.")
			continue
		}

		if errors.Is(actionErr, errEOF) {
			return m.finish(actionErr)
		}
		if actionErr != nil {
			m.log.Debug("menu action failed", zap.String("choice", choice), zap.Error(actionErr))
			fmt.Fprintf(m.out, "error: %v\n", actionErr)
		}
	}
}

const menuText = `Task Manager Menu:
1. Add Task
2. Edit Task
3. Remove Task
4. List Tasks
5. Filter Tasks
6. Exit
`

func (m *Menu) finish(err error) error {
	if errors.Is(err, errEOF) {
		fmt.Fprintln(m.out)
		return nil
	}
	return err
}

// prompt prints label and returns the next trimmed input line.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) add() error {
	title, err := m.prompt("Enter task title: ")
	if err != nil {
		return err
	}
	deadline, err := m.prompt("Enter task deadline (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	if err := m.tasks.Add(title, deadline); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Task added successfully.")
	return nil
}

func (m *Menu) edit() error {
	m.list()
	index, err := m.promptIndex("Enter task number to edit: ")
	if err != nil {
		return err
	}

	var u service.Update
	title, err := m.prompt("Enter new title (leave blank to keep current): ")
	if err != nil {
		return err
	}
	if title != "" {
		u.Title = service.Some(title)
	}
	deadline, err := m.prompt("Enter new deadline (YYYY-MM-DD, leave blank to keep current): ")
	if err != nil {
		return err
	}
	if deadline != "" {
		u.Deadline = service.Some(deadline)
	}
	completed, err := m.prompt("Is the task completed? (yes/no, leave blank to keep current): ")
	if err != nil {
		return err
	}
	switch strings.ToLower(completed) {
	case "yes", "y":
		u.Completed = service.Some(true)
	case "no", "n":
		u.Completed = service.Some(false)
	}

	if err := m.tasks.Edit(index, u); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Task updated successfully.")
	return nil
}

func (m *Menu) remove() error {
	m.list()
	index, err := m.promptIndex("Enter task number to remove: ")
	if err != nil {
		return err
	}
	if err := m.tasks.Remove(index); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Task removed successfully.")
	return nil
}

func (m *Menu) list() {
	m.print(service.Filter{})
}

func (m *Menu) filter() error {
	var f service.Filter

	status, err := m.prompt("Filter by completion status (completed/not completed/leave blank): ")
	if err != nil {
		return err
	}
	switch strings.ToLower(status) {
	case "completed":
		f.Status = service.Some(true)
	case "not completed":
		f.Status = service.Some(false)
	}

	due, err := m.prompt("Filter by due date (YYYY-MM-DD, leave blank for no filter): ")
	if err != nil {
		return err
	}
	if due != "" {
		d, err := task.ParseDate(due)
		if err != nil {
			return err
		}
		f.DueOnOrBefore = service.Some(d)
	}

	m.print(f)
	return nil
}

// print lists tasks matching f under their store display numbers.
func (m *Menu) print(f service.Filter) {
	found := false
	for num, t := range m.tasks.List() {
		if f.Match(t) {
			output.FormatTask(m.out, num, t)
			found = true
		}
	}
	if !found {
		fmt.Fprintln(m.out, "No tasks found.")
	}
}

// promptIndex reads a 1-based task number and returns its 0-based index.
func (m *Menu) promptIndex(label string) (int, error) {
	input, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	num, err := strconv.Atoi(input)
	if err != nil {
		return 0, task.NewError(task.KindIndex, fmt.Sprintf("invalid task number: %q", input))
	}
	return service.IndexOf(m.tasks, num)
}
