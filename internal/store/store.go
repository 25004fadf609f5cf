// Package store keeps an ordered task collection in memory and persists the
// whole collection to a JSON file after every change.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"

	"go.uber.org/zap"

	"tasker/internal/service"
	"tasker/internal/task"
)

// Store implements service.Tasks over a single JSON file.
// It is not safe for concurrent use.
type Store struct {
	path  string
	tasks []task.Task
	log   *zap.Logger
}

var _ service.Tasks = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Open returns a Store backed by path, loading any tasks already in the file.
// A missing file yields an empty store; the file is created on first change.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, task.NewError(task.KindStorage, "tasks file path required")
	}
	s := &Store{path: path, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	s.tasks = tasks
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Add appends a new task and persists.
func (s *Store) Add(title, deadline string) error {
	t, err := task.New(title, deadline, false)
	if err != nil {
		return err
	}
	s.tasks = append(s.tasks, t)
	return s.save()
}

// Remove deletes the task at index and persists.
func (s *Store) Remove(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return s.save()
}

// Edit overwrites the fields set in u on the task at index and persists.
// Nothing is changed if any supplied field is invalid.
func (s *Store) Edit(index int, u service.Update) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	t := s.tasks[index]
	if title, ok := u.Title.Get(); ok {
		if err := task.ValidateTitle(title); err != nil {
			return err
		}
		t.Title = title
	}
	if deadline, ok := u.Deadline.Get(); ok {
		d, err := task.ParseDate(deadline)
		if err != nil {
			return err
		}
		t.Deadline = d
	}
	if completed, ok := u.Completed.Get(); ok {
		t.Completed = completed
	}

	s.tasks[index] = t
	return s.save()
}

// Filter returns the tasks matching f, in insertion order.
func (s *Store) Filter(f service.Filter) []task.Task {
	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// List yields (display number, task) pairs numbered from 1.
// The store must not be modified while the sequence is being consumed.
func (s *Store) List() iter.Seq2[int, task.Task] {
	return func(yield func(int, task.Task) bool) {
		for i, t := range s.tasks {
			if !yield(i+1, t) {
				return
			}
		}
	}
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return task.NewError(task.KindIndex, fmt.Sprintf("task index out of range: %d (have %d tasks)", index, len(s.tasks)))
	}
	return nil
}

func (s *Store) load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("tasks file not found, starting empty", zap.String("path", s.path))
		return nil, nil
	}
	if err != nil {
		return nil, task.WrapError(task.KindStorage, "read tasks file", err)
	}

	// An empty file is treated like a missing one.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, task.WrapError(task.KindStorage, fmt.Sprintf("%s is not a task list", s.path), err)
	}

	tasks := make([]task.Task, 0, len(raw))
	for i, item := range raw {
		rec, err := task.DecodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		t, err := task.FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}

	s.log.Debug("loaded tasks", zap.String("path", s.path), zap.Int("count", len(tasks)))
	return tasks, nil
}

func (s *Store) save() error {
	records := make([]task.Record, len(s.tasks))
	for i, t := range s.tasks {
		records[i] = t.ToRecord()
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return task.WrapError(task.KindStorage, "encode tasks", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		s.log.Warn("failed to save tasks", zap.String("path", s.path), zap.Error(err))
		return task.WrapError(task.KindStorage, "write tasks file", err)
	}

	s.log.Debug("saved tasks", zap.String("path", s.path), zap.Int("count", len(s.tasks)))
	return nil
}
