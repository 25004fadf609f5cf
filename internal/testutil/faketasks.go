// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"

	"tasker/internal/service"
	"tasker/internal/store"
	"tasker/internal/task"
)

// Seed describes a task to preload into a test store.
type Seed struct {
	Title     string
	Deadline  string
	Completed bool
}

// NewStore opens a store on a fresh temp file and adds seeds in order.
func NewStore(t *testing.T, seeds ...Seed) *store.Store {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	for i, seed := range seeds {
		if err := s.Add(seed.Title, seed.Deadline); err != nil {
			t.Fatalf("failed to seed task %q: %v", seed.Title, err)
		}
		if seed.Completed {
			if err := s.Edit(i, service.Update{Completed: service.Some(true)}); err != nil {
				t.Fatalf("failed to complete task %q: %v", seed.Title, err)
			}
		}
	}
	return s
}

// FakeTasks wraps a real temp-file store and injects errors into mutations.
type FakeTasks struct {
	*store.Store

	// Error injection for testing
	AddErr    error
	RemoveErr error
	EditErr   error
}

// NewFakeTasks returns a FakeTasks over NewStore(t, seeds...).
func NewFakeTasks(t *testing.T, seeds ...Seed) *FakeTasks {
	t.Helper()
	return &FakeTasks{Store: NewStore(t, seeds...)}
}

// Add implements service.Tasks.
func (f *FakeTasks) Add(title, deadline string) error {
	if f.AddErr != nil {
		return f.AddErr
	}
	return f.Store.Add(title, deadline)
}

// Remove implements service.Tasks.
func (f *FakeTasks) Remove(index int) error {
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	return f.Store.Remove(index)
}

// Edit implements service.Tasks.
func (f *FakeTasks) Edit(index int, u service.Update) error {
	if f.EditErr != nil {
		return f.EditErr
	}
	return f.Store.Edit(index, u)
}

// Titles returns the titles of all tasks in order.
func (f *FakeTasks) Titles() []string {
	var out []string
	for _, t := range f.Tasks() {
		out = append(out, t.Title)
	}
	return out
}

// MockRemote is a testify mock of service.Remote.
type MockRemote struct {
	mock.Mock
}

// Push implements service.Remote.
func (m *MockRemote) Push(ctx context.Context, listName string, tasks []task.Task) (int, error) {
	args := m.Called(ctx, listName, tasks)
	return args.Int(0), args.Error(1)
}
