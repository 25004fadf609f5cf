// Package service defines the interfaces the command layer works against.
package service

import (
	"context"
	"iter"

	"tasker/internal/task"
)

// Tasks is the local task collection.
// Indices are 0-based; callers showing display numbers convert first.
type Tasks interface {
	// Add appends a new, not completed task and persists.
	Add(title, deadline string) error

	// Remove deletes the task at index and persists.
	// Returns an IndexError unless 0 <= index < Len().
	Remove(index int) error

	// Edit applies only the fields set in u and persists.
	Edit(index int, u Update) error

	// Filter returns the tasks matching f in insertion order.
	// The result is a copy; the collection is not modified.
	Filter(f Filter) []task.Task

	// List yields (display number, task) pairs, numbered from 1.
	List() iter.Seq2[int, task.Task]

	// Len returns the number of tasks.
	Len() int
}

// Remote is a task service the local collection can be pushed to.
// Implementations never import the local store.
type Remote interface {
	// Push creates every task in the named remote list, creating the list if
	// it does not exist. Returns the number of tasks pushed.
	Push(ctx context.Context, listName string, tasks []task.Task) (int, error)
}
