package service

import "tasker/internal/task"

// Optional is a value that is either unset or set, so that a set zero value
// (such as false) is distinguishable from an omitted one.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was supplied.
func (o Optional[T]) IsSet() bool { return o.set }

// Update lists the fields to overwrite in an edit. Unset fields keep their value.
type Update struct {
	Title     Optional[string]
	Deadline  Optional[string] // YYYY-MM-DD
	Completed Optional[bool]
}

// Filter selects tasks. Unset criteria match everything; set criteria are ANDed.
type Filter struct {
	Status        Optional[bool]
	DueOnOrBefore Optional[task.Date]
}

// Match reports whether t satisfies every criterion in f.
func (f Filter) Match(t task.Task) bool {
	if status, ok := f.Status.Get(); ok && t.Completed != status {
		return false
	}
	if due, ok := f.DueOnOrBefore.Get(); ok && t.Deadline.After(due) {
		return false
	}
	return true
}
