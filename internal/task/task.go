// Package task defines the Task value object and its serializable record form.
package task

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the on-disk and command-line date format.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time component.
// The zero Date is not valid; obtain one from ParseDate.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string. Impossible dates such as 2023-02-30
// are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, WrapError(KindParse, fmt.Sprintf("invalid date %q", s), err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Task is a single to-do item.
type Task struct {
	Title     string
	Deadline  Date
	Completed bool
}

// New creates a task from a title and a YYYY-MM-DD deadline.
func New(title, deadline string, completed bool) (Task, error) {
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}
	d, err := ParseDate(deadline)
	if err != nil {
		return Task{}, err
	}
	return Task{Title: title, Deadline: d, Completed: completed}, nil
}

// ValidateTitle rejects empty or whitespace-only titles, and titles that are
// not valid UTF-8 since JSON encoding would rewrite them.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewError(KindInvalid, "title required")
	}
	if !utf8.ValidString(title) {
		return NewError(KindInvalid, "title is not valid UTF-8")
	}
	return nil
}

// Record is the plain serializable form of a Task.
// Pointer fields distinguish a missing key from a zero value.
type Record struct {
	Title     *string `json:"title"`
	Deadline  *string `json:"deadline"`
	Completed *bool   `json:"completed,omitempty"`
}

// ToRecord converts t into its record form.
func (t Task) ToRecord() Record {
	title := t.Title
	deadline := t.Deadline.String()
	completed := t.Completed
	return Record{
		Title:     &title,
		Deadline:  &deadline,
		Completed: &completed,
	}
}

// FromRecord is the inverse of ToRecord. A missing completed flag reads as false.
func FromRecord(r Record) (Task, error) {
	if r.Title == nil {
		return Task{}, NewError(KindSchema, "record missing field: title")
	}
	if r.Deadline == nil {
		return Task{}, NewError(KindSchema, "record missing field: deadline")
	}
	if err := ValidateTitle(*r.Title); err != nil {
		return Task{}, WrapError(KindSchema, "record has empty title", err)
	}
	completed := false
	if r.Completed != nil {
		completed = *r.Completed
	}
	d, err := ParseDate(*r.Deadline)
	if err != nil {
		return Task{}, err
	}
	return Task{Title: *r.Title, Deadline: d, Completed: completed}, nil
}
