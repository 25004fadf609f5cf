package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tasker/internal/console"
	"tasker/internal/testutil"
)

func runMenu(t *testing.T, tasks *testutil.FakeTasks, input string) string {
	t.Helper()

	var out bytes.Buffer
	menu := console.New(tasks, strings.NewReader(input), &out, nil)
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestMenu_AddTask(t *testing.T) {
	tasks := testutil.NewFakeTasks(t)

	out := runMenu(t, tasks, "1\nPay rent\n2023-12-01\n6\n")

	if !strings.Contains(out, "Task added successfully.") {
		t.Errorf("expected success message, got %q", out)
	}
	if tasks.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", tasks.Len())
	}
	if got := tasks.Tasks()[0].Deadline.String(); got != "2023-12-01" {
		t.Errorf("expected deadline 2023-12-01, got %s", got)
	}
}

func TestMenu_AddTask_BadDateReprompts(t *testing.T) {
	tasks := testutil.NewFakeTasks(t)

	out := runMenu(t, tasks, "1\nPay rent\n12/01/2023\n1\nPay rent\n2023-12-01\n6\n")

	if !strings.Contains(out, "error: invalid date") {
		t.Errorf("expected date error, got %q", out)
	}
	if tasks.Len() != 1 {
		t.Errorf("expected 1 task after retry, got %d", tasks.Len())
	}
}

func TestMenu_EditBlankKeepsFields(t *testing.T) {
	tasks := testutil.NewFakeTasks(t, testutil.Seed{Title: "Pay rent", Deadline: "2023-12-01"})

	out := runMenu(t, tasks, "2\n1\n\n\nyes\n6\n")

	if !strings.Contains(out, "Task updated successfully.") {
		t.Errorf("expected success message, got %q", out)
	}
	got := tasks.Tasks()[0]
	if got.Title != "Pay rent" || got.Deadline.String() != "2023-12-01" {
		t.Errorf("expected title and deadline kept, got %+v", got)
	}
	if !got.Completed {
		t.Error("expected task completed")
	}
}

func TestMenu_EditNoClearsCompleted(t *testing.T) {
	tasks := testutil.NewFakeTasks(t, testutil.Seed{Title: "a", Deadline: "2023-12-01", Completed: true})

	runMenu(t, tasks, "2\n1\nb\n2024-01-01\nno\n6\n")

	got := tasks.Tasks()[0]
	if got.Title != "b" || got.Deadline.String() != "2024-01-01" || got.Completed {
		t.Errorf("unexpected task after edit: %+v", got)
	}
}

func TestMenu_RemoveTask(t *testing.T) {
	tasks := testutil.NewFakeTasks(t,
		testutil.Seed{Title: "a", Deadline: "2023-12-01"},
		testutil.Seed{Title: "b", Deadline: "2023-12-02"},
	)

	out := runMenu(t, tasks, "3\n2\n6\n")

	if !strings.Contains(out, "Task removed successfully.") {
		t.Errorf("expected success message, got %q", out)
	}
	if titles := tasks.Titles(); len(titles) != 1 || titles[0] != "a" {
		t.Errorf("expected [a], got %v", titles)
	}
}

func TestMenu_RemoveOutOfRange(t *testing.T) {
	tasks := testutil.NewFakeTasks(t, testutil.Seed{Title: "a", Deadline: "2023-12-01"})

	for _, input := range []string{"0", "2", "-1", "x"} {
		out := runMenu(t, tasks, "3\n"+input+"\n6\n")
		if !strings.Contains(out, "error: ") {
			t.Errorf("input %q: expected error, got %q", input, out)
		}
	}
	if tasks.Len() != 1 {
		t.Errorf("expected store unchanged, got %d tasks", tasks.Len())
	}
}

func TestMenu_ListAndFilter(t *testing.T) {
	tasks := testutil.NewFakeTasks(t,
		testutil.Seed{Title: "Pay rent", Deadline: "2023-12-01", Completed: true},
		testutil.Seed{Title: "Submit report", Deadline: "2023-12-02"},
	)

	out := runMenu(t, tasks, "4\n5\nnot completed\n\n6\n")

	if !strings.Contains(out, "   1  [x] 2023-12-01  Pay rent\n   2  [ ] 2023-12-02  Submit report\n") {
		t.Errorf("expected full listing, got %q", out)
	}
	// Filtered output keeps the store number.
	if !strings.Contains(out, "Filter by due date (YYYY-MM-DD, leave blank for no filter):    2  [ ] 2023-12-02  Submit report\n") {
		t.Errorf("expected filtered listing, got %q", out)
	}
}

func TestMenu_FilterByDueDate(t *testing.T) {
	tasks := testutil.NewFakeTasks(t,
		testutil.Seed{Title: "early", Deadline: "2023-12-01"},
		testutil.Seed{Title: "late", Deadline: "2023-12-31"},
	)

	out := runMenu(t, tasks, "5\n\n2023-12-15\n6\n")

	if !strings.Contains(out, "early") || strings.Contains(out, "late") {
		t.Errorf("expected only early task, got %q", out)
	}
}

func TestMenu_InvalidOption(t *testing.T) {
	tasks := testutil.NewFakeTasks(t)

	out := runMenu(t, tasks, "9\n6\n")

	if !strings.Contains(out, "Invalid option. Please choose again.") {
		t.Errorf("expected invalid option message, got %q", out)
	}
}

func TestMenu_EOFExits(t *testing.T) {
	tasks := testutil.NewFakeTasks(t)

	runMenu(t, tasks, "1\nhalf a task")

	if tasks.Len() != 0 {
		t.Errorf("expected no task from truncated input, got %d", tasks.Len())
	}
}

func TestMenu_StorageErrorIsReported(t *testing.T) {
	tasks := testutil.NewFakeTasks(t)
	tasks.AddErr = errors.New("disk full")

	out := runMenu(t, tasks, "1\nPay rent\n2023-12-01\n6\n")

	if !strings.Contains(out, "error: disk full") {
		t.Errorf("expected storage error, got %q", out)
	}
}

func TestMenu_CancelledContext(t *testing.T) {
	tasks := testutil.NewFakeTasks(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := console.New(tasks, strings.NewReader("6\n"), &out, nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
