package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasker/internal/service"
	"tasker/internal/task"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func mustDate(t *testing.T, s string) task.Date {
	t.Helper()
	d, err := task.ParseDate(s)
	require.NoError(t, err)
	return d
}

func titles(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, tk := range tasks {
		out[i] = tk.Title
	}
	return out
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	s, path := openTemp(t)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, path, s.Path())
	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "open must not create the file")
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.True(t, errors.Is(err, task.ErrStorage))
}

func TestAdd(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("Pay rent", "2023-12-01"))
	require.NoError(t, s.Add("Submit report", "2023-12-02"))

	require.Equal(t, 2, s.Len())
	last := s.Tasks()[1]
	assert.Equal(t, "Submit report", last.Title)
	assert.Equal(t, "2023-12-02", last.Deadline.String())
	assert.False(t, last.Completed)
}

func TestAdd_InvalidDeadline(t *testing.T) {
	s, path := openTemp(t)

	err := s.Add("Pay rent", "2023-12-32")
	assert.True(t, errors.Is(err, task.ErrParse), "got %v", err)
	assert.Equal(t, 0, s.Len())
	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "failed add must not write")
}

func TestAdd_InvalidUTF8TitleNotWritten(t *testing.T) {
	s, path := openTemp(t)

	err := s.Add("rent \xff", "2023-12-01")
	assert.True(t, errors.Is(err, task.ErrInvalid), "got %v", err)
	assert.Equal(t, 0, s.Len())
	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "failed add must not write")
}

func TestReopenRoundTrip_NonASCIITitle(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Add("Loyer à payer ✓", "2023-12-01"))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, s.Tasks(), reopened.Tasks())
}

func TestRemove(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("a", "2023-12-01"))
	require.NoError(t, s.Add("b", "2023-12-02"))
	require.NoError(t, s.Add("c", "2023-12-03"))

	require.NoError(t, s.Remove(1))
	assert.Equal(t, []string{"a", "c"}, titles(s.Tasks()))
}

func TestRemove_OutOfRange(t *testing.T) {
	for _, index := range []int{-1, 2, 10} {
		s, _ := openTemp(t)
		require.NoError(t, s.Add("a", "2023-12-01"))
		require.NoError(t, s.Add("b", "2023-12-02"))

		err := s.Remove(index)
		assert.True(t, errors.Is(err, task.ErrIndex), "index %d: got %v", index, err)
		assert.Equal(t, []string{"a", "b"}, titles(s.Tasks()), "index %d", index)
	}
}

func TestEdit_OnlyCompleted(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("Pay rent", "2023-12-01"))

	require.NoError(t, s.Edit(0, service.Update{Completed: service.Some(true)}))

	got := s.Tasks()[0]
	assert.Equal(t, "Pay rent", got.Title)
	assert.Equal(t, "2023-12-01", got.Deadline.String())
	assert.True(t, got.Completed)
}

func TestEdit_ExplicitFalse(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("Pay rent", "2023-12-01"))
	require.NoError(t, s.Edit(0, service.Update{Completed: service.Some(true)}))

	require.NoError(t, s.Edit(0, service.Update{Completed: service.Some(false)}))
	assert.False(t, s.Tasks()[0].Completed)
}

func TestEdit_AllFields(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Add("Test Task", "2023-12-01"))

	err := s.Edit(0, service.Update{
		Title:     service.Some("Updated Task"),
		Deadline:  service.Some("2024-01-15"),
		Completed: service.Some(true),
	})
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)
	got := reopened.Tasks()[0]
	assert.Equal(t, "Updated Task", got.Title)
	assert.Equal(t, "2024-01-15", got.Deadline.String())
	assert.True(t, got.Completed)
}

func TestEdit_EmptyUpdateStillPersists(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Add("a", "2023-12-01"))
	require.NoError(t, os.Remove(path))

	require.NoError(t, s.Edit(0, service.Update{}))

	_, err := os.Stat(path)
	require.NoError(t, err, "empty edit must rewrite the file")
	assert.Equal(t, "a", s.Tasks()[0].Title)
}

func TestEdit_InvalidInputLeavesTaskUnchanged(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("a", "2023-12-01"))
	before := s.Tasks()[0]

	err := s.Edit(0, service.Update{Title: service.Some("b"), Deadline: service.Some("nope")})
	assert.True(t, errors.Is(err, task.ErrParse), "got %v", err)
	assert.Equal(t, before, s.Tasks()[0])

	err = s.Edit(0, service.Update{Title: service.Some(" ")})
	assert.True(t, errors.Is(err, task.ErrInvalid), "got %v", err)
	assert.Equal(t, before, s.Tasks()[0])

	err = s.Edit(0, service.Update{Title: service.Some("a\xfe")})
	assert.True(t, errors.Is(err, task.ErrInvalid), "got %v", err)
	assert.Equal(t, before, s.Tasks()[0])
}

func TestEdit_OutOfRange(t *testing.T) {
	s, _ := openTemp(t)

	err := s.Edit(0, service.Update{Completed: service.Some(true)})
	assert.True(t, errors.Is(err, task.ErrIndex))
	err = s.Edit(-1, service.Update{})
	assert.True(t, errors.Is(err, task.ErrIndex))
}

func TestFilter(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("a", "2023-12-01"))
	require.NoError(t, s.Add("b", "2023-12-05"))
	require.NoError(t, s.Add("c", "2023-12-03"))
	require.NoError(t, s.Add("d", "2023-12-10"))
	require.NoError(t, s.Edit(1, service.Update{Completed: service.Some(true)}))
	require.NoError(t, s.Edit(2, service.Update{Completed: service.Some(true)}))

	tests := []struct {
		name   string
		filter service.Filter
		want   []string
	}{
		{name: "no filter", filter: service.Filter{}, want: []string{"a", "b", "c", "d"}},
		{name: "completed", filter: service.Filter{Status: service.Some(true)}, want: []string{"b", "c"}},
		{name: "open", filter: service.Filter{Status: service.Some(false)}, want: []string{"a", "d"}},
		{
			name:   "due on or before",
			filter: service.Filter{DueOnOrBefore: service.Some(mustDate(t, "2023-12-03"))},
			want:   []string{"a", "c"},
		},
		{
			name: "both",
			filter: service.Filter{
				Status:        service.Some(true),
				DueOnOrBefore: service.Some(mustDate(t, "2023-12-04")),
			},
			want: []string{"c"},
		},
		{
			name:   "nothing due",
			filter: service.Filter{DueOnOrBefore: service.Some(mustDate(t, "2023-11-30"))},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(s.Filter(tt.filter)))
		})
	}
}

func TestFilter_ReturnsCopy(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("a", "2023-12-01"))

	got := s.Filter(service.Filter{})
	got[0].Title = "changed"

	assert.Equal(t, "a", s.Tasks()[0].Title)
}

func TestList(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("a", "2023-12-01"))
	require.NoError(t, s.Add("b", "2023-12-02"))

	var nums []int
	var names []string
	for n, tk := range s.List() {
		nums = append(nums, n)
		names = append(names, tk.Title)
	}
	assert.Equal(t, []int{1, 2}, nums)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestList_StopsEarly(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("a", "2023-12-01"))
	require.NoError(t, s.Add("b", "2023-12-02"))

	count := 0
	for range s.List() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestReopenRoundTrip(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Add("Pay rent", "2023-12-01"))
	require.NoError(t, s.Add("Submit report", "2023-12-02"))
	require.NoError(t, s.Add("Call mom", "2024-02-29"))
	require.NoError(t, s.Edit(1, service.Update{Completed: service.Some(true)}))
	want := s.Tasks()

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, want, reopened.Tasks())
}

func TestScenario_PayRentSubmitReport(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add("Pay rent", "2023-12-01"))
	require.NoError(t, s.Add("Submit report", "2023-12-02"))
	require.NoError(t, s.Edit(0, service.Update{Completed: service.Some(true)}))

	assert.Equal(t, []string{"Pay rent"}, titles(s.Filter(service.Filter{Status: service.Some(true)})))
	assert.Equal(t, []string{"Submit report"}, titles(s.Filter(service.Filter{Status: service.Some(false)})))
}

func TestSave_FileFormat(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Add("Pay rent", "2023-12-01"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "[\n  {\n    \"title\": \"Pay rent\",\n    \"deadline\": \"2023-12-01\",\n    \"completed\": false\n  }\n]\n"
	assert.Equal(t, want, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestOpen_LoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	content := `[
  {"title": "Pay rent", "deadline": "2023-12-01", "completed": true},
  {"title": "Submit report", "deadline": "2023-12-02"}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.True(t, s.Tasks()[0].Completed)
	assert.False(t, s.Tasks()[1].Completed)
}

func TestOpen_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestOpen_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "not json", content: "not json at all", want: task.ErrStorage},
		{name: "object instead of array", content: `{"title":"x"}`, want: task.ErrStorage},
		{name: "record missing deadline", content: `[{"title":"x"}]`, want: task.ErrSchema},
		{name: "record wrong type", content: `[{"title":"x","deadline":"2023-12-01","completed":1}]`, want: task.ErrSchema},
		{name: "bad date", content: `[{"title":"x","deadline":"2023-13-01"}]`, want: task.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Open(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)
		})
	}
}

func TestSave_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")

	s, err := Open(filepath.Join(sub, "tasks.json"))
	require.NoError(t, err)

	// A regular file where the parent directory should be.
	require.NoError(t, os.WriteFile(sub, []byte("x"), 0o644))

	err = s.Add("a", "2023-12-01")
	assert.True(t, errors.Is(err, task.ErrStorage), "got %v", err)
	assert.Equal(t, 1, s.Len(), "memory stays the source of truth")
}
