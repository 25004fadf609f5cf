// Package googletasks implements service.Remote using the Google Tasks API.
package googletasks

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"tasker/internal/config"
	"tasker/internal/service"
	"tasker/internal/task"
)

const (
	// APITimeout is the timeout for each API call.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope for Google Tasks.
	Scope = "https://www.googleapis.com/auth/tasks"

	// dueLayout is how the API writes due dates back; only the date part is kept.
	dueLayout = "2006-01-02T15:04:05.000Z07:00"

	statusCompleted   = "completed"
	statusNeedsAction = "needsAction"
)

// Client implements service.Remote using Google Tasks API.
type Client struct {
	svc *tasks.Service
	log *zap.Logger
}

var _ service.Remote = (*Client)(nil)

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Client, error) {
	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg.TokenPath())
	if err != nil {
		return nil, err
	}

	// Token source refreshes the access token as needed.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	return NewWithHTTPClient(ctx, httpClient, log)
}

// NewWithHTTPClient creates a client with a custom HTTP client.
// Extra options (such as option.WithEndpoint) are passed to the API client.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, log *zap.Logger, opts ...option.ClientOption) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc, log: log}, nil
}

// Push creates every task in the list titled listName, creating the list if
// needed. On failure it returns how many tasks were pushed before the error.
func (c *Client) Push(ctx context.Context, listName string, items []task.Task) (int, error) {
	listName = strings.TrimSpace(listName)
	if listName == "" {
		return 0, fmt.Errorf("list name required")
	}

	listID, err := c.ensureList(ctx, listName)
	if err != nil {
		return 0, err
	}

	for i, t := range items {
		if err := c.insertTask(ctx, listID, t); err != nil {
			return i, fmt.Errorf("push %q: %w", t.Title, err)
		}
		c.log.Debug("pushed task",
			zap.String("list", listName),
			zap.String("title", t.Title),
			zap.String("due", t.Deadline.String()),
		)
	}
	return len(items), nil
}

// ensureList returns the ID of the list titled name (case-insensitive,
// trimmed), creating it when there is none.
func (c *Client) ensureList(ctx context.Context, name string) (string, error) {
	lists, err := c.listLists(ctx)
	if err != nil {
		return "", err
	}

	nameLower := strings.ToLower(name)
	var matches []*tasks.TaskList
	for _, list := range lists {
		if strings.ToLower(strings.TrimSpace(list.Title)) == nameLower {
			matches = append(matches, list)
		}
	}

	switch len(matches) {
	case 0:
		return c.createList(ctx, name)
	case 1:
		return matches[0].Id, nil
	default:
		return "", fmt.Errorf("ambiguous list name: %s", name)
	}
}

func (c *Client) listLists(ctx context.Context) ([]*tasks.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []*tasks.TaskList
	err := c.svc.Tasklists.List().MaxResults(100).Pages(ctx, func(resp *tasks.TaskLists) error {
		result = append(result, resp.Items...)
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

func (c *Client) createList(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Insert(&tasks.TaskList{Title: name}).Context(ctx).Do()
	if err != nil {
		return "", wrapError(err)
	}
	c.log.Debug("created task list", zap.String("list", name), zap.String("id", list.Id))
	return list.Id, nil
}

func (c *Client) insertTask(ctx context.Context, listID string, t task.Task) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasks.Insert(listID, toAPITask(t)).Context(ctx).Do()
	return wrapError(err)
}

// toAPITask converts a local task. The API stores only the date part of due.
func toAPITask(t task.Task) *tasks.Task {
	status := statusNeedsAction
	if t.Completed {
		status = statusCompleted
	}
	return &tasks.Task{
		Title:  t.Title,
		Due:    t.Deadline.Time().Format(dueLayout),
		Status: status,
	}
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: tasker login)")
	}

	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}

	return err
}
