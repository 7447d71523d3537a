package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/sling"

	"eventdesk/internal/logger"
	"eventdesk/internal/model"
)

// Timeout bounds every individual API call.
const Timeout = 15 * time.Second

// Client talks to the events REST API.
type Client struct {
	base *sling.Sling
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string) *Client {
	httpClient := &http.Client{Timeout: Timeout}
	base := sling.New().
		Client(httpClient).
		Base(strings.TrimRight(baseURL, "/") + "/")
	return &Client{base: base}
}

// ListEvents fetches all events.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := c.get(ctx, "events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	var evt model.Event
	if err := c.get(ctx, fmt.Sprintf("events/%d", id), &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}

// ListCategories fetches the category reference collection.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListUsers fetches the user reference collection.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, "users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateEvent posts a new event. The returned Event carries the
// server-assigned id and any server-side normalization; callers must treat
// it, not the payload, as the authoritative snapshot source.
func (c *Client) CreateEvent(ctx context.Context, in model.EventInput) (*model.Event, error) {
	const op = "create event"
	logger.IncrCounter("sync.create")

	var created model.Event
	req, err := c.base.New().Post("events").BodyJSON(in).Request()
	if err != nil {
		return nil, transportFailure(op, err)
	}
	resp, err := c.base.Do(req.WithContext(ctx), &created, nil)
	if err != nil {
		return nil, transportFailure(op, err)
	}
	if !success(resp) {
		return nil, statusFailure(op, resp.StatusCode)
	}
	return &created, nil
}

// UpdateEvent puts the full record for an existing event and returns the
// server's authoritative copy.
func (c *Client) UpdateEvent(ctx context.Context, id int64, in model.EventInput) (*model.Event, error) {
	const op = "update event"
	logger.IncrCounter("sync.update")

	var updated model.Event
	req, err := c.base.New().Put(fmt.Sprintf("events/%d", id)).BodyJSON(in.Event(id)).Request()
	if err != nil {
		return nil, transportFailure(op, err)
	}
	resp, err := c.base.Do(req.WithContext(ctx), &updated, nil)
	if err != nil {
		return nil, transportFailure(op, err)
	}
	if !success(resp) {
		return nil, statusFailure(op, resp.StatusCode)
	}
	return &updated, nil
}

// DeleteEvent removes an event. Only the status matters; the response body
// is ignored.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	const op = "delete event"
	logger.IncrCounter("sync.delete")

	req, err := c.base.New().Delete(fmt.Sprintf("events/%d", id)).Request()
	if err != nil {
		return transportFailure(op, err)
	}
	resp, err := c.base.Do(req.WithContext(ctx), nil, nil)
	if err != nil {
		return transportFailure(op, err)
	}
	if !success(resp) {
		return statusFailure(op, resp.StatusCode)
	}
	return nil
}

// get performs a one-shot GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	op := "get " + path
	req, err := c.base.New().Get(path).Request()
	if err != nil {
		return transportFailure(op, err)
	}
	resp, err := c.base.Do(req.WithContext(ctx), out, nil)
	if err != nil {
		return transportFailure(op, err)
	}
	if !success(resp) {
		return statusFailure(op, resp.StatusCode)
	}
	return nil
}

func success(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
