// Package client talks to the agroplanner backend. It is the fetch
// collaborator for the rest of the program: it retrieves catalog and
// schedule records and hands them over as plain slices, leaving all view
// math to the schedule/report/insight packages.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agroplanner/fieldops/pkg/task"
)

// Client is a thin REST client. The zero value is not usable; use New.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// New returns a client for the backend at baseURL. token may be empty for
// unauthenticated deployments.
func New(baseURL, token string) *Client {
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope is the `{ok, data}` wrapper the backend puts around list
// responses.
type envelope struct {
	OK   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

// TaskQuery narrows the /api/tasks listing. Zero-value fields are omitted
// from the request.
type TaskQuery struct {
	PlotID      string
	DateFrom    string
	DateTo      string
	Status      string
	HasProposed *bool
}

// Plots fetches the plot catalog.
func (c *Client) Plots(ctx context.Context) ([]task.Plot, error) {
	var out []task.Plot
	if err := c.getList(ctx, "/api/plots", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Workers fetches the worker catalog.
func (c *Client) Workers(ctx context.Context) ([]task.Worker, error) {
	var out []task.Worker
	if err := c.getList(ctx, "/api/workers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tasks fetches tasks matching the query, ordered by task date.
func (c *Client) Tasks(ctx context.Context, q TaskQuery) ([]task.Task, error) {
	params := url.Values{}
	if q.PlotID != "" {
		params.Set("plot_id", q.PlotID)
	}
	if q.DateFrom != "" {
		params.Set("date_from", q.DateFrom)
	}
	if q.DateTo != "" {
		params.Set("date_to", q.DateTo)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.HasProposed != nil {
		params.Set("has_proposed", fmt.Sprintf("%t", *q.HasProposed))
	}
	var out []task.Task
	if err := c.getList(ctx, "/api/tasks", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Suggestions fetches the latest advisory suggestions. The suggestions
// endpoint predates the `{ok, data}` envelope and wraps its list in a
// `{"suggestions": []}` object instead.
func (c *Client) Suggestions(ctx context.Context) ([]task.Suggestion, error) {
	body, err := c.get(ctx, "/suggestions", nil)
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Suggestions []task.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("client: decoding suggestions: %w", err)
	}
	return wrapper.Suggestions, nil
}

func (c *Client) getList(ctx context.Context, path string, params url.Values, out interface{}) error {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("client: decoding %s: %w", path, err)
	}
	if !env.OK {
		return fmt.Errorf("client: backend refused %s", path)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("client: decoding %s data: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("client: building request for %s: %w", path, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("client: %s returned %s", path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: reading %s: %w", path, err)
	}
	return body, nil
}
