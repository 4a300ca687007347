// Package postgrest is a small query-builder client for a PostgREST endpoint
// such as the Supabase REST API (<project>/rest/v1).
//
// Queries are built fluently and executed once:
//
//	var rows []Row
//	err := client.From("user_listings").
//		Select("*").
//		Eq("user_id", userID).
//		Order("created_at", false).
//		Limit(50).
//		Execute(ctx, &rows)
//
// Failures reported by PostgREST decode into *Error, whose Error() is the
// server's human-readable message.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const restPath = "/rest/v1"

// CodeNoRows is the PostgREST code for a Single() query that matched zero or
// more than one row.
const CodeNoRows = "PGRST116"

// Client talks to one PostgREST endpoint using a privileged API key.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	restURL string
	key     string
	http    *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default traced HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a Client for the project at baseURL authenticated with key.
func New(baseURL, key string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("postgrest: parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("postgrest: url %q must be http or https", baseURL)
	}
	if key == "" {
		return nil, errors.New("postgrest: api key is empty")
	}

	c := &Client{
		restURL: u.String() + restPath,
		key:     key,
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// From starts a query against table.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table, method: http.MethodGet, params: url.Values{}}
}

// Ping issues a GET against the REST root and reports any non-2xx answer.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.restURL+"/", http.NoBody)
	if err != nil {
		return fmt.Errorf("postgrest: build ping: %w", err)
	}
	c.authorize(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("postgrest: ping: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("postgrest: ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
}

// Error is a failure reported by PostgREST.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string { return e.Message }

// IsNoRows reports whether err is a Single() query that matched zero or many rows.
func IsNoRows(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Code == CodeNoRows
}

// Query is a single PostgREST request under construction.
type Query struct {
	client *Client
	table  string
	method string
	params url.Values
	body   any
	single bool
}

// Select sets the returned columns. After Insert or Update it asks PostgREST
// to return the affected rows.
func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	return q
}

// Insert posts rows (a struct, map or slice of them).
func (q *Query) Insert(rows any) *Query {
	q.method = http.MethodPost
	q.body = rows
	return q
}

// Update patches every row matching the filters with patch.
func (q *Query) Update(patch any) *Query {
	q.method = http.MethodPatch
	q.body = patch
	return q
}

// Delete removes every row matching the filters.
func (q *Query) Delete() *Query {
	q.method = http.MethodDelete
	return q
}

// Eq adds a column = value filter.
func (q *Query) Eq(column, value string) *Query {
	q.params.Add(column, "eq."+value)
	return q
}

// Order sorts by column.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.params.Add("order", column+"."+dir)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", strconv.Itoa(n))
	return q
}

// Single requires exactly one row; zero or many fail with CodeNoRows.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Execute sends the request and decodes the response body into dest when
// dest is non-nil and the server returned content.
func (q *Query) Execute(ctx context.Context, dest any) error {
	req, err := q.build(ctx)
	if err != nil {
		return err
	}

	resp, err := q.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("postgrest: %s %s: %w", q.method, q.table, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("postgrest: read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, payload)
	}

	if dest == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("postgrest: decode response: %w", err)
	}
	return nil
}

func (q *Query) build(ctx context.Context) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if q.body != nil {
		raw, err := json.Marshal(q.body)
		if err != nil {
			return nil, fmt.Errorf("postgrest: encode body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	target := q.client.restURL + "/" + url.PathEscape(q.table)
	if len(q.params) > 0 {
		target += "?" + q.params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, q.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("postgrest: build request: %w", err)
	}
	q.client.authorize(req)

	if q.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if q.single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	} else {
		req.Header.Set("Accept", "application/json")
	}
	if q.method != http.MethodGet {
		if q.params.Has("select") {
			req.Header.Set("Prefer", "return=representation")
		} else {
			req.Header.Set("Prefer", "return=minimal")
		}
	}
	return req, nil
}

func decodeError(status int, payload []byte) error {
	pe := &Error{Status: status}
	if err := json.Unmarshal(payload, pe); err != nil || pe.Message == "" {
		pe.Message = strings.TrimSpace(string(payload))
		if pe.Message == "" {
			pe.Message = http.StatusText(status)
		}
	}
	return pe
}
