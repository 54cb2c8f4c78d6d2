package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	sdk "github.com/mehanizm/airtable"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.airtable.com/v0"

	// Airtable allows 5 requests per second per base.
	DefaultRequestsPerSecond = 5
)

// Client lists records of one Airtable base.
type Client struct {
	baseURL   string
	apiKey    string
	baseID    string
	timeout   time.Duration
	rps       float64
	limiter   *rate.Limiter
	transport http.RoundTripper
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, e.g. for an httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout sets the per-request timeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRequestsPerSecond caps outgoing requests.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.rps = rps
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a client for one Airtable base.
func NewClient(apiKey, baseID string, opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		baseID:    baseID,
		timeout:   15 * time.Second,
		rps:       DefaultRequestsPerSecond,
		limiter:   rate.NewLimiter(DefaultRequestsPerSecond, 1),
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRecords returns every record of table matching opt, following the
// offset cursor until the last page. Records keep the order Airtable returns.
func (c *Client) ListRecords(ctx context.Context, table string, opt ListOptions) ([]Record, error) {
	rt := &roundTripper{ctx: ctx, next: c.transport}
	tbl, err := c.table(table, rt)
	if err != nil {
		return nil, err
	}

	var (
		records []Record
		offset  string
	)
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("airtable rate limiter: %w", err)
		}

		query := tbl.GetRecords()
		if opt.FilterByFormula != "" {
			query = query.WithFilterFormula(opt.FilterByFormula)
		}
		if len(opt.Fields) > 0 {
			query = query.ReturnFields(opt.Fields...)
		}
		if opt.View != "" {
			query = query.FromView(opt.View)
		}
		if offset != "" {
			query = query.WithOffset(offset)
		}

		page, err := query.Do()
		if err != nil {
			if apiErr := rt.lastError(); apiErr != nil {
				return nil, apiErr
			}
			return nil, fmt.Errorf("failed to list airtable records: %w", err)
		}

		for _, rec := range page.Records {
			r, err := toRecord(rec)
			if err != nil {
				return nil, err
			}
			records = append(records, r)
		}
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

func (c *Client) table(name string, rt *roundTripper) (*sdk.Table, error) {
	at := sdk.NewClient(c.apiKey)
	if err := at.SetBaseURL(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid airtable base URL %q: %w", c.baseURL, err)
	}
	at.SetRateLimit(int(math.Ceil(c.rps)))
	at.SetCustomClient(&http.Client{Timeout: c.timeout, Transport: rt})
	return at.GetTable(c.baseID, name), nil
}

func toRecord(rec *sdk.Record) (Record, error) {
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return Record{}, fmt.Errorf("failed to encode fields of record %s: %w", rec.ID, err)
	}
	return Record{
		ID:          rec.ID,
		CreatedTime: rec.CreatedTime,
		Fields:      fields,
	}, nil
}

// roundTripper attaches the caller's context to SDK requests and keeps the
// decoded body of the last non-2xx answer.
type roundTripper struct {
	ctx  context.Context
	next http.RoundTripper

	mu     sync.Mutex
	apiErr *APIError
}

func (rt *roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := rt.next.RoundTrip(req.WithContext(rt.ctx))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return resp, nil
	}

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read airtable error response: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	rt.mu.Lock()
	rt.apiErr = parseAPIError(resp.StatusCode, raw)
	rt.mu.Unlock()
	return resp, nil
}

func (rt *roundTripper) lastError() *APIError {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.apiErr
}
