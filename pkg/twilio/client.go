package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	twiliosdk "github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const DefaultBaseURL = "https://api.twilio.com"

// Client sends SMS through the Twilio Programmable Messaging API.
type Client struct {
	accountSID string
	authToken  string
	baseURL    *url.URL
	timeout    time.Duration
	transport  http.RoundTripper
}

// NewClient creates a new Twilio client for one account.
func NewClient(accountSID, authToken string) *Client {
	base, _ := url.Parse(DefaultBaseURL)
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		baseURL:    base,
		timeout:    15 * time.Second,
		transport:  http.DefaultTransport,
	}
}

// SetBaseURL overrides the default Twilio API URL for testing purposes.
func (c *Client) SetBaseURL(u string) {
	if u == "" {
		return
	}
	if parsed, err := url.Parse(u); err == nil && parsed.Host != "" {
		c.baseURL = parsed
	}
}

// SetTimeout sets the per-request timeout. Zero keeps the current one.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// CreateMessage sends one SMS. Provider rejections are returned as *APIError.
func (c *Client) CreateMessage(ctx context.Context, params CreateMessageParams) (*Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := &openapi.CreateMessageParams{}
	req.SetPathAccountSid(c.accountSID)
	req.SetFrom(params.From)
	req.SetTo(params.To)
	req.SetBody(params.Body)

	resp, err := c.restClient(ctx).Api.CreateMessage(req)
	if err != nil {
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			return nil, &APIError{
				Status:   restErr.Status,
				Code:     restErr.Code,
				Message:  restErr.Message,
				MoreInfo: restErr.MoreInfo,
			}
		}
		return nil, fmt.Errorf("failed to call twilio messages API: %w", err)
	}

	// The SDK resource uses the same snake_case wire names as Message.
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode twilio message: %w", err)
	}
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode twilio message: %w", err)
	}
	return &msg, nil
}

// restClient builds an SDK client bound to ctx and the configured base URL.
func (c *Client) restClient(ctx context.Context) *twiliosdk.RestClient {
	httpClient := &http.Client{
		Timeout: c.timeout,
		Transport: &roundTripper{
			ctx:  ctx,
			base: c.baseURL,
			next: c.transport,
		},
	}

	return twiliosdk.NewRestClientWithParams(twiliosdk.ClientParams{
		Client: &twilioclient.Client{
			Credentials: twilioclient.NewCredentials(c.accountSID, c.authToken),
			HTTPClient:  httpClient,
		},
	})
}

// roundTripper points SDK requests at base and attaches the caller's context.
type roundTripper struct {
	ctx  context.Context
	base *url.URL
	next http.RoundTripper
}

func (rt *roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(rt.ctx)
	out.URL.Scheme = rt.base.Scheme
	out.URL.Host = rt.base.Host
	out.Host = rt.base.Host
	return rt.next.RoundTrip(out)
}
