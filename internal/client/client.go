package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Nazary21/Teammatic/pkg/apierrors"
)

const defaultTimeout = 30 * time.Second

// Client issues requests against the persistence backend's HTTP surface and
// normalizes responses into domain entities. Each call is a single
// request/response cycle; there are no retries and no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do runs one round trip. A non-2xx response or a network failure becomes a
// *Fault; the message comes from the server's error envelope when present,
// else fallbackMsg.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, fallbackMsg string) error {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Fault{Category: FaultTransport, Message: fallbackMsg}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return faultFromResponse(resp, fallbackMsg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Fault{Category: FaultTransport, Message: fallbackMsg}
	}
	return nil
}

func faultFromResponse(resp *http.Response, fallbackMsg string) *Fault {
	fault := &Fault{Category: categoryForStatus(resp.StatusCode), Message: fallbackMsg}

	var envelope apierrors.JsonErr
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.ErrDetails.Message != "" {
		fault.Message = envelope.ErrDetails.Message
		fault.Fields = envelope.ErrDetails.Details
	}

	return fault
}

func categoryForStatus(status int) FaultCategory {
	switch {
	case status == http.StatusBadRequest:
		return FaultValidation
	case status == http.StatusNotFound:
		return FaultNotFound
	case status >= 500:
		return FaultInternal
	default:
		return FaultTransport
	}
}
