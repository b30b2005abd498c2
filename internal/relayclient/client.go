// Package relayclient calls the chat relay from a front end: it posts JSON,
// reads the raw response text and turns every failure into one error value.
package relayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"supermind-backend/internal/models"
)

const maxResponseBody = 1 << 20

// DefaultHeaders are sent when Post is called without headers.
func DefaultHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

// HTTPStatusError is a non-2xx answer from the relay.
type HTTPStatusError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%d %s - %s", e.StatusCode, e.StatusText, e.Body)
}

// ParseError means a 2xx body was not the JSON the caller expected.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("relayclient: base URL must not be empty")
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Post sends body as JSON to baseURL+endpoint and returns the decoded
// response. A nil headers map means DefaultHeaders.
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}, headers map[string]string) (interface{}, error) {
	url := c.baseURL + endpoint
	if headers == nil {
		headers = DefaultHeaders()
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "relayclient: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "relayclient: create request")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("Request error")
		return nil, errors.Wrapf(err, "relayclient: POST %s", url)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBody))
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("Request error")
		return nil, errors.Wrap(err, "relayclient: read response")
	}
	text := string(raw)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.logger.Error().Int("status", res.StatusCode).Str("response", text).Msg("HTTP error")
		return nil, &HTTPStatusError{
			StatusCode: res.StatusCode,
			StatusText: http.StatusText(res.StatusCode),
			Body:       text,
		}
	}

	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Error().Err(err).Str("response", text).Msg("Response is not JSON")
		return nil, &ParseError{Body: text, Err: err}
	}

	c.logger.Debug().Int("status", res.StatusCode).Str("url", url).Msg("Request succeeded")
	return out, nil
}

// Chat posts one message to /chat and returns the reply text.
func (c *Client) Chat(ctx context.Context, input string) (string, error) {
	out, err := c.Post(ctx, "/chat", models.ChatRequest{InputValue: input}, nil)
	if err != nil {
		return "", err
	}

	obj, ok := out.(map[string]interface{})
	if !ok {
		return "", &ParseError{Err: errors.New("response is not an object")}
	}
	message, ok := obj["message"].(string)
	if !ok {
		return "", &ParseError{Err: errors.New("response has no message string")}
	}
	return message, nil
}
