package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"supermind-backend/internal/logging"
	"supermind-backend/internal/models"
)

// ReplyPath locates the assistant text in a Langflow run response.
const ReplyPath = "outputs.0.outputs.0.results.message.text"

const (
	maxUpstreamBody      = 1 << 20
	maxUpstreamErrorBody = 64 << 10
)

// TokenSource yields the bearer credential. It is consulted on every call.
type TokenSource func() (string, error)

type LangflowService struct {
	endpoint     string
	token        TokenSource
	defaultInput string
	timeout      time.Duration
	httpClient   *http.Client
	logger       zerolog.Logger
}

type LangflowOption func(*LangflowService)

func WithHTTPClient(client *http.Client) LangflowOption {
	return func(s *LangflowService) {
		s.httpClient = client
	}
}

func WithLogger(logger zerolog.Logger) LangflowOption {
	return func(s *LangflowService) {
		s.logger = logger
	}
}

func NewLangflowService(endpoint string, token TokenSource, defaultInput string, timeout time.Duration, opts ...LangflowOption) (*LangflowService, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("langflow: endpoint must not be empty")
	}
	if token == nil {
		return nil, fmt.Errorf("langflow: token source must not be nil")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	s := &LangflowService{
		endpoint:     endpoint,
		token:        token,
		defaultInput: defaultInput,
		timeout:      timeout,
		httpClient:   &http.Client{},
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run sends one chat turn to the flow and returns the reply text exactly as
// the flow produced it. Blank input is replaced by the configured default.
func (s *LangflowService) Run(ctx context.Context, input string) (string, error) {
	log := s.logger.With().Str("component", "langflow").Logger()
	log.Info().Msg("Relay triggered")

	token, err := s.token()
	if err != nil {
		log.Error().Err(err).Msg("Credential unavailable")
		return "", &ConfigError{Message: "langflow: credential unavailable"}
	}

	if strings.TrimSpace(input) == "" {
		input = s.defaultInput
	}
	payload := models.NewLangflowChatRun(input)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("langflow: marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("langflow: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	log.Debug().
		Str("content_type", "application/json").
		Str("authorization", logging.RedactBearer(token)).
		Msg("Request headers")
	log.Debug().RawJSON("payload", body).Msg("Making API request")

	start := time.Now()
	res, err := s.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("Langflow request failed")
		return "", &TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, maxUpstreamErrorBody))
		log.Error().
			Int("status", res.StatusCode).
			Str("details", string(buf)).
			Msg("Langflow returned an error")
		return "", &UpstreamError{StatusCode: res.StatusCode, Body: buf}
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxUpstreamBody))
	if err != nil {
		log.Error().Err(err).Msg("Reading Langflow response failed")
		return "", &TransportError{Err: err}
	}

	log.Debug().
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("response", string(raw)).
		Msg("Langflow response")

	text, err := ExtractReply(raw)
	if err != nil {
		log.Error().Err(err).Msg("Langflow response has unexpected shape")
		return "", err
	}
	return text, nil
}

// ExtractReply pulls the reply text out of a run response without trusting
// any intermediate level to exist.
func ExtractReply(raw []byte) (string, error) {
	if !gjson.ValidBytes(raw) {
		return "", &ShapeError{Path: ReplyPath}
	}
	result := gjson.GetBytes(raw, ReplyPath)
	if !result.Exists() || result.Type != gjson.String {
		return "", &ShapeError{Path: ReplyPath}
	}
	return result.String(), nil
}
