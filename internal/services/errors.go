package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TransportError means the upstream call never produced a response.
type TransportError struct{ Err error }

func (e *TransportError) Error() string { return fmt.Sprintf("langflow: transport: %v", e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError is a non-2xx answer from the completion API.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("langflow: unexpected status %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

func (e *UpstreamError) HTTPStatusCode() int { return e.StatusCode }

// Payload returns the upstream body for relaying to the caller: raw JSON when
// the body parses, the trimmed text otherwise, nil when empty.
func (e *UpstreamError) Payload() interface{} {
	trimmed := strings.TrimSpace(string(e.Body))
	switch trimmed {
	case "", "null", "{}", "[]", `""`:
		return nil
	}
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}
	return trimmed
}

// ShapeError means the upstream answered 2xx without the expected reply field.
type ShapeError struct{ Path string }

func (e *ShapeError) Error() string {
	return fmt.Sprintf("langflow: response has no string at %s", e.Path)
}

// ConfigError means the relay is missing configuration it needs per call.
type ConfigError struct{ Message string }

func (e *ConfigError) Error() string { return e.Message }
