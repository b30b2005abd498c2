package relayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL + "/")
	require.NoError(t, err)
	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New("  ")
	require.Error(t, err)
}

func TestPost_HappyPath(t *testing.T) {
	var gotPath, gotType string
	var gotBody map[string]string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"message":"hi","count":2}`))
	})

	out, err := c.Post(context.Background(), "/chat", map[string]string{"input_value": "hello"}, nil)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"message": "hi", "count": float64(2)}, out)
	require.Equal(t, "/chat", gotPath)
	require.Equal(t, "application/json", gotType)
	require.Equal(t, map[string]string{"input_value": "hello"}, gotBody)
}

func TestPost_CustomHeaders(t *testing.T) {
	var gotTrace string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotTrace = r.Header.Get("X-Trace")
		_, _ = w.Write([]byte(`[]`))
	})

	out, err := c.Post(context.Background(), "/x", struct{}{}, map[string]string{"X-Trace": "abc"})
	require.NoError(t, err)
	require.Equal(t, []interface{}{}, out)
	require.Equal(t, "abc", gotTrace)
}

func TestPost_StatusErrorCarriesCodeAndBody(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	})

	out, err := c.Post(context.Background(), "/chat", map[string]string{}, nil)
	require.Nil(t, out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
	require.Contains(t, err.Error(), "not found")

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, "Not Found", statusErr.StatusText)
	require.Equal(t, "404 Not Found - not found", statusErr.Error())
}

func TestPost_NonJSONSuccessIsParseError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": "cut off`))
	})

	out, err := c.Post(context.Background(), "/chat", map[string]string{}, nil)
	require.Nil(t, out)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, `{"message": "cut off`, parseErr.Body)
}

func TestPost_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := New(srv.URL)
	require.NoError(t, err)
	srv.Close()

	_, err = c.Post(context.Background(), "/chat", map[string]string{}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "relayclient: POST")
}

func TestPost_LogsOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Something went wrong. Please try again later."}`))
	}))
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	c, err := New(srv.URL, WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)

	_, err = c.Post(context.Background(), "/chat", map[string]string{}, nil)
	require.Error(t, err)
	require.Contains(t, buf.String(), `"status":500`)
	require.Contains(t, buf.String(), "HTTP error")
}

func TestChat_ReturnsMessage(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"input_value":"How many likes last week?"}`, string(raw))
		_, _ = w.Write([]byte(`{"message":"You had 1,240 likes."}`))
	})

	reply, err := c.Chat(context.Background(), "How many likes last week?")
	require.NoError(t, err)
	require.Equal(t, "You had 1,240 likes.", reply)
}

func TestChat_MissingMessageIsParseError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"reply":"wrong field"}`))
	})

	_, err := c.Chat(context.Background(), "hi")
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}
