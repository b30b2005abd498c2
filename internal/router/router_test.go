package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"supermind-backend/internal/handlers"
	"supermind-backend/internal/services"
)

const origin = "https://dash.example.com"

func newTestRouter(t *testing.T, upstreamURL string) http.Handler {
	t.Helper()
	svc, err := services.NewLangflowService(upstreamURL, func() (string, error) { return "tok", nil }, "Summarize data", time.Second)
	require.NoError(t, err)

	return New(
		zerolog.Nop(),
		handlers.NewChatHandler(svc, zerolog.Nop()),
		handlers.NewDashboardHandler(services.NewAnalyticsService()),
		[]string{origin},
	)
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:0")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	require.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouter_ChatWithCORS(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"outputs":[{"outputs":[{"results":{"message":{"text":"hello"}}}]}]}`))
	}))
	defer upstream.Close()
	r := newTestRouter(t, upstream.URL)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"input_value":"hi"}`))
	req.Header.Set("Origin", origin)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"hello"}`, rr.Body.String())
	require.Equal(t, origin, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ChatPreflight(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, origin, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ChatRejectsGet(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:0")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/chat", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_DashboardChart(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:0")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard/charts/post-distribution", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"type":"pie"`)
}
