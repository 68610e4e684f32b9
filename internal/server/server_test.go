package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"capsection/internal/config"
	"capsection/internal/manufacturing"
	"capsection/pkg/logging"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var fixedNow = time.Date(2031, time.March, 4, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	logging.InitForCLI(logging.LevelError, io.Discard)
	goleak.VerifyTestMain(m)
}

// swapSource lets a test change the configuration between requests.
type swapSource struct {
	cfg atomic.Pointer[config.CapsectionConfig]
}

func (s *swapSource) Config() config.CapsectionConfig { return *s.cfg.Load() }

func newTestServer(t *testing.T, cfg config.CapsectionConfig) *Server {
	t.Helper()
	return New(cfg.Server, config.NewStatic(cfg),
		WithRenderer(manufacturing.NewRenderer(manufacturing.WithClock(func() time.Time { return fixedNow }))),
	)
}

func do(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Page(t *testing.T) {
	s := newTestServer(t, config.GetDefaultConfig())
	rec := do(t, s, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeHTML, rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "SYS.VER.2031.3")
	assert.Contains(t, body, "DOC.CQS.CAP.2031")
	assert.Contains(t, body, "<title>CQS | Manufacturing Capabilities</title>")
}

func TestServer_Section(t *testing.T) {
	s := newTestServer(t, config.GetDefaultConfig())
	rec := do(t, s, http.MethodGet, "/section")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<section"))
	assert.NotContains(t, body, "<html")
	assert.Equal(t, 3, strings.Count(body, `data-role="card"`))
}

func TestServer_Head(t *testing.T) {
	s := newTestServer(t, config.GetDefaultConfig())
	rec := do(t, s, http.MethodHead, "/section")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestServer_Capabilities(t *testing.T) {
	s := newTestServer(t, config.GetDefaultConfig())
	rec := do(t, s, http.MethodGet, "/api/capabilities")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeJSON, rec.Header().Get("Content-Type"))

	var doc manufacturing.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, 2031, doc.Year)
	require.Len(t, doc.Cards, 3)
	assert.Equal(t, "CAP-02", doc.Cards[1].ID)
	assert.Equal(t, 45, doc.Markers[1].Offset)
}

func TestServer_Health(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Section.Capabilities = []manufacturing.Capability{}
	s := newTestServer(t, cfg)
	rec := do(t, s, http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 0, body.Capabilities)
}

func TestServer_NotFound(t *testing.T) {
	s := newTestServer(t, config.GetDefaultConfig())
	rec := do(t, s, http.MethodGet, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"/nope"`)
}

func TestServer_RequestID(t *testing.T) {
	s := newTestServer(t, config.GetDefaultConfig())

	rec := do(t, s, http.MethodGet, "/healthz")
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t, config.GetDefaultConfig())

	do(t, s, http.MethodGet, "/section")
	do(t, s, http.MethodGet, "/section")
	do(t, s, http.MethodGet, "/")

	m := s.Metrics()
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/section", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/", "200")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.Capabilities))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RenderDuration))

	rec := do(t, s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "capsection_http_requests_total")
	assert.Contains(t, rec.Body.String(), "capsection_render_duration_seconds")
}

func TestServer_FollowsSource(t *testing.T) {
	src := &swapSource{}
	cfg := config.GetDefaultConfig()
	src.cfg.Store(&cfg)

	s := New(cfg.Server, src)
	assert.Contains(t, do(t, s, http.MethodGet, "/section").Body.String(), "</span>/CQS")

	next := config.GetDefaultConfig()
	next.Section.CompanyName = "ACME"
	src.cfg.Store(&next)
	assert.Contains(t, do(t, s, http.MethodGet, "/section").Body.String(), "</span>/ACME")
}

func TestServer_ServeAndShutdown(t *testing.T) {
	s := newTestServer(t, config.GetDefaultConfig())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()
	defer http.DefaultClient.CloseIdleConnections()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNew_Addr(t *testing.T) {
	s := New(config.ServerConfig{Host: "0.0.0.0", Port: 9090}, config.NewStatic(config.GetDefaultConfig()))
	assert.Equal(t, "0.0.0.0:9090", s.Addr())
}
