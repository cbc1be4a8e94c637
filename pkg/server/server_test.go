package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlkit-dev/htmlkit/pkg/document"
	"github.com/htmlkit-dev/htmlkit/pkg/element"
)

func testSource() Source {
	return func(ctx context.Context) (*document.Document, error) {
		return document.NewBuilder().
			Title("Preview").
			AddBodyElement(element.NewContainer("div").WithID("main").WithText("Hello")).
			Build(), nil
	}
}

func TestServePage(t *testing.T) {
	srv := New(Config{}, testSource())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "<title>Preview</title>")
	assert.Contains(t, body, `<div id="main"><span>Hello</span></div>`)
	assert.NotContains(t, body, reloadPath)
}

func TestServePageSourceError(t *testing.T) {
	srv := New(Config{}, func(ctx context.Context) (*document.Document, error) {
		return nil, errors.New("manifest gone")
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "manifest gone")
}

func TestServePageLiveReload(t *testing.T) {
	srv := New(Config{LiveReload: true}, testSource())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, reloadPath)
	// The script goes inside the body, not after the document.
	assert.Less(t, strings.Index(body, reloadPath), strings.Index(body, "</body>"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := New(Config{}, testSource())

	// Render once so the counters exist.
	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "htmlkit_pages_rendered_total")
}

func TestInjectReloadScript(t *testing.T) {
	html := "<html><body><p>x</p></body></html>"
	got := injectReloadScript(html)
	assert.Contains(t, got, "<p>x</p><script>")
	assert.True(t, strings.HasSuffix(got, "</body></html>"))

	// Without a body tag the script is appended.
	got = injectReloadScript("<p>bare</p>")
	assert.True(t, strings.HasPrefix(got, "<p>bare</p><script>"))
}

func TestReloadHubBroadcast(t *testing.T) {
	hub := NewReloadHub()
	ts := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	hub.NotifyReload()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg ReloadMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "reload", msg.Type)

	hub.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: x"), 0o644))

	changed := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go WatchFile(ctx, path, 10*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	// Push the mtime forward past the recorded baseline.
	future := time.Now().Add(time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}
