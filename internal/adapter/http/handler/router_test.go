package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"solgate/internal/core/ports"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(ctx context.Context) error { return s.err }
func (s stubChecker) Name() string                   { return s.name }

// recordingDispatcher captures dispatched updates; the webhook handler hands
// them off on a separate goroutine.
type recordingDispatcher struct {
	mu      sync.Mutex
	got     []tgbotapi.Update
	arrived chan struct{}
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{arrived: make(chan struct{}, 8)}
}

func (d *recordingDispatcher) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	d.mu.Lock()
	d.got = append(d.got, update)
	d.mu.Unlock()
	d.arrived <- struct{}{}
}

func (d *recordingDispatcher) updates() []tgbotapi.Update {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]tgbotapi.Update(nil), d.got...)
}

func newTestRouter(dispatcher UpdateDispatcher, checkers ...ports.HealthChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(RouterDeps{
		Dispatcher:     dispatcher,
		HealthCheckers: checkers,
		Logger:         zerolog.Nop(),
	})
}

func TestHealthCheck_AllUp(t *testing.T) {
	router := newTestRouter(nil,
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis"},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"postgresql":"up"`)
	assert.Contains(t, body, `"redis":"up"`)
	assert.Contains(t, body, `"request_id"`)
}

func TestHealthCheck_DependencyDown(t *testing.T) {
	router := newTestRouter(nil,
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis", err: errors.New("connection refused")},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"status":"degraded"`)
	assert.Contains(t, body, `"postgresql":"up"`)
	assert.Contains(t, body, "connection refused")
}

func TestWebhook_DispatchesUpdate(t *testing.T) {
	dispatcher := newRecordingDispatcher()
	router := newTestRouter(dispatcher)

	payload := `{"update_id":1001,"callback_query":{"id":"cb-1","data":"check_payment_abc"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted":true`)

	select {
	case <-dispatcher.arrived:
	case <-time.After(2 * time.Second):
		t.Fatal("update was never dispatched")
	}

	updates := dispatcher.updates()
	require.Len(t, updates, 1)
	assert.Equal(t, 1001, updates[0].UpdateID)
	require.NotNil(t, updates[0].CallbackQuery)
	assert.Equal(t, "check_payment_abc", updates[0].CallbackQuery.Data)
}

func TestWebhook_MalformedBody(t *testing.T) {
	dispatcher := newRecordingDispatcher()
	router := newTestRouter(dispatcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"error_code":"REQ_001"`)
	assert.Contains(t, body, `"request_id"`)
	assert.Empty(t, dispatcher.updates())
}

func TestWebhook_DisabledWithoutDispatcher(t *testing.T) {
	router := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
