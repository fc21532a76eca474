package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tableside/config"
	otelMocks "tableside/infras/otel/mocks"
	cacheMocks "tableside/shared/cache/mocks"
	"tableside/shared/constant"
	"tableside/transport/http/middleware"
	"tableside/transport/http/router"
)

func newServer(t *testing.T, cfg *config.Config) *HTTP {
	ctrl := gomock.NewController(t)
	ot := otelMocks.NewOtel()
	app := middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl))

	r := router.New(router.DomainHandlers{}, router.Middlewares{
		App:  app,
		Auth: middleware.NewAuthMiddleware(ot, cfg),
	})

	return New(cfg, r, app, ot)
}

func TestHTTP_Health(t *testing.T) {
	tests := []struct {
		name        string
		state       ServerState
		wantStatus  int
		wantMessage string
	}{
		{name: "ready", state: ServerStateReady, wantStatus: http.StatusOK, wantMessage: "OK"},
		{name: "grace period", state: ServerStateInGracePeriod, wantStatus: http.StatusServiceUnavailable, wantMessage: constant.ResponseErrorPrepareShutdown},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantStatus: http.StatusServiceUnavailable, wantMessage: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, &config.Config{})
			server.setState(tt.state)

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			var body struct {
				Message string `json:"message"`
			}

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestHTTP_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://board.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPut}

	server := newServer(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/v1/schedule", nil)
	req.Header.Set("Origin", "https://board.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "https://board.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
