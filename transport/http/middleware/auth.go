package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"tableside/config"
	"tableside/infras/otel"
	"tableside/shared/constant"
	"tableside/shared/failure"
	"tableside/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth separates guest traffic from staff traffic. There are no user accounts:
// staff tooling authenticates with the shared service key.
type Auth interface {
	Guest(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	if cfg.App.APIKey == constant.Empty {
		log.Warn().Msg("APP_API_KEY is empty, staff routes will reject every request")
	}

	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// Guest marks the request as coming from a guest.
func (m *authImpl) Guest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := context.WithValue(request.Context(), constant.ContextKeyUserID, constant.ContextGuest)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// APIKey admits staff requests carrying the configured X-API-Key.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if m.cfg.App.APIKey == constant.Empty || subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) != 1 {
			scope.SetAttribute("http.source", "client")
			scope.TraceError(failure.InvalidAPIKey)
			scope.End()

			response.WithError(writer, failure.InvalidAPIKey)

			return
		}

		scope.SetAttribute("http.source", "staff")
		scope.End()

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextStaff)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
