package pass

import (
	"net/http"

	"tableside/infras/otel"
	"tableside/internal/domains/pass/service"
	"tableside/shared/constant"
	"tableside/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pass
	otel    otel.Otel
}

func New(service service.Pass, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/passes/{token}", handler.GetPass)
}

// GetPass resolves the token a guest QR code carries.
// @Summary Look up a reservation pass
// @Tags Pass
// @Accept json
// @Produce json
// @Param token path string true "Pass token"
// @Success 200 {object} response.Data[dto.PassResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/passes/{token} [get]
func (handler *Handler) GetPass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPass")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	res, err := handler.service.Get(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("pass lookup failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
