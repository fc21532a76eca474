package schedule

import (
	"net/http"

	"tableside/infras/otel"
	"tableside/internal/domains/schedule/model/dto"
	"tableside/internal/domains/schedule/service"
	"tableside/shared/constant"
	"tableside/shared/timezone"
	"tableside/shared/validator"
	"tableside/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/schedule", handler.GetSchedule)
}

// GetSchedule projects a day's occupying reservations onto the slot grid.
// @Summary Get the day schedule
// @Description One row per table, one cell per time slot. Head cells span the reservation duration.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.ScheduleResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/schedule [get]
// @Security ApiKeyAuth
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	req := dto.GetScheduleRequest{Date: r.URL.Query().Get(constant.RequestParamDate)}
	if req.Date == constant.Empty {
		req.Date = timezone.Format(timezone.Now(), constant.DayFormat)
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, req.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", req.Date).Msg("failed to get schedule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
