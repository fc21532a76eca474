package assignment

import (
	"net/http"

	"tableside/infras/otel"
	"tableside/internal/domains/assignment/service"
	"tableside/shared/constant"
	"tableside/shared/failure"
	"tableside/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Assignment
	otel    otel.Otel
}

func New(service service.Assignment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Put("/reservations/{id}/table/{table_id}", handler.AssignTable)
}

// AssignTable seats a reservation at a table.
// @Summary Assign a table to a reservation
// @Description Checks status, capacity and overlap with the table's current holders, then confirms the reservation.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param table_id path integer true "Table ID"
// @Success 200 {object} response.Data[dto.AssignmentResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations/{id}/table/{table_id} [put]
// @Security ApiKeyAuth
func (handler *Handler) AssignTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	tableID := chi.URLParam(r, constant.RequestParamTableID)

	res, err := handler.service.Assign(ctx, id, tableID)
	if err != nil {
		scope.TraceError(err)
		event := log.Warn()
		if failure.GetCode(err) >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.Err(err).Str("id", id).Str("table_id", tableID).Msg("failed to assign table")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table " + tableID + " assigned to reservation " + id + " by " + user)

	response.WithJSON(w, http.StatusOK, res)
}
