package reservation

import (
	"net/http"

	"tableside/infras/otel"
	"tableside/internal/domains/reservation/model"
	"tableside/internal/domains/reservation/model/dto"
	"tableside/internal/domains/reservation/service"
	"tableside/shared"
	"tableside/shared/constant"
	gDto "tableside/shared/dto"
	"tableside/shared/failure"
	"tableside/shared/timezone"
	"tableside/shared/validator"
	"tableside/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryDate    = "date"
	queryStatus  = "status"
	queryTableID = "table_id"
)

var sortable = []string{
	model.FieldDatetimeBooked,
	model.FieldName,
	model.FieldGuestCount,
	model.FieldStatus,
	model.FieldTableAssigned,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// PublicRouter mounts the guest facing routes.
func (handler *Handler) PublicRouter(router chi.Router, limit func(http.Handler) http.Handler) {
	router.With(limit).Post("/reservations", handler.CreateReservation)
}

// Router mounts the staff routes. They share /reservations with the public POST,
// so they are registered per method instead of through a sub-router.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/reservations", handler.GetReservations)
	router.Get("/reservations/{id}", handler.GetReservationByID)
	router.Patch("/reservations/{id}", handler.UpdateReservation)
}

// CreateReservation handles a guest reservation request.
// @Summary Request a reservation
// @Description Create a pending, unassigned reservation and return a signed pass token.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.CreateReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Message
// @Failure 503 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation requested " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetReservations lists reservations.
// @Summary Get all reservations
// @Description Retrieve reservations with optional filtering, sorting and pagination.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Filter by day (YYYY-MM-DD)"
// @Param status query integer false "Filter by status (1..5)"
// @Param table_id query integer false "Filter by assigned table"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations [get]
// @Security ApiKeyAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.FieldDatetimeBooked, sortable...)

	filter, err := listFilter(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	filterGroup, err := filter.FilterGroup(timezone.GetLocation())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation applies a staff edit.
// @Summary Update a reservation
// @Description Edit status, notes, payment status, arrival time or contact fields. Status changes follow the reservation lifecycle.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Update Reservation Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation updated successfully by " + user)

	response.WithMessage(w, http.StatusOK, "Reservation updated successfully")
}

func listFilter(r *http.Request) (dto.ListFilter, error) {
	query := r.URL.Query()

	filter := dto.ListFilter{Date: query.Get(queryDate)}

	if status := query.Get(queryStatus); status != constant.Empty {
		value, err := shared.ConvertStringToInt(status)
		if err != nil {
			return filter, failure.BadRequest(err)
		}

		filter.Status = value
	}

	if tableID := query.Get(queryTableID); tableID != constant.Empty {
		value, err := shared.ConvertStringToInt(tableID)
		if err != nil {
			return filter, failure.BadRequest(err)
		}

		filter.TableID = value
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		return filter, err
	}

	return filter, nil
}
