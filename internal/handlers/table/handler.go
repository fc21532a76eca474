package table

import (
	"net/http"

	"tableside/infras/otel"
	"tableside/internal/domains/table/model"
	"tableside/internal/domains/table/model/dto"
	"tableside/internal/domains/table/service"
	"tableside/shared"
	"tableside/shared/constant"
	gDto "tableside/shared/dto"
	"tableside/shared/failure"
	"tableside/shared/validator"
	"tableside/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formPhoto = "photo"

type Handler struct {
	service service.Table
	otel    otel.Otel
}

func New(service service.Table, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tables", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTable)
		routerGroup.Get("/", handler.GetTables)
		routerGroup.Get("/{table_id}", handler.GetTableByID)
		routerGroup.Patch("/{table_id}", handler.UpdateTable)
	})
}

// CreateTable registers a physical table and allocates its table id.
// @Summary Create a table
// @Description The new table gets the next free table id (highest existing id plus one).
// @Tags Table
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Table name"
// @Param capacity formData integer true "Seats"
// @Param location formData string false "Area of the floor"
// @Param photo formData file false "Table photo"
// @Success 201 {object} response.Data[dto.TableResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/tables [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTable")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.CreateTableRequest{
		Name:     request.FormValue(model.FieldName),
		Location: request.FormValue(model.FieldLocation),
	}

	if capacity := request.FormValue(model.FieldCapacity); capacity != "" {
		c, err := shared.ConvertStringToInt(capacity)
		if err != nil {
			response.WithError(writer, failure.BadRequest(err))

			return
		}

		req.Capacity = c
	}

	file, fileHeader, err := request.FormFile(formPhoto)
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table created successfully by " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetTables lists tables, by name unless sort_by says otherwise.
// @Summary Get all tables
// @Tags Table
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Filter by location"
// @Success 200 {object} response.Data[dto.GetTablesResponse]
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/tables [get]
// @Security ApiKeyAuth
func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.FieldName, model.FieldName, model.FieldTableID, model.FieldCapacity, model.FieldLocation)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if location := r.URL.Query().Get(model.FieldLocation); location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	tables, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tables)
}

// GetTableByID retrieves a table by its table id.
// @Summary Get a table
// @Tags Table
// @Accept json
// @Produce json
// @Param table_id path integer true "Table ID"
// @Success 200 {object} response.Data[dto.TableResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tables/{table_id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetTableByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTableByID")
	defer scope.End()

	tableID := chi.URLParam(r, constant.RequestParamTableID)

	table, err := handler.service.Get(ctx, tableID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table_id", tableID).Msg("failed to get table")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, table)
}

// UpdateTable edits name, capacity, location or photo.
// @Summary Update a table
// @Tags Table
// @Accept multipart/form-data
// @Produce json
// @Param table_id path integer true "Table ID"
// @Param name formData string false "Table name"
// @Param capacity formData integer false "Seats"
// @Param location formData string false "Area of the floor"
// @Param photo formData file false "Table photo"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/tables/{table_id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTable")
	defer scope.End()

	tableID := chi.URLParam(r, constant.RequestParamTableID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UpdateTableRequest{
		Name:     r.FormValue(model.FieldName),
		Location: r.FormValue(model.FieldLocation),
	}

	if capacity := r.FormValue(model.FieldCapacity); capacity != "" {
		c, err := shared.ConvertStringToInt(capacity)
		if err != nil {
			response.WithError(w, failure.BadRequest(err))

			return
		}

		req.Capacity = c
	}

	file, fileHeader, err := r.FormFile(formPhoto)
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, tableID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table_id", tableID).Msg("failed to update table")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table updated successfully by " + user)

	response.WithMessage(w, http.StatusOK, "Table updated successfully")
}
