package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableside/config"
	"tableside/infras/jwt"
	"tableside/infras/otel"
	"tableside/infras/postgres"
	assignment "tableside/internal/domains/assignment/model"
	"tableside/internal/domains/reservation/model"
	"tableside/internal/domains/reservation/model/dto"
	"tableside/internal/domains/reservation/repository"
	table "tableside/internal/domains/table/model"
	tableDto "tableside/internal/domains/table/model/dto"
	tableRepo "tableside/internal/domains/table/repository"
	"tableside/shared"
	"tableside/shared/cache"
	"tableside/shared/constant"
	gDto "tableside/shared/dto"
	"tableside/shared/event"
	"tableside/shared/failure"
	"tableside/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Reservation
	tables    tableRepo.Table
	tx        postgres.Transactor
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	jwt       jwt.JWT
	publisher event.Publisher
}

func New(
	repo repository.Reservation,
	tables tableRepo.Table,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	jwt jwt.JWT,
	publisher event.Publisher,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		tables:    tables,
		tx:        tx,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		jwt:       jwt,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, err := req.Start()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if start.Before(timezone.Now()) {
		return res, failure.BadRequestFromString("reservation time is in the past") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	reservation := req.ToModel(user, start)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert reservation")

		return res, failure.StoreUnavailable
	}

	pass, err := s.jwt.IssuePass(reservation.ID)
	if err != nil {
		log.Error().Err(err).Str("reservation_id", reservation.ID).Msg("failed to issue reservation pass")

		return res, fmt.Errorf("failed to issue reservation pass: %w", err)
	}

	res.FromModel(reservation, pass)

	scope.SetAttribute("reservation.id", reservation.ID)

	event.PublishAsync(ctx, s.publisher, event.New(event.ReservationCreated, reservation.ID, nil, int(reservation.Status), start, user))

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheReservationGets)
		shared.InvalidateCaches(c, s.cache, constant.CacheReservationCount)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheReservationGets, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	reservations, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, failure.StoreUnavailable
	}

	res.FromModels(reservations, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheReservationCount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return total, failure.StoreUnavailable
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CacheReservationGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if req.Version != 0 && req.Version != current.Version {
		return model.ErrStaleReservation
	}

	if req.Status != 0 {
		next := model.Status(req.Status)

		if !current.Status.CanTransitionTo(next) {
			log.Warn().Str("id", id).Stringer("from", current.Status).Stringer("to", next).Msg("rejected status transition")

			return model.ErrIllegalTransition
		}

		if next == model.StatusConfirmed && current.TableAssigned == nil {
			return model.ErrTableRequired
		}
	}

	fields, err := req.ToFields(user)
	if err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	if req.Status != 0 && model.Status(req.Status).IsOccupying() && !current.Status.IsOccupying() {
		err = s.occupy(ctx, current, fields)
	} else {
		err = s.repo.UpdateVersioned(ctx, fields, id, current.Version)
	}

	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return err
		}

		log.Error().Err(err).Str("id", id).Msg("failed to update reservation")

		return failure.StoreUnavailable
	}

	status := current.Status
	if req.Status != 0 {
		status = model.Status(req.Status)
	}

	event.PublishAsync(ctx, s.publisher, event.New(event.ReservationUpdated, id, current.TableAssigned, int(status), current.DatetimeBooked, user))

	go func() {
		c := context.WithoutCancel(ctx)

		InvalidateReservation(c, s.cache, id, current.DatetimeBooked)
	}()

	return nil
}

// occupy writes an edit that makes current start holding its table again. The table row is
// locked and capacity and overlap are checked the same way a table assignment does.
func (s *serviceImpl) occupy(ctx context.Context, current model.Reservation, fields map[string]any) error {
	tableID := *current.TableAssigned

	return s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		t, err := s.tables.GetForUpdateTx(ctx, tx, tableDto.ByTableID(tableID))
		if err != nil {
			log.Error().Err(err).Int("table_id", tableID).Msg("failed to lock table")

			return failure.StoreUnavailable
		}

		if t.ID == constant.Empty {
			return table.ErrTableNotFound
		}

		holders, err := s.repo.GetAllTx(ctx, tx, gDto.QueryParams{}, dto.OccupyingFilter(tableID))
		if err != nil {
			log.Error().Err(err).Int("table_id", tableID).Msg("failed to get table holders")

			return failure.StoreUnavailable
		}

		if err := assignment.Check(current, t, holders); err != nil {
			log.Warn().Err(err).Str("id", current.ID).Int("table_id", tableID).Msg("status change rejected")

			return err
		}

		return s.repo.UpdateVersionedTx(ctx, tx, fields, current.ID, current.Version)
	})
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		return reservation, failure.StoreUnavailable
	}

	if reservation.ID == constant.Empty {
		return reservation, model.ErrReservationNotFound
	}

	return reservation, nil
}

// InvalidateReservation drops the cached views a write to reservation id can change,
// including the schedule board of the day it starts on.
func InvalidateReservation(ctx context.Context, redisCache cache.RedisCache, id string, start time.Time) {
	if err := redisCache.Delete(ctx, shared.BuildCacheKey(constant.CacheReservationGet, id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete reservation cache")
	}

	if err := redisCache.Delete(ctx, shared.BuildCacheKey(constant.CacheScheduleGet, timezone.Format(start, constant.DayFormat))); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete schedule cache")
	}

	shared.InvalidateCaches(ctx, redisCache, constant.CacheReservationGets)
	shared.InvalidateCaches(ctx, redisCache, constant.CacheReservationCount)
}
