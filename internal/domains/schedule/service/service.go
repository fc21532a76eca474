package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tableside/config"
	"tableside/infras/otel"
	reservation "tableside/internal/domains/reservation/model"
	reservationDto "tableside/internal/domains/reservation/model/dto"
	reservationRepo "tableside/internal/domains/reservation/repository"
	"tableside/internal/domains/schedule/model"
	"tableside/internal/domains/schedule/model/dto"
	table "tableside/internal/domains/table/model"
	tableRepo "tableside/internal/domains/table/repository"
	"tableside/shared"
	"tableside/shared/cache"
	"tableside/shared/constant"
	gDto "tableside/shared/dto"
	"tableside/shared/failure"
	"tableside/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Schedule interface {
	Get(ctx context.Context, date string) (dto.ScheduleResponse, error)
}

type serviceImpl struct {
	reservations reservationRepo.Reservation
	tables       tableRepo.Table
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(reservations reservationRepo.Reservation, tables tableRepo.Table, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Schedule {
	return &serviceImpl{
		reservations: reservations,
		tables:       tables,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) slots() []string {
	if len(s.cfg.App.Schedule.Slots) > 0 {
		return s.cfg.App.Schedule.Slots
	}

	return constant.DefaultTimeSlots
}

// Get projects the board for one calendar day in the application timezone.
func (s *serviceImpl) Get(ctx context.Context, date string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	loc := timezone.GetLocation()

	day, err := time.ParseInLocation(constant.DayFormat, date, loc)
	if err != nil {
		return res, failure.BadRequest(fmt.Errorf("invalid date %q: %w", date, err)) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CacheScheduleGet, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedule")

		return res, nil
	}

	tables, err := s.tables.GetAll(ctx, gDto.QueryParams{SortBy: table.FieldName, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables for schedule")

		return res, failure.StoreUnavailable
	}

	reservations, err := s.reservations.GetAll(ctx, gDto.QueryParams{SortBy: reservation.FieldDatetimeBooked, SortDir: gDto.SortDirAsc}, dayFilter(day))
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to get reservations for schedule")

		return res, failure.StoreUnavailable
	}

	grid := model.Project(tables, reservations, day, s.slots(), loc)
	if len(grid.Unaligned) > 0 {
		log.Warn().Str("date", date).Int("count", len(grid.Unaligned)).Msg("reservations do not start on a board slot")
	}

	res.FromModel(grid)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule to cache")
		}
	}()

	return res, nil
}

func dayFilter(day time.Time) gDto.FilterGroup {
	statuses := make([]int, len(reservation.OccupyingStatuses))
	for i, status := range reservation.OccupyingStatuses {
		statuses[i] = int(status)
	}

	filters := reservationDto.DayWindow(day)
	filters = append(filters, gDto.Filter{
		Field:    reservation.FieldStatus,
		Operator: gDto.FilterOperatorIn,
		Value:    statuses,
		Table:    reservation.TableName,
	})

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
