package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"tableside/infras/otel"
	"tableside/infras/postgres"
	"tableside/internal/domains/assignment/model"
	"tableside/internal/domains/assignment/model/dto"
	reservation "tableside/internal/domains/reservation/model"
	reservationDto "tableside/internal/domains/reservation/model/dto"
	reservationRepo "tableside/internal/domains/reservation/repository"
	reservationService "tableside/internal/domains/reservation/service"
	table "tableside/internal/domains/table/model"
	tableDto "tableside/internal/domains/table/model/dto"
	tableRepo "tableside/internal/domains/table/repository"
	tableService "tableside/internal/domains/table/service"
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

type Assignment interface {
	Assign(ctx context.Context, reservationID, tableID string) (dto.AssignmentResponse, error)
}

type serviceImpl struct {
	tx           postgres.Transactor
	reservations reservationRepo.Reservation
	tables       tableRepo.Table
	cache        cache.RedisCache
	otel         otel.Otel
	publisher    event.Publisher
}

func New(
	tx postgres.Transactor,
	reservations reservationRepo.Reservation,
	tables tableRepo.Table,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher event.Publisher,
) Assignment {
	return &serviceImpl{
		tx:           tx,
		reservations: reservations,
		tables:       tables,
		cache:        cache,
		otel:         otel,
		publisher:    publisher,
	}
}

// Assign seats a reservation at a table and confirms it. The table row is locked for the
// whole read-check-write sequence, so assignments to one table run one at a time.
func (s *serviceImpl) Assign(ctx context.Context, reservationID, tableID string) (res dto.AssignmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".assignment.Assign")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	id, err := tableService.ParseTableID(tableID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"reservation.id": reservationID,
		"table.id":       id,
	})

	var assigned reservation.Reservation

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		t, err := s.lockTable(ctx, tx, id)
		if err != nil {
			return err
		}

		current, err := s.reservations.GetTx(ctx, tx, shared.FilterByID(reservationID, reservation.FieldID, reservation.TableName))
		if err != nil {
			log.Error().Err(err).Str("id", reservationID).Msg("failed to get reservation")

			return failure.StoreUnavailable
		}

		if current.ID == constant.Empty {
			return reservation.ErrReservationNotFound
		}

		holders, err := s.reservations.GetAllTx(ctx, tx, gDto.QueryParams{}, reservationDto.OccupyingFilter(id))
		if err != nil {
			log.Error().Err(err).Int("table_id", id).Msg("failed to get table holders")

			return failure.StoreUnavailable
		}

		if err := model.Check(current, t, holders); err != nil {
			log.Warn().Err(err).Str("id", reservationID).Int("table_id", id).Msg("assignment rejected")

			return err
		}

		now := timezone.Now()
		fields := map[string]any{
			reservation.FieldTableAssigned: id,
			reservation.FieldStatus:        int(reservation.StatusConfirmed),
			constant.FieldUpdatedAt:        now,
			constant.FieldUpdatedBy:        user,
		}

		if err := s.reservations.UpdateVersionedTx(ctx, tx, fields, current.ID, current.Version); err != nil {
			if errors.Is(err, reservation.ErrStaleReservation) {
				return err
			}

			log.Error().Err(err).Str("id", reservationID).Msg("failed to assign table")

			return failure.StoreUnavailable
		}

		assigned = current
		assigned.TableAssigned = &id
		assigned.Status = reservation.StatusConfirmed
		assigned.Version = current.Version + 1
		assigned.UpdatedAt = now
		assigned.UpdatedBy = user

		return nil
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("assignment transaction failed")

		return res, failure.StoreUnavailable
	}

	res.FromModel(assigned, id)

	event.PublishAsync(ctx, s.publisher, event.New(event.ReservationAssigned, assigned.ID, assigned.TableAssigned, int(assigned.Status), assigned.DatetimeBooked, user))

	go func() {
		c := context.WithoutCancel(ctx)

		reservationService.InvalidateReservation(c, s.cache, assigned.ID, assigned.DatetimeBooked)
	}()

	return res, nil
}

func (s *serviceImpl) lockTable(ctx context.Context, tx *sqlx.Tx, tableID int) (table.Table, error) {
	t, err := s.tables.GetForUpdateTx(ctx, tx, tableDto.ByTableID(tableID))
	if err != nil {
		log.Error().Err(err).Int("table_id", tableID).Msg("failed to lock table")

		return t, failure.StoreUnavailable
	}

	if t.ID == constant.Empty {
		return t, table.ErrTableNotFound
	}

	return t, nil
}
