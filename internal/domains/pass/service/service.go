package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"tableside/infras/jwt"
	"tableside/infras/otel"
	"tableside/internal/domains/pass/model/dto"
	reservation "tableside/internal/domains/reservation/model"
	reservationRepo "tableside/internal/domains/reservation/repository"
	"tableside/shared"
	"tableside/shared/constant"
	"tableside/shared/failure"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidPass = failure.Unauthorized("invalid reservation pass")
	ErrExpiredPass = failure.Unauthorized("reservation pass has expired")
)

type Pass interface {
	Get(ctx context.Context, token string) (dto.PassResponse, error)
}

type serviceImpl struct {
	repo reservationRepo.Reservation
	otel otel.Otel
	jwt  jwt.JWT
}

func New(repo reservationRepo.Reservation, otel otel.Otel, jwt jwt.JWT) Pass {
	return &serviceImpl{
		repo: repo,
		otel: otel,
		jwt:  jwt,
	}
}

func (s *serviceImpl) Get(ctx context.Context, token string) (res dto.PassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pass.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.ValidatePass(token)
	if err != nil {
		log.Warn().Err(err).Msg("rejected reservation pass")

		if errors.Is(err, jwt.ErrExpiredToken) {
			return res, ErrExpiredPass
		}

		return res, ErrInvalidPass
	}

	m, err := s.repo.Get(ctx, shared.FilterByID(claims.ReservationID, reservation.FieldID, reservation.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", claims.ReservationID).Msg("failed to get reservation for pass")

		return res, failure.StoreUnavailable
	}

	if m.ID == constant.Empty {
		return res, reservation.ErrReservationNotFound
	}

	res.FromModel(m, claims)

	return res, nil
}
