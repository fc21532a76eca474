package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tableside/infras/otel"
	"tableside/infras/postgres"
	"tableside/internal/domains/reservation/model"
	"tableside/shared/constant"
	gDto "tableside/shared/dto"
	gRepo "tableside/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	// UpdateVersioned writes fields only if the stored version still equals version, and bumps it.
	UpdateVersioned(ctx context.Context, fields map[string]any, id string, version int) error
	UpdateVersionedTx(ctx context.Context, sqltx *sqlx.Tx, fields map[string]any, id string, version int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) UpdateVersioned(ctx context.Context, fields map[string]any, id string, version int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.UpdateVersioned")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := r.Update(ctx, versioned(fields, version), versionFilter(id, version))
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	return checkAffected(affected)
}

func (r *repositoryImpl) UpdateVersionedTx(ctx context.Context, sqltx *sqlx.Tx, fields map[string]any, id string, version int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.UpdateVersionedTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := r.UpdateTx(ctx, sqltx, versioned(fields, version), versionFilter(id, version))
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	return checkAffected(affected)
}

func versioned(fields map[string]any, version int) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		out[key] = value
	}

	out[model.FieldVersion] = version + 1

	return out
}

// versionFilter uses its own arg name so it does not collide with the new version in the SET clause.
func versionFilter(id string, version int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "expected_version",
				Field:    model.FieldVersion,
				Operator: gDto.FilterOperatorEq,
				Value:    version,
				Table:    model.TableName,
			},
		},
	}
}

func checkAffected(affected int64) error {
	if affected == 0 {
		return model.ErrStaleReservation
	}

	return nil
}
