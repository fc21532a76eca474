package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tableside/config"
	"tableside/infras/jwt"
	jwtMocks "tableside/infras/jwt/mocks"
	"tableside/infras/otel/mocks"
	txMocks "tableside/infras/postgres/mocks"
	assignment "tableside/internal/domains/assignment/model"
	reservationMocks "tableside/internal/domains/reservation/mocks"
	"tableside/internal/domains/reservation/model"
	"tableside/internal/domains/reservation/model/dto"
	"tableside/internal/domains/reservation/service"
	tableMocks "tableside/internal/domains/table/mocks"
	table "tableside/internal/domains/table/model"
	cacheMocks "tableside/shared/cache/mocks"
	"tableside/shared/constant"
	gDto "tableside/shared/dto"
	eventMocks "tableside/shared/event/mocks"
	"tableside/shared/failure"
	"tableside/shared/timezone"
)

type fixture struct {
	repo      *reservationMocks.MockReservation
	tables    *tableMocks.MockTable
	tx        *txMocks.MockTransactor
	cache     *cacheMocks.MockRedisCache
	jwt       *jwtMocks.MockJWT
	publisher *eventMocks.MockPublisher
	svc       service.Reservation
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:      reservationMocks.NewMockReservation(ctrl),
		tables:    tableMocks.NewMockTable(ctrl),
		tx:        txMocks.NewMockTransactor(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		jwt:       jwtMocks.NewMockJWT(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}
	f.svc = service.New(f.repo, f.tables, f.tx, cfg, f.cache, mocks.NewOtel(), f.jwt, f.publisher)

	return f
}

// runTx executes the callback directly, as a committed transaction would.
func (f fixture) runTx() {
	f.tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func (f fixture) afterWrite() {
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func tableID(id int) *int {
	return &id
}

func TestReservationService_Create(t *testing.T) {
	nextWeek := timezone.Now().AddDate(0, 0, 7)
	lastWeek := timezone.Now().AddDate(0, 0, -7)

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func(f fixture)
		wantErr   error
		wantCode  int
	}{
		{
			name: "successful request",
			req: dto.CreateReservationRequest{
				Name:        "Dana",
				PhoneNumber: "+628123456789",
				Date:        nextWeek.Format(constant.DayFormat),
				Time:        "19:00",
				GuestCount:  4,
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Reservation) error {
						assert.Equal(t, model.StatusPending, m.Status)
						assert.Nil(t, m.TableAssigned)
						assert.Equal(t, dto.DefaultDuration, m.Duration)
						assert.Equal(t, 1, m.Version)

						return nil
					})

				f.jwt.EXPECT().
					IssuePass(gomock.Any()).
					Return(&jwt.Pass{Token: "token", URL: "https://example.com/p/token", ExpiresAt: nextWeek}, nil)

				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "start in the past",
			req: dto.CreateReservationRequest{
				Name:        "Dana",
				PhoneNumber: "+628123456789",
				Date:        lastWeek.Format(constant.DayFormat),
				Time:        "19:00",
				GuestCount:  2,
			},
			setupMock: func(_ fixture) {},
			wantCode:  400,
		},
		{
			name: "invalid calendar date",
			req: dto.CreateReservationRequest{
				Name:        "Dana",
				PhoneNumber: "+628123456789",
				Date:        "2031-02-30",
				Time:        "19:00",
				GuestCount:  2,
			},
			setupMock: func(_ fixture) {},
			wantCode:  400,
		},
		{
			name: "store unavailable",
			req: dto.CreateReservationRequest{
				Name:        "Dana",
				PhoneNumber: "+628123456789",
				Date:        nextWeek.Format(constant.DayFormat),
				Time:        "12:00",
				GuestCount:  2,
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: failure.StoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantCode != 0:
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "pending", res.StatusLabel)
				assert.Equal(t, "token", res.PassToken)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	booked := time.Date(2031, 3, 1, 19, 0, 0, 0, timezone.GetLocation())

	tests := []struct {
		name      string
		id        string
		setupMock func(f fixture)
		wantErr   error
		wantName  string
	}{
		{
			name: "cache hit",
			id:   "res-1",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), "reservation:get:res-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*dto.ReservationResponse).Name = "Cached"

						return nil
					})
			},
			wantName: "Cached",
		},
		{
			name: "cache miss loads from store",
			id:   "res-1",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "res-1", Name: "Dana", DatetimeBooked: booked, Duration: 2, Status: model.StatusPending}, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantName: "Dana",
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)
			},
			wantErr: model.ErrReservationNotFound,
		},
		{
			name: "store unavailable",
			id:   "res-1",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, errors.New("timeout"))
			},
			wantErr: failure.StoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Name)
		})
	}
}

func TestReservationService_GetAll(t *testing.T) {
	f := newFixture(t)

	booked := time.Date(2031, 3, 1, 19, 0, 0, 0, timezone.GetLocation())
	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), filter).Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), params, filter).
		Return([]model.Reservation{
			{ID: "a", Name: "Ana", DatetimeBooked: booked, Duration: 1, Status: model.StatusPending},
			{ID: "b", Name: "Budi", DatetimeBooked: booked, Duration: 2, Status: model.StatusConfirmed, TableAssigned: tableID(3)},
		}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.GetAll(context.Background(), params, filter)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Reservations, 2)
	assert.Equal(t, "confirmed", res.Reservations[1].StatusLabel)
	assert.Equal(t, 3, *res.Reservations[1].TableAssigned)
}

func TestReservationService_Update(t *testing.T) {
	booked := time.Date(2031, 3, 1, 19, 0, 0, 0, timezone.GetLocation())

	stored := func(status model.Status, assigned *int, version int) model.Reservation {
		return model.Reservation{
			ID:             "res-1",
			Name:           "Dana",
			DatetimeBooked: booked,
			Duration:       2,
			GuestCount:     4,
			Status:         status,
			TableAssigned:  assigned,
			Version:        version,
		}
	}

	window := table.Table{ID: "t-uuid", TableID: 2, Name: "Window", Capacity: 4}

	tests := []struct {
		name      string
		req       dto.UpdateReservationRequest
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name: "seated to completed",
			req:  dto.UpdateReservationRequest{Status: int(model.StatusCompleted), Version: 3},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusSeated, tableID(2), 3), nil)
				f.repo.EXPECT().
					UpdateVersioned(gomock.Any(), gomock.Any(), "res-1", 3).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ string, _ int) error {
						assert.Equal(t, int(model.StatusCompleted), fields[model.FieldStatus])
						assert.Contains(t, fields, constant.FieldUpdatedAt)

						return nil
					})
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Delete(gomock.Any(), "reservation:get:res-1").Return(nil).AnyTimes()
				f.cache.EXPECT().Delete(gomock.Any(), "schedule:get:2031-03-01").Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "notes only keeps status",
			req:  dto.UpdateReservationRequest{Notes: "window seat"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusCompleted, tableID(2), 5), nil)
				f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "res-1", 5).Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "terminal state cannot move",
			req:  dto.UpdateReservationRequest{Status: int(model.StatusSeated)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusCompleted, tableID(2), 1), nil)
			},
			wantErr: model.ErrIllegalTransition,
		},
		{
			name: "confirm without a table",
			req:  dto.UpdateReservationRequest{Status: int(model.StatusConfirmed)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusPending, nil, 1), nil)
			},
			wantErr: model.ErrTableRequired,
		},
		{
			name: "confirm on a table already held for the same time",
			req:  dto.UpdateReservationRequest{Status: int(model.StatusConfirmed)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusPending, tableID(2), 4), nil)
				f.runTx()
				f.tables.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(window, nil)
				f.repo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Reservation{{
						ID: "res-2", DatetimeBooked: booked, Duration: 2,
						Status: model.StatusConfirmed, TableAssigned: tableID(2),
					}}, nil)
			},
			wantErr: assignment.ErrTableAlreadyAssigned,
		},
		{
			name: "confirm a party larger than the table",
			req:  dto.UpdateReservationRequest{Status: int(model.StatusConfirmed)},
			setupMock: func(f fixture) {
				large := stored(model.StatusPending, tableID(2), 4)
				large.GuestCount = 40

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(large, nil)
				f.runTx()
				f.tables.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(window, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: assignment.ErrCapacityExceeded,
		},
		{
			name: "confirm on a free table writes inside the lock",
			req:  dto.UpdateReservationRequest{Status: int(model.StatusConfirmed)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusPending, tableID(2), 4), nil)
				f.runTx()
				f.tables.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(window, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().
					UpdateVersionedTx(gomock.Any(), gomock.Any(), gomock.Any(), "res-1", 4).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ string, _ int) error {
						assert.Equal(t, int(model.StatusConfirmed), fields[model.FieldStatus])

						return nil
					})
				f.afterWrite()
			},
		},
		{
			name: "confirm when the assigned table is gone",
			req:  dto.UpdateReservationRequest{Status: int(model.StatusConfirmed)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusPending, tableID(2), 4), nil)
				f.runTx()
				f.tables.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(table.Table{}, nil)
			},
			wantErr: table.ErrTableNotFound,
		},
		{
			name: "client holds an old version",
			req:  dto.UpdateReservationRequest{Notes: "late", Version: 1},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusPending, nil, 2), nil)
			},
			wantErr: model.ErrStaleReservation,
		},
		{
			name: "concurrent writer wins",
			req:  dto.UpdateReservationRequest{Status: int(model.StatusCancelled)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusPending, nil, 2), nil)
				f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "res-1", 2).Return(model.ErrStaleReservation)
			},
			wantErr: model.ErrStaleReservation,
		},
		{
			name: "store unavailable on write",
			req:  dto.UpdateReservationRequest{Status: int(model.StatusCancelled)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(model.StatusPending, nil, 2), nil)
				f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "res-1", 2).Return(errors.New("broken pipe"))
			},
			wantErr: failure.StoreUnavailable,
		},
		{
			name: "unknown reservation",
			req:  dto.UpdateReservationRequest{Notes: "x"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)
			},
			wantErr: model.ErrReservationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, constant.ContextStaff)
			err := f.svc.Update(ctx, tt.req, "res-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReservationService_Update_ReleaseThenReconfirm(t *testing.T) {
	f := newFixture(t)
	booked := time.Date(2031, 3, 1, 18, 0, 0, 0, timezone.GetLocation())

	confirmed := model.Reservation{
		ID: "res-1", GuestCount: 2, DatetimeBooked: booked, Duration: 2,
		Status: model.StatusConfirmed, TableAssigned: tableID(2), Version: 1,
	}
	released := confirmed
	released.Status = model.StatusPending
	released.Version = 2

	// res-2 took the table for the same evening while res-1 was pending.
	taken := model.Reservation{
		ID: "res-2", GuestCount: 2, DatetimeBooked: booked, Duration: 2,
		Status: model.StatusConfirmed, TableAssigned: tableID(2), Version: 2,
	}

	gomock.InOrder(
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil),
		f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "res-1", 1).Return(nil),
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(released, nil),
	)
	f.runTx()
	f.tables.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(table.Table{ID: "t-uuid", TableID: 2, Capacity: 4}, nil)
	f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Reservation{taken}, nil)
	f.afterWrite()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, constant.ContextStaff)

	err := f.svc.Update(ctx, dto.UpdateReservationRequest{Status: int(model.StatusPending)}, "res-1")
	assert.NoError(t, err)

	err = f.svc.Update(ctx, dto.UpdateReservationRequest{Status: int(model.StatusConfirmed)}, "res-1")
	assert.ErrorIs(t, err, assignment.ErrTableAlreadyAssigned)

	time.Sleep(10 * time.Millisecond)
}
