package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tableside/config"
	"tableside/infras/otel/mocks"
	reservationMocks "tableside/internal/domains/reservation/mocks"
	reservation "tableside/internal/domains/reservation/model"
	"tableside/internal/domains/schedule/model"
	"tableside/internal/domains/schedule/model/dto"
	"tableside/internal/domains/schedule/service"
	tableMocks "tableside/internal/domains/table/mocks"
	table "tableside/internal/domains/table/model"
	cacheMocks "tableside/shared/cache/mocks"
	"tableside/shared/failure"
	"tableside/shared/timezone"
)

func TestScheduleService_Get(t *testing.T) {
	tableID := 1
	booked := time.Date(2031, 3, 1, 19, 0, 0, 0, timezone.GetLocation())

	tests := []struct {
		name      string
		date      string
		slots     []string
		setupMock func(r *reservationMocks.MockReservation, tb *tableMocks.MockTable, c *cacheMocks.MockRedisCache)
		wantCode  int
		check     func(t *testing.T, res dto.ScheduleResponse)
	}{
		{
			name: "projects the default board",
			date: "2031-03-01",
			setupMock: func(r *reservationMocks.MockReservation, tb *tableMocks.MockTable, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "schedule:get:2031-03-01", gomock.Any()).Return(errors.New("cache miss"))
				tb.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]table.Table{{TableID: 1, Name: "A", Capacity: 4}}, nil)
				r.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]reservation.Reservation{{
					ID: "r1", Name: "Dana", DatetimeBooked: booked, Duration: 2,
					Status: reservation.StatusConfirmed, TableAssigned: &tableID,
				}}, nil)
				c.EXPECT().Save(gomock.Any(), "schedule:get:2031-03-01", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			check: func(t *testing.T, res dto.ScheduleResponse) {
				assert.Equal(t, "2031-03-01", res.Date)
				assert.Len(t, res.Slots, 12)
				assert.Equal(t, model.CellHead, res.Rows[0].Cells[9].Kind)
				assert.Equal(t, model.CellSuppressed, res.Rows[0].Cells[10].Kind)
				assert.Equal(t, model.CellEmpty, res.Rows[0].Cells[11].Kind)
			},
		},
		{
			name:  "configured slots replace the default",
			date:  "2031-03-01",
			slots: []string{"19:00", "19:30", "20:00"},
			setupMock: func(r *reservationMocks.MockReservation, tb *tableMocks.MockTable, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				tb.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]table.Table{{TableID: 1}}, nil)
				r.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]reservation.Reservation{}, nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			check: func(t *testing.T, res dto.ScheduleResponse) {
				assert.Equal(t, []string{"19:00", "19:30", "20:00"}, res.Slots)
				assert.Len(t, res.Rows[0].Cells, 3)
			},
		},
		{
			name: "cached board",
			date: "2031-03-01",
			setupMock: func(_ *reservationMocks.MockReservation, _ *tableMocks.MockTable, c *cacheMocks.MockRedisCache) {
				c.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*dto.ScheduleResponse).Date = "2031-03-01"

						return nil
					})
			},
			check: func(t *testing.T, res dto.ScheduleResponse) {
				assert.Equal(t, "2031-03-01", res.Date)
			},
		},
		{
			name:      "bad date",
			date:      "01-03-2031",
			setupMock: func(_ *reservationMocks.MockReservation, _ *tableMocks.MockTable, _ *cacheMocks.MockRedisCache) {},
			wantCode:  400,
		},
		{
			name: "store unavailable",
			date: "2031-03-01",
			setupMock: func(_ *reservationMocks.MockReservation, tb *tableMocks.MockTable, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				tb.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("too many connections"))
			},
			wantCode: 503,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockReservations := reservationMocks.NewMockReservation(ctrl)
			mockTables := tableMocks.NewMockTable(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)

			cfg := &config.Config{}
			cfg.Cache.TTL = 3600
			cfg.App.Schedule.Slots = tt.slots

			tt.setupMock(mockReservations, mockTables, mockCache)

			svc := service.New(mockReservations, mockTables, cfg, mockCache, mocks.NewOtel())
			res, err := svc.Get(context.Background(), tt.date)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}
