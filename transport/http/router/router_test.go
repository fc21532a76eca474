package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tableside/config"
	otelMocks "tableside/infras/otel/mocks"
	assignmentDto "tableside/internal/domains/assignment/model/dto"
	assignmentMocks "tableside/internal/domains/assignment/service/mocks"
	passDto "tableside/internal/domains/pass/model/dto"
	passMocks "tableside/internal/domains/pass/service/mocks"
	reservationDto "tableside/internal/domains/reservation/model/dto"
	reservationMocks "tableside/internal/domains/reservation/service/mocks"
	scheduleMocks "tableside/internal/domains/schedule/service/mocks"
	tableMocks "tableside/internal/domains/table/service/mocks"
	"tableside/internal/handlers/assignment"
	"tableside/internal/handlers/pass"
	"tableside/internal/handlers/reservation"
	"tableside/internal/handlers/schedule"
	"tableside/internal/handlers/table"
	cacheMocks "tableside/shared/cache/mocks"
	"tableside/shared/constant"
	"tableside/transport/http/middleware"
	"tableside/transport/http/router"
)

const apiKey = "staff-key"

type services struct {
	reservation *reservationMocks.MockReservation
	assignment  *assignmentMocks.MockAssignment
	pass        *passMocks.MockPass
}

func setup(t *testing.T) (http.Handler, services) {
	ctrl := gomock.NewController(t)
	ot := otelMocks.NewOtel()

	svc := services{
		reservation: reservationMocks.NewMockReservation(ctrl),
		assignment:  assignmentMocks.NewMockAssignment(ctrl),
		pass:        passMocks.NewMockPass(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	r := router.New(
		router.DomainHandlers{
			Reservation: reservation.New(svc.reservation, ot),
			Table:       table.New(tableMocks.NewMockTable(ctrl), ot),
			Assignment:  assignment.New(svc.assignment, ot),
			Schedule:    schedule.New(scheduleMocks.NewMockSchedule(ctrl), ot),
			Pass:        pass.New(svc.pass, ot),
		},
		router.Middlewares{
			App:  middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl)),
			Auth: middleware.NewAuthMiddleware(ot, cfg),
		},
	)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux, svc
}

func TestRouter_Access(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		withKey    bool
		setupMock  func(s services)
		wantStatus int
	}{
		{
			name:   "guest request without key",
			method: http.MethodPost,
			path:   "/v1/reservations",
			body:   `{"name":"Ana","phone_number":"0812345678","date":"2031-03-01","time":"19:00","guest_count":2}`,
			setupMock: func(s services) {
				s.reservation.EXPECT().Create(gomock.Any(), gomock.Any()).Return(reservationDto.CreateReservationResponse{ID: "res-1"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "pass lookup without key",
			method: http.MethodGet,
			path:   "/v1/passes/abc.def.ghi",
			setupMock: func(s services) {
				s.pass.EXPECT().Get(gomock.Any(), "abc.def.ghi").Return(passDto.PassResponse{ReservationID: "res-1"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "listing needs key",
			method:     http.MethodGet,
			path:       "/v1/reservations",
			setupMock:  func(_ services) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "listing with key",
			method:  http.MethodGet,
			path:    "/v1/reservations",
			withKey: true,
			setupMock: func(s services) {
				s.reservation.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservationDto.GetReservationsResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "assignment needs key",
			method:     http.MethodPut,
			path:       "/v1/reservations/res-1/table/2",
			setupMock:  func(_ services) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "assignment with key",
			method:  http.MethodPut,
			path:    "/v1/reservations/res-1/table/2",
			withKey: true,
			setupMock: func(s services) {
				s.assignment.EXPECT().Assign(gomock.Any(), "res-1", "2").Return(assignmentDto.AssignmentResponse{ReservationID: "res-1", TableID: 2}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, svc := setup(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.withKey {
				req.Header.Set(constant.RequestHeaderAPIKey, apiKey)
			}

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
