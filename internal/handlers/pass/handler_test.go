package pass_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "tableside/infras/otel/mocks"
	"tableside/internal/domains/pass/model/dto"
	"tableside/internal/domains/pass/service"
	"tableside/internal/domains/pass/service/mocks"
	"tableside/internal/handlers/pass"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetPass(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(s *mocks.MockPass)
		wantStatus int
		wantError  string
	}{
		{
			name: "valid pass",
			setupMock: func(s *mocks.MockPass) {
				s.EXPECT().Get(gomock.Any(), "tok").Return(dto.PassResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "expired pass",
			setupMock: func(s *mocks.MockPass) {
				s.EXPECT().Get(gomock.Any(), "tok").Return(dto.PassResponse{}, service.ErrExpiredPass)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  service.ErrExpiredPass.Error(),
		},
		{
			name: "tampered pass",
			setupMock: func(s *mocks.MockPass) {
				s.EXPECT().Get(gomock.Any(), "tok").Return(dto.PassResponse{}, service.ErrInvalidPass)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  service.ErrInvalidPass.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockPass(ctrl)
			tt.setupMock(svc)

			handler := pass.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/passes/tok", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantError != "" {
				var body struct {
					Error string `json:"error"`
				}

				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantError, body.Error)
			}
		})
	}
}
