package table_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "tableside/infras/otel/mocks"
	"tableside/internal/domains/table/model/dto"
	"tableside/internal/domains/table/service/mocks"
	"tableside/internal/handlers/table"
	"tableside/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_CreateTable(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		setupMock  func(s *mocks.MockTable)
		wantStatus int
	}{
		{
			name:   "created",
			fields: map[string]string{"name": "Window 2", "capacity": "4", "location": "Patio"},
			setupMock: func(s *mocks.MockTable) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, req dto.CreateTableRequest) (dto.TableResponse, error) {
						assert.Equal(t, "Window 2", req.Name)
						assert.Equal(t, 4, req.Capacity)
						assert.Nil(t, req.Photo)

						return dto.TableResponse{TableID: 7, Name: req.Name, Capacity: req.Capacity}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			fields:     map[string]string{"capacity": "4"},
			setupMock:  func(_ *mocks.MockTable) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "capacity not a number",
			fields:     map[string]string{"name": "Bar 1", "capacity": "four"},
			setupMock:  func(_ *mocks.MockTable) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "lost the id race",
			fields: map[string]string{"name": "Bar 1", "capacity": "2"},
			setupMock: func(s *mocks.MockTable) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.TableResponse{}, failure.Conflict("table id already allocated, retry"))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockTable(ctrl)
			tt.setupMock(svc)

			handler := table.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			body, contentType := multipartBody(t, tt.fields)
			req := httptest.NewRequest(http.MethodPost, "/tables", body)
			req.Header.Set("Content-Type", contentType)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_GetTableByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTable(ctrl)
	svc.EXPECT().Get(gomock.Any(), "12").Return(dto.TableResponse{}, failure.NotFound("table not found"))

	handler := table.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tables/12", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
