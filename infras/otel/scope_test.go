package otel_test

import (
	"context"
	"errors"
	"testing"

	"tableside/infras/otel"
	"tableside/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
	}{
		{name: "conflict stays unset", err: failure.Conflict("table is already assigned"), wantStatus: codes.Unset},
		{name: "store failure", err: failure.StoreUnavailable, wantStatus: codes.Error},
		{name: "plain error", err: errors.New("boom"), wantStatus: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

			_, span := provider.Tracer("test").Start(context.Background(), "assign")
			scope := otel.NewScope(span)
			scope.TraceIfError(tt.err)
			scope.End()

			spans := recorder.Ended()
			assert.Len(t, spans, 1)
			assert.Equal(t, tt.wantStatus, spans[0].Status().Code)
			assert.Len(t, spans[0].Events(), 1)
		})
	}
}

func TestScope_TraceIfErrorNil(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "get")
	scope := otel.NewScope(span)
	scope.TraceIfError(nil)
	scope.SetAttributes(map[string]any{"table_id": 3, "guests": int64(4)})
	scope.End()

	spans := recorder.Ended()
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Empty(t, spans[0].Events())
	assert.Len(t, spans[0].Attributes(), 2)
}
