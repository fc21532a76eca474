package model_test

import (
	"testing"

	"tableside/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsOccupying(t *testing.T) {
	want := map[model.Status]bool{
		model.StatusPending:   false,
		model.StatusConfirmed: true,
		model.StatusSeated:    true,
		model.StatusCompleted: false,
		model.StatusCancelled: false,
	}

	for status, occupying := range want {
		assert.Equal(t, occupying, status.IsOccupying(), status.String())
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from model.Status
		to   model.Status
		want bool
	}{
		{from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{from: model.StatusPending, to: model.StatusCancelled, want: true},
		{from: model.StatusPending, to: model.StatusSeated, want: false},
		{from: model.StatusConfirmed, to: model.StatusSeated, want: true},
		{from: model.StatusConfirmed, to: model.StatusPending, want: true},
		{from: model.StatusConfirmed, to: model.StatusCompleted, want: false},
		{from: model.StatusSeated, to: model.StatusCompleted, want: true},
		{from: model.StatusSeated, to: model.StatusCancelled, want: true},
		{from: model.StatusSeated, to: model.StatusPending, want: false},
		{from: model.StatusCompleted, to: model.StatusCancelled, want: false},
		{from: model.StatusCancelled, to: model.StatusPending, want: false},
		{from: model.StatusCancelled, to: model.StatusCancelled, want: true},
		{from: model.StatusPending, to: model.Status(9), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusMisc(t *testing.T) {
	assert.True(t, model.StatusCompleted.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.False(t, model.StatusSeated.IsTerminal())

	assert.True(t, model.StatusPending.CanAssign())
	assert.True(t, model.StatusConfirmed.CanAssign())
	assert.False(t, model.StatusSeated.CanAssign())

	assert.False(t, model.Status(0).IsValid())
	assert.Equal(t, "unknown", model.Status(0).String())
	assert.Equal(t, "seated", model.StatusSeated.String())
}
