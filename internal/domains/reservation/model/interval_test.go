package model_test

import (
	"testing"
	"time"

	"tableside/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 1, hour, minute, 0, 0, time.UTC)
}

func TestReservationInterval(t *testing.T) {
	r := model.Reservation{DatetimeBooked: at(19, 0), Duration: 2}

	interval := r.Interval()

	assert.Equal(t, at(19, 0), interval.Start)
	assert.Equal(t, at(21, 0), interval.End)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    model.Interval
		b    model.Interval
		want bool
	}{
		{name: "adjacent windows do not overlap", a: model.NewInterval(at(10, 0), 1), b: model.NewInterval(at(11, 0), 1), want: false},
		{name: "partial overlap", a: model.NewInterval(at(18, 0), 2), b: model.NewInterval(at(19, 0), 2), want: true},
		{name: "back to back after hold", a: model.NewInterval(at(18, 0), 2), b: model.NewInterval(at(20, 0), 1), want: false},
		{name: "containment", a: model.NewInterval(at(12, 0), 4), b: model.NewInterval(at(13, 0), 1), want: true},
		{name: "disjoint", a: model.NewInterval(at(10, 0), 1), b: model.NewInterval(at(15, 0), 1), want: false},
		{name: "off-slot start inside window", a: model.NewInterval(at(19, 0), 1), b: model.NewInterval(at(19, 30), 1), want: true},
		{name: "same window", a: model.NewInterval(at(19, 0), 1), b: model.NewInterval(at(19, 0), 1), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestIntervalOverlapsItself(t *testing.T) {
	for hours := 1; hours <= 6; hours++ {
		interval := model.NewInterval(at(10, 0), hours)
		assert.True(t, interval.Overlaps(interval))
	}
}

func TestIntervalOverlapsAcrossZones(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	utc := model.NewInterval(at(12, 0), 1)
	local := model.NewInterval(time.Date(2025, time.March, 1, 19, 30, 0, 0, jakarta), 1)

	assert.True(t, utc.Overlaps(local))
}

func TestIntervalContains(t *testing.T) {
	interval := model.NewInterval(at(19, 0), 2)

	assert.True(t, interval.Contains(at(19, 0)))
	assert.True(t, interval.Contains(at(20, 59)))
	assert.False(t, interval.Contains(at(21, 0)))
	assert.False(t, interval.Contains(at(18, 59)))
}

func TestReservationHolds(t *testing.T) {
	table := 4
	other := 5

	tests := []struct {
		name   string
		status model.Status
		table  *int
		want   bool
	}{
		{name: "confirmed on table", status: model.StatusConfirmed, table: &table, want: true},
		{name: "seated on table", status: model.StatusSeated, table: &table, want: true},
		{name: "cancelled on table", status: model.StatusCancelled, table: &table, want: false},
		{name: "pending on table", status: model.StatusPending, table: &table, want: false},
		{name: "confirmed elsewhere", status: model.StatusConfirmed, table: &other, want: false},
		{name: "unassigned", status: model.StatusConfirmed, table: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.Reservation{Status: tt.status, TableAssigned: tt.table}
			assert.Equal(t, tt.want, r.Holds(table))
		})
	}
}
