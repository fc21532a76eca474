package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	reservation "tableside/internal/domains/reservation/model"
	"tableside/internal/domains/schedule/model"
	table "tableside/internal/domains/table/model"
	"tableside/shared/constant"
)

var jakarta = time.FixedZone("WIB", 7*60*60)

func at(day, hour, minute int) time.Time {
	return time.Date(2031, 3, day, hour, minute, 0, 0, jakarta)
}

func assigned(id string, start time.Time, duration int, status reservation.Status, tableID int) reservation.Reservation {
	return reservation.Reservation{
		ID:             id,
		Name:           "guest " + id,
		GuestCount:     2,
		DatetimeBooked: start,
		Duration:       duration,
		Status:         status,
		TableAssigned:  &tableID,
	}
}

func kinds(row model.Row) []model.CellKind {
	out := make([]model.CellKind, len(row.Cells))
	for i, cell := range row.Cells {
		out[i] = cell.Kind
	}

	return out
}

func TestProject_HeadAndSuppressed(t *testing.T) {
	tables := []table.Table{{TableID: 1, Name: "T"}}
	reservations := []reservation.Reservation{assigned("r1", at(1, 19, 0), 2, reservation.StatusConfirmed, 1)}

	grid := model.Project(tables, reservations, at(1, 0, 0), constant.DefaultTimeSlots, jakarta)

	assert.Len(t, grid.Rows, 1)

	row := grid.Rows[0]
	assert.Len(t, row.Cells, len(constant.DefaultTimeSlots))

	for j, slot := range constant.DefaultTimeSlots {
		cell := row.Cells[j]

		switch slot {
		case "19:00":
			assert.Equal(t, model.CellHead, cell.Kind)
			assert.Equal(t, 2, cell.Span)
			assert.Equal(t, "r1", cell.ReservationID)
		case "20:00":
			assert.Equal(t, model.CellSuppressed, cell.Kind)
			assert.Equal(t, "r1", cell.ReservationID)
		default:
			assert.Equal(t, model.CellEmpty, cell.Kind, slot)
		}
	}

	assert.Empty(t, grid.Unaligned)
}

func TestProject_Filters(t *testing.T) {
	slots := []string{"18:00", "19:00", "20:00", "21:00"}
	tables := []table.Table{{TableID: 1}, {TableID: 2}}

	tests := []struct {
		name         string
		reservations []reservation.Reservation
		want         [][]model.CellKind
		unaligned    int
	}{
		{
			name:         "other calendar day is ignored",
			reservations: []reservation.Reservation{assigned("r1", at(2, 19, 0), 1, reservation.StatusConfirmed, 1)},
			want: [][]model.CellKind{
				{model.CellEmpty, model.CellEmpty, model.CellEmpty, model.CellEmpty},
				{model.CellEmpty, model.CellEmpty, model.CellEmpty, model.CellEmpty},
			},
		},
		{
			name: "non occupying statuses are ignored",
			reservations: []reservation.Reservation{
				assigned("p", at(1, 18, 0), 1, reservation.StatusPending, 1),
				assigned("c", at(1, 19, 0), 1, reservation.StatusCancelled, 1),
				assigned("d", at(1, 20, 0), 1, reservation.StatusCompleted, 1),
			},
			want: [][]model.CellKind{
				{model.CellEmpty, model.CellEmpty, model.CellEmpty, model.CellEmpty},
				{model.CellEmpty, model.CellEmpty, model.CellEmpty, model.CellEmpty},
			},
		},
		{
			name: "rows only show their own table",
			reservations: []reservation.Reservation{
				assigned("a", at(1, 18, 0), 1, reservation.StatusSeated, 1),
				assigned("b", at(1, 20, 0), 2, reservation.StatusConfirmed, 2),
			},
			want: [][]model.CellKind{
				{model.CellHead, model.CellEmpty, model.CellEmpty, model.CellEmpty},
				{model.CellEmpty, model.CellEmpty, model.CellHead, model.CellSuppressed},
			},
		},
		{
			name:         "misaligned start is reported",
			reservations: []reservation.Reservation{assigned("late", at(1, 19, 30), 1, reservation.StatusConfirmed, 1)},
			want: [][]model.CellKind{
				{model.CellEmpty, model.CellEmpty, model.CellEmpty, model.CellEmpty},
				{model.CellEmpty, model.CellEmpty, model.CellEmpty, model.CellEmpty},
			},
			unaligned: 1,
		},
		{
			name:         "span running past closing is cut by the board",
			reservations: []reservation.Reservation{assigned("long", at(1, 20, 0), 4, reservation.StatusConfirmed, 1)},
			want: [][]model.CellKind{
				{model.CellEmpty, model.CellEmpty, model.CellHead, model.CellSuppressed},
				{model.CellEmpty, model.CellEmpty, model.CellEmpty, model.CellEmpty},
			},
		},
		{
			name: "back to back reservations",
			reservations: []reservation.Reservation{
				assigned("first", at(1, 18, 0), 2, reservation.StatusConfirmed, 1),
				assigned("second", at(1, 20, 0), 1, reservation.StatusConfirmed, 1),
			},
			want: [][]model.CellKind{
				{model.CellHead, model.CellSuppressed, model.CellHead, model.CellEmpty},
				{model.CellEmpty, model.CellEmpty, model.CellEmpty, model.CellEmpty},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := model.Project(tables, tt.reservations, at(1, 12, 0), slots, jakarta)

			for i, row := range grid.Rows {
				assert.Equal(t, tt.want[i], kinds(row), "table %d", row.Table.TableID)
			}

			assert.Len(t, grid.Unaligned, tt.unaligned)
		})
	}
}

func TestProject_DayIsLocal(t *testing.T) {
	// 23:00 UTC on the 28th is 06:00 on the 1st in UTC+7.
	utcStart := time.Date(2031, 2, 28, 23, 0, 0, 0, time.UTC)
	reservations := []reservation.Reservation{assigned("early", utcStart, 1, reservation.StatusConfirmed, 1)}

	grid := model.Project([]table.Table{{TableID: 1}}, reservations, at(1, 0, 0), []string{"06:00", "07:00"}, jakarta)

	assert.Equal(t, []model.CellKind{model.CellHead, model.CellEmpty}, kinds(grid.Rows[0]))
}

func TestSameDay(t *testing.T) {
	assert.True(t, model.SameDay(at(1, 0, 0), at(1, 23, 59), jakarta))
	assert.False(t, model.SameDay(at(1, 23, 59), at(2, 0, 0), jakarta))
	assert.True(t, model.SameDay(time.Date(2031, 2, 28, 18, 0, 0, 0, time.UTC), at(1, 9, 0), jakarta))
}
