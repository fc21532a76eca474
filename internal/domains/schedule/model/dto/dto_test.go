package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	reservation "tableside/internal/domains/reservation/model"
	"tableside/internal/domains/schedule/model"
	"tableside/internal/domains/schedule/model/dto"
	table "tableside/internal/domains/table/model"
)

func TestScheduleResponse_FromModel(t *testing.T) {
	tableID := 4
	day := time.Date(2031, 3, 1, 0, 0, 0, 0, time.UTC)

	grid := model.Grid{
		Day:   day,
		Slots: []string{"19:00", "20:00"},
		Rows: []model.Row{{
			Table: table.Table{TableID: 4, Name: "Booth", Capacity: 6},
			Cells: []model.Cell{
				{Kind: model.CellHead, ReservationID: "r1", Name: "Dana", GuestCount: 5, Status: reservation.StatusSeated, Span: 2},
				{Kind: model.CellSuppressed, ReservationID: "r1"},
			},
		}},
		Unaligned: []reservation.Reservation{{ID: "r2", Name: "Eka", TableAssigned: &tableID, DatetimeBooked: day.Add(19*time.Hour + 30*time.Minute), Duration: 1}},
	}

	var res dto.ScheduleResponse
	res.FromModel(grid)

	assert.Equal(t, "2031-03-01", res.Date)
	assert.Len(t, res.Rows, 1)
	assert.Equal(t, "Booth", res.Rows[0].Name)
	assert.Equal(t, "seated", res.Rows[0].Cells[0].StatusLabel)
	assert.Equal(t, 2, res.Rows[0].Cells[0].Span)
	assert.Empty(t, res.Rows[0].Cells[1].StatusLabel)
	assert.Len(t, res.Unaligned, 1)
	assert.Equal(t, 4, res.Unaligned[0].TableID)
}
