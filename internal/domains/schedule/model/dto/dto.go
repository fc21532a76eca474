package dto

import (
	"tableside/internal/domains/schedule/model"
	"tableside/shared/constant"
	"tableside/shared/timezone"
)

type GetScheduleRequest struct {
	Date string `json:"date" validate:"required,day" example:"2025-03-01"`
}

type CellResponse struct {
	Kind          model.CellKind `json:"kind"`
	ReservationID string         `json:"reservation_id,omitempty"`
	Name          string         `json:"name,omitempty"`
	GuestCount    int            `json:"guest_count,omitempty"`
	StatusLabel   string         `json:"status_label,omitempty"`
	Span          int            `json:"span,omitempty"`
}

type RowResponse struct {
	TableID  int            `json:"table_id"`
	Name     string         `json:"name"`
	Capacity int            `json:"capacity"`
	Cells    []CellResponse `json:"cells"`
}

type UnalignedResponse struct {
	ReservationID string `json:"reservation_id"`
	Name          string `json:"name"`
	TableID       int    `json:"table_id"`
	Start         string `json:"start"`
	Duration      int    `json:"duration"`
}

type ScheduleResponse struct {
	Date      string              `json:"date"`
	Slots     []string            `json:"slots"`
	Rows      []RowResponse       `json:"rows"`
	Unaligned []UnalignedResponse `json:"unaligned"`
}

func (s *ScheduleResponse) FromModel(grid model.Grid) {
	s.Date = grid.Day.Format(constant.DayFormat)
	s.Slots = grid.Slots

	s.Rows = make([]RowResponse, len(grid.Rows))
	for i, row := range grid.Rows {
		cells := make([]CellResponse, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = CellResponse{
				Kind:          cell.Kind,
				ReservationID: cell.ReservationID,
				Name:          cell.Name,
				GuestCount:    cell.GuestCount,
				Span:          cell.Span,
			}

			if cell.Kind == model.CellHead {
				cells[j].StatusLabel = cell.Status.String()
			}
		}

		s.Rows[i] = RowResponse{
			TableID:  row.Table.TableID,
			Name:     row.Table.Name,
			Capacity: row.Table.Capacity,
			Cells:    cells,
		}
	}

	s.Unaligned = make([]UnalignedResponse, len(grid.Unaligned))
	for i, res := range grid.Unaligned {
		s.Unaligned[i] = UnalignedResponse{
			ReservationID: res.ID,
			Name:          res.Name,
			Start:         timezone.Format(res.DatetimeBooked, constant.DateFormat),
			Duration:      res.Duration,
		}

		if res.TableAssigned != nil {
			s.Unaligned[i].TableID = *res.TableAssigned
		}
	}
}
