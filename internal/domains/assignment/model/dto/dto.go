package dto

import (
	reservation "tableside/internal/domains/reservation/model"
	"tableside/shared/constant"
	"tableside/shared/timezone"
)

type AssignmentResponse struct {
	ReservationID string `json:"reservation_id"`
	TableID       int    `json:"table_id"`
	Status        int    `json:"status"`
	StatusLabel   string `json:"status_label"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Version       int    `json:"version"`
}

func (a *AssignmentResponse) FromModel(m reservation.Reservation, tableID int) {
	interval := m.Interval()

	a.ReservationID = m.ID
	a.TableID = tableID
	a.Status = int(m.Status)
	a.StatusLabel = m.Status.String()
	a.Start = timezone.Format(interval.Start, constant.DateFormat)
	a.End = timezone.Format(interval.End, constant.DateFormat)
	a.Version = m.Version
}
