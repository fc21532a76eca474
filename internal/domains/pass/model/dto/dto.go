package dto

import (
	"tableside/infras/jwt"
	reservation "tableside/internal/domains/reservation/model"
	"tableside/shared/constant"
	"tableside/shared/timezone"
)

// PassResponse is what a guest sees after scanning their reservation QR code.
// Staff-only fields (notes, payment, contact details) are left out.
type PassResponse struct {
	ReservationID string `json:"reservation_id"`
	Name          string `json:"name"`
	GuestCount    int    `json:"guest_count"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Duration      int    `json:"duration"`
	Status        int    `json:"status"`
	StatusLabel   string `json:"status_label"`
	TableAssigned *int   `json:"table_assigned"`
	ExpiresAt     string `json:"expires_at"`
}

func (p *PassResponse) FromModel(m reservation.Reservation, claims *jwt.PassClaims) {
	p.ReservationID = m.ID
	p.Name = m.Name
	p.GuestCount = m.GuestCount
	p.Date = timezone.Format(m.DatetimeBooked, constant.DayFormat)
	p.Time = timezone.Format(m.DatetimeBooked, constant.SlotFormat)
	p.Duration = m.Duration
	p.Status = int(m.Status)
	p.StatusLabel = m.Status.String()

	if m.Status.IsOccupying() {
		p.TableAssigned = m.TableAssigned
	}

	if claims != nil && claims.ExpiresAt != nil {
		p.ExpiresAt = timezone.Format(claims.ExpiresAt.Time, constant.DateFormat)
	}
}
