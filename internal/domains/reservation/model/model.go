package model

import (
	"time"

	"tableside/shared/failure"
	"tableside/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID             = "id"
	FieldName           = "name"
	FieldPhoneNumber    = "phone_number"
	FieldEmail          = "email"
	FieldGuestCount     = "guest_count"
	FieldDatetimeBooked = "datetime_booked"
	FieldDuration       = "duration"
	FieldStatus         = "status"
	FieldTableAssigned  = "table_assigned"
	FieldArrivalTime    = "arrival_time"
	FieldVersion        = "version"
)

const (
	PaymentUnpaid   = "unpaid"
	PaymentDeposit  = "deposit"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

var (
	ErrReservationNotFound = failure.NotFound("reservation not found")
	ErrIllegalTransition   = failure.Conflict("illegal reservation status transition")
	ErrTableRequired       = failure.Conflict("a table must be assigned before confirming")
	ErrStaleReservation    = failure.Conflict("reservation was changed by someone else, reload and retry")
)

// Reservation is one guest request. TableAssigned is nil until staff assigns a table.
type Reservation struct {
	ID             string     `db:"id"`
	Name           string     `db:"name"`
	PhoneNumber    string     `db:"phone_number"`
	Email          string     `db:"email"`
	GuestCount     int        `db:"guest_count"`
	DatetimeBooked time.Time  `db:"datetime_booked"`
	Duration       int        `db:"duration"`
	SpecialRequest string     `db:"special_request"`
	Status         Status     `db:"status"`
	TableAssigned  *int       `db:"table_assigned"`
	PaymentStatus  string     `db:"payment_status"`
	Notes          string     `db:"notes"`
	ArrivalTime    *time.Time `db:"arrival_time"`
	Version        int        `db:"version"`
	model.Metadata
}

// Interval returns [DatetimeBooked, DatetimeBooked+Duration hours).
func (r Reservation) Interval() Interval {
	return NewInterval(r.DatetimeBooked, r.Duration)
}

func (r Reservation) IsAssignedTo(tableID int) bool {
	return r.TableAssigned != nil && *r.TableAssigned == tableID
}

// Holds reports whether r currently occupies tableID.
func (r Reservation) Holds(tableID int) bool {
	return r.Status.IsOccupying() && r.IsAssignedTo(tableID)
}
