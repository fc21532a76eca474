package model

import (
	reservation "tableside/internal/domains/reservation/model"
	table "tableside/internal/domains/table/model"
	"tableside/shared/failure"
)

var (
	ErrCapacityExceeded     = failure.UnprocessableEntity("party is larger than the table capacity")
	ErrTableAlreadyAssigned = failure.Conflict("table is already assigned for an overlapping time")
)

// Check decides whether res may be seated at t, given holders: the reservations read for t.
// It runs the status check, then capacity, then overlap. Holders that are not occupying,
// are on another table, or are res itself never conflict.
func Check(res reservation.Reservation, t table.Table, holders []reservation.Reservation) error {
	if !res.Status.CanAssign() {
		return reservation.ErrIllegalTransition
	}

	if !t.Fits(res.GuestCount) {
		return ErrCapacityExceeded
	}

	if Conflict(res, t.TableID, holders) != nil {
		return ErrTableAlreadyAssigned
	}

	return nil
}

// Conflict returns the first holder of tableID whose interval overlaps res, or nil.
func Conflict(res reservation.Reservation, tableID int, holders []reservation.Reservation) *reservation.Reservation {
	candidate := res.Interval()

	for i := range holders {
		holder := holders[i]
		if holder.ID == res.ID || !holder.Holds(tableID) {
			continue
		}

		if candidate.Overlaps(holder.Interval()) {
			return &holders[i]
		}
	}

	return nil
}
