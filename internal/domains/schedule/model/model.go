package model

import (
	"time"

	reservation "tableside/internal/domains/reservation/model"
	table "tableside/internal/domains/table/model"
	"tableside/shared/constant"
)

type CellKind string

const (
	CellEmpty      CellKind = "empty"
	CellHead       CellKind = "head"
	CellSuppressed CellKind = "suppressed"
)

// Cell is one (table, slot) position. A Head spans Span slot columns starting at its own;
// the Suppressed cells after it belong to the same reservation and are not drawn.
type Cell struct {
	Kind          CellKind
	ReservationID string
	Name          string
	GuestCount    int
	Status        reservation.Status
	Span          int
}

type Row struct {
	Table table.Table
	Cells []Cell
}

type Grid struct {
	Day       time.Time
	Slots     []string
	Rows      []Row
	Unaligned []reservation.Reservation
}

type head struct {
	slot int
	res  reservation.Reservation
}

func (h head) covers(slot int) bool {
	return slot > h.slot && slot < h.slot+h.res.Duration
}

// Project lays the occupying reservations of day onto one row per table, in the order given.
// A reservation is placed only when its local start time formats exactly to one of slots;
// the others are returned in Unaligned.
func Project(tables []table.Table, reservations []reservation.Reservation, day time.Time, slots []string, loc *time.Location) Grid {
	grid := Grid{
		Day:   day.In(loc),
		Slots: slots,
		Rows:  make([]Row, len(tables)),
	}

	slotIndex := make(map[string]int, len(slots))
	for i, slot := range slots {
		if _, seen := slotIndex[slot]; !seen {
			slotIndex[slot] = i
		}
	}

	for i, t := range tables {
		row := Row{Table: t, Cells: make([]Cell, len(slots))}
		starts := map[int]reservation.Reservation{}

		for _, res := range reservations {
			if !res.Holds(t.TableID) || !SameDay(res.DatetimeBooked, day, loc) {
				continue
			}

			idx, aligned := slotIndex[res.DatetimeBooked.In(loc).Format(constant.SlotFormat)]
			if !aligned {
				grid.Unaligned = append(grid.Unaligned, res)

				continue
			}

			if _, taken := starts[idx]; !taken {
				starts[idx] = res
			}
		}

		heads := []head{}

		for j := range slots {
			if res, ok := starts[j]; ok {
				row.Cells[j] = Cell{
					Kind:          CellHead,
					ReservationID: res.ID,
					Name:          res.Name,
					GuestCount:    res.GuestCount,
					Status:        res.Status,
					Span:          res.Duration,
				}
				heads = append(heads, head{slot: j, res: res})

				continue
			}

			row.Cells[j] = Cell{Kind: CellEmpty}

			for _, h := range heads {
				if h.covers(j) {
					row.Cells[j] = Cell{Kind: CellSuppressed, ReservationID: h.res.ID}

					break
				}
			}
		}

		grid.Rows[i] = row
	}

	return grid
}

// SameDay compares calendar dates in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	return ay == by && am == bm && ad == bd
}
