package model

import (
	"tableside/shared/failure"
	"tableside/shared/model"
)

const (
	TableName  = "dining_tables"
	EntityName = "table"

	FieldID       = "id"
	FieldTableID  = "table_id"
	FieldName     = "name"
	FieldCapacity = "capacity"
	FieldLocation = "location"
	FieldPhotoURL = "photo_url"
)

var (
	ErrTableNotFound = failure.NotFound("table not found")
	ErrTableIDTaken  = failure.Conflict("table id already allocated, retry")
)

// Table is a physical table. TableID is the small integer staff see on the board;
// reservations reference it through table_assigned.
type Table struct {
	ID       string `db:"id"`
	TableID  int    `db:"table_id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	Location string `db:"location"`
	PhotoURL string `db:"photo_url"`
	model.Metadata
}

// NextTableID returns max(TableID)+1, or 1 for an empty floor.
func NextTableID(tables []Table) int {
	highest := 0
	for _, table := range tables {
		highest = max(highest, table.TableID)
	}

	return highest + 1
}

func (t Table) Fits(guests int) bool {
	return guests <= t.Capacity
}
