package dto

import (
	"mime/multipart"

	"tableside/internal/domains/table/model"
	"tableside/shared"
	gDto "tableside/shared/dto"
	gModel "tableside/shared/model"
	"tableside/shared/timezone"

	"github.com/google/uuid"
)

type CreateTableRequest struct {
	Name      string                `json:"name"     validate:"required,max=100"`
	Capacity  int                   `json:"capacity" validate:"required,gte=1,lte=50"`
	Location  string                `json:"location" validate:"omitempty,max=100"`
	Photo     *multipart.FileHeader `json:"photo"    validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	PhotoFile multipart.File        `json:"-"`
}

func (c *CreateTableRequest) ToModel(user string, tableID int, photoURL string) model.Table {
	now := timezone.Now()

	return model.Table{
		ID:       uuid.NewString(),
		TableID:  tableID,
		Name:     c.Name,
		Capacity: c.Capacity,
		Location: c.Location,
		PhotoURL: photoURL,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: user,
			UpdatedBy: user,
		},
	}
}

type UpdateTableRequest struct {
	Name      string                `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Capacity  int                   `db:"capacity" json:"capacity" validate:"omitempty,gte=1,lte=50"`
	Location  string                `db:"location" json:"location" validate:"omitempty,max=100"`
	Photo     *multipart.FileHeader `json:"photo"  validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	PhotoFile multipart.File        `json:"-"`
}

// ToFields returns the columns to write. A new photo URL replaces the stored one.
func (u *UpdateTableRequest) ToFields(user, photoURL string) map[string]any {
	fields := shared.TransformFields(struct {
		Name     string `db:"name"`
		Capacity int    `db:"capacity"`
		Location string `db:"location"`
		PhotoURL string `db:"photo_url"`
	}{u.Name, u.Capacity, u.Location, photoURL}, user)

	return fields
}

type TableResponse struct {
	ID       string `json:"id"`
	TableID  int    `json:"table_id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Location string `json:"location,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(m model.Table) {
	r.ID = m.ID
	r.TableID = m.TableID
	r.Name = m.Name
	r.Capacity = m.Capacity
	r.Location = m.Location
	r.PhotoURL = m.PhotoURL
	r.Metadata.FromModel(m.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTablesResponse) FromModels(models []model.Table, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tables = make([]TableResponse, len(models))
	for i, m := range models {
		r.Tables[i].FromModel(m)
	}
}

// ByTableID matches the table with the given board id.
func ByTableID(tableID int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTableID,
				Value:    tableID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
