package dto

import (
	"fmt"
	"time"

	"tableside/infras/jwt"
	"tableside/internal/domains/reservation/model"
	"tableside/shared"
	"tableside/shared/constant"
	gDto "tableside/shared/dto"
	gModel "tableside/shared/model"
	"tableside/shared/timezone"

	"github.com/google/uuid"
)

const DefaultDuration = 1

type CreateReservationRequest struct {
	Name           string `json:"name"            validate:"required,min=2,max=100"`
	PhoneNumber    string `json:"phone_number"    validate:"required,min=6,max=20"`
	Email          string `json:"email"           validate:"omitempty,email"`
	Date           string `json:"date"            validate:"required,day"                 example:"2025-03-01"`
	Time           string `json:"time"            validate:"required,slot"                example:"19:00"`
	GuestCount     int    `json:"guest_count"     validate:"required,gte=1,lte=50"`
	Duration       int    `json:"duration"        validate:"omitempty,gte=1,lte=12"`
	SpecialRequest string `json:"special_request" validate:"omitempty,max=500"`
}

// Start parses Date and Time in the application timezone.
func (c *CreateReservationRequest) Start() (time.Time, error) {
	start, err := timezone.Parse(constant.DateTimeInput, c.Date+" "+c.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reservation date or time: %w", err)
	}

	return start, nil
}

func (c *CreateReservationRequest) ToModel(user string, start time.Time) model.Reservation {
	duration := c.Duration
	if duration == 0 {
		duration = DefaultDuration
	}

	now := timezone.Now()

	return model.Reservation{
		ID:             uuid.NewString(),
		Name:           c.Name,
		PhoneNumber:    c.PhoneNumber,
		Email:          c.Email,
		GuestCount:     c.GuestCount,
		DatetimeBooked: start,
		Duration:       duration,
		SpecialRequest: c.SpecialRequest,
		Status:         model.StatusPending,
		PaymentStatus:  model.PaymentUnpaid,
		Version:        1,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: user,
			UpdatedBy: user,
		},
	}
}

type CreateReservationResponse struct {
	ID            string `json:"id"`
	Status        int    `json:"status"`
	StatusLabel   string `json:"status_label"`
	PassToken     string `json:"pass_token"`
	PassURL       string `json:"pass_url,omitempty"`
	PassExpiresAt string `json:"pass_expires_at"`
}

func (r *CreateReservationResponse) FromModel(m model.Reservation, pass *jwt.Pass) {
	r.ID = m.ID
	r.Status = int(m.Status)
	r.StatusLabel = m.Status.String()

	if pass != nil {
		r.PassToken = pass.Token
		r.PassURL = pass.URL
		r.PassExpiresAt = timezone.Format(pass.ExpiresAt, constant.DateFormat)
	}
}

// UpdateReservationRequest is a staff edit. Zero fields are left untouched.
type UpdateReservationRequest struct {
	Name           string `db:"name"            json:"name"            validate:"omitempty,min=2,max=100"`
	PhoneNumber    string `db:"phone_number"    json:"phone_number"    validate:"omitempty,min=6,max=20"`
	Email          string `db:"email"           json:"email"           validate:"omitempty,email"`
	SpecialRequest string `db:"special_request" json:"special_request" validate:"omitempty,max=500"`
	Notes          string `db:"notes"           json:"notes"           validate:"omitempty,max=1000"`
	PaymentStatus  string `db:"payment_status"  json:"payment_status"  validate:"omitempty,oneof=unpaid deposit paid refunded"`
	Status         int    `db:"status"          json:"status"          validate:"omitempty,oneof=1 2 3 4 5"`
	ArrivalTime    string `json:"arrival_time"    validate:"omitempty,datetime_input" example:"2025-03-01 19:05"`
	Version        int    `json:"version"         validate:"omitempty,gte=1"`
}

// ToFields returns the columns to write, with arrival_time parsed in the application timezone.
func (u *UpdateReservationRequest) ToFields(user string) (map[string]any, error) {
	fields := shared.TransformFields(*u, user)

	if u.ArrivalTime != constant.Empty {
		arrival, err := timezone.Parse(constant.DateTimeInput, u.ArrivalTime)
		if err != nil {
			return nil, fmt.Errorf("invalid arrival time: %w", err)
		}

		fields[model.FieldArrivalTime] = arrival
	}

	return fields, nil
}

type ReservationResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email,omitempty"`
	GuestCount     int    `json:"guest_count"`
	DatetimeBooked string `json:"datetime_booked"`
	EndsAt         string `json:"ends_at"`
	Duration       int    `json:"duration"`
	SpecialRequest string `json:"special_request,omitempty"`
	Status         int    `json:"status"`
	StatusLabel    string `json:"status_label"`
	TableAssigned  *int   `json:"table_assigned"`
	PaymentStatus  string `json:"payment_status,omitempty"`
	Notes          string `json:"notes,omitempty"`
	ArrivalTime    string `json:"arrival_time,omitempty"`
	Version        int    `json:"version"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	interval := m.Interval()

	r.ID = m.ID
	r.Name = m.Name
	r.PhoneNumber = m.PhoneNumber
	r.Email = m.Email
	r.GuestCount = m.GuestCount
	r.DatetimeBooked = timezone.Format(interval.Start, constant.DateFormat)
	r.EndsAt = timezone.Format(interval.End, constant.DateFormat)
	r.Duration = m.Duration
	r.SpecialRequest = m.SpecialRequest
	r.Status = int(m.Status)
	r.StatusLabel = m.Status.String()
	r.TableAssigned = m.TableAssigned
	r.PaymentStatus = m.PaymentStatus
	r.Notes = m.Notes
	r.Version = m.Version

	if m.ArrivalTime != nil {
		r.ArrivalTime = timezone.Format(*m.ArrivalTime, constant.DateFormat)
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, m := range models {
		r.Reservations[i].FromModel(m)
	}
}

// ListFilter holds the staff listing query string.
type ListFilter struct {
	Date    string `validate:"omitempty,day"`
	Status  int    `validate:"omitempty,oneof=1 2 3 4 5"`
	TableID int    `validate:"omitempty,gte=1"`
}

// FilterGroup builds the WHERE clause; the date window is midnight to midnight in loc.
func (f *ListFilter) FilterGroup(loc *time.Location) (gDto.FilterGroup, error) {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if f.Date != constant.Empty {
		day, err := time.ParseInLocation(constant.DayFormat, f.Date, loc)
		if err != nil {
			return group, fmt.Errorf("invalid date: %w", err)
		}

		group.Filters = append(group.Filters, DayWindow(day)...)
	}

	if f.Status != 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    f.Status,
			Table:    model.TableName,
		})
	}

	if f.TableID != 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldTableAssigned,
			Operator: gDto.FilterOperatorEq,
			Value:    f.TableID,
			Table:    model.TableName,
		})
	}

	return group, nil
}

// DayWindow selects reservations starting within the calendar day that begins at day.
func DayWindow(day time.Time) []any {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	return []any{
		gDto.Filter{
			ArgName:  "day_start",
			Field:    model.FieldDatetimeBooked,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    start,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "day_end",
			Field:    model.FieldDatetimeBooked,
			Operator: gDto.FilterOperatorLess,
			Value:    start.AddDate(0, 0, 1),
			Table:    model.TableName,
		},
	}
}

// OccupyingFilter selects the reservations that currently hold tableID.
func OccupyingFilter(tableID int) gDto.FilterGroup {
	statuses := make([]int, len(model.OccupyingStatuses))
	for i, status := range model.OccupyingStatuses {
		statuses[i] = int(status)
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTableAssigned,
				Operator: gDto.FilterOperatorEq,
				Value:    tableID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    statuses,
				Table:    model.TableName,
			},
		},
	}
}
