package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
	ContextStaff = "staff"
)

type contextKey string

const ContextKeyUserID contextKey = "user_id"

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID      = "id"
	RequestParamTableID = "table_id"
	RequestParamToken   = "token"
	RequestParamDate    = "date"
	RequestMaxMemory    = 10 << 20 // 10 MB
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
	FieldUpdatedBy = "updated_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	DateFormat    = time.RFC3339
	DayFormat     = "2006-01-02"
	SlotFormat    = "15:04"
	DateTimeInput = "2006-01-02 15:04"
)

// DefaultTimeSlots is the schedule board timeline used when APP_SCHEDULE_SLOTS is unset.
var DefaultTimeSlots = []string{
	"10:00", "11:00", "12:00", "13:00", "14:00", "15:00",
	"16:00", "17:00", "18:00", "19:00", "20:00", "21:00",
}

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderAPIKey             = "X-API-Key"
)

const ContentTypeJSON = "application/json"

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	EventDriverKafka    = "kafka"
	EventDriverRabbitMQ = "rabbitmq"
	DefaultEventTopic   = "reservation.events"
)

const (
	CacheReservationGet   = "reservation:get"
	CacheReservationGets  = "reservation:gets"
	CacheReservationCount = "reservation:count"
	CacheTableGet         = "table:get"
	CacheTableGets        = "table:gets"
	CacheTableCount       = "table:count"
	CacheScheduleGet      = "schedule:get"
)

const (
	Asterix = "*"
	Empty   = ""
)
