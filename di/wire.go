//go:build wireinject
// +build wireinject

package di

import (
	"tableside/config"
	"tableside/infras/jwt"
	"tableside/infras/otel"
	"tableside/infras/postgres"
	"tableside/infras/redis"
	"tableside/infras/s3"
	"tableside/shared/cache"
	"tableside/shared/event"
	"tableside/transport/http"
	"tableside/transport/http/middleware"
	"tableside/transport/http/router"
	"tableside/transport/worker"

	assignmentService "tableside/internal/domains/assignment/service"
	passService "tableside/internal/domains/pass/service"
	reservationRepository "tableside/internal/domains/reservation/repository"
	reservationService "tableside/internal/domains/reservation/service"
	scheduleService "tableside/internal/domains/schedule/service"
	tableRepository "tableside/internal/domains/table/repository"
	tableService "tableside/internal/domains/table/service"
	assignmentHandler "tableside/internal/handlers/assignment"
	passHandler "tableside/internal/handlers/pass"
	reservationHandler "tableside/internal/handlers/reservation"
	scheduleHandler "tableside/internal/handlers/schedule"
	tableHandler "tableside/internal/handlers/table"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
	wire.Struct(new(router.Middlewares), "*"),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewBus,
	wire.Bind(new(event.Publisher), new(event.Bus)),
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	tableDomain,
	assignmentService.New,
	scheduleService.New,
	passService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	tableHandler.New,
	assignmentHandler.New,
	scheduleHandler.New,
	passHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		otel.New,
		redis.New,
		cache.NewRedisCache,
		event.NewBus,
		worker.New,
	)

	return &worker.Worker{}
}
