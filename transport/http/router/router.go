package router

import (
	"tableside/internal/handlers/assignment"
	"tableside/internal/handlers/pass"
	"tableside/internal/handlers/reservation"
	"tableside/internal/handlers/schedule"
	"tableside/internal/handlers/table"
	"tableside/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Reservation reservation.Handler
	Table       table.Handler
	Assignment  assignment.Handler
	Schedule    schedule.Handler
	Pass        pass.Handler
}

type Middlewares struct {
	App  middleware.AppMiddleware
	Auth middleware.Auth
}

type Router struct {
	DomainHandlers DomainHandlers
	Middlewares    Middlewares
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Group(func(public chi.Router) {
			public.Use(r.Middlewares.Auth.Guest)

			r.DomainHandlers.Reservation.PublicRouter(public, r.Middlewares.App.RateLimit())
			r.DomainHandlers.Pass.Router(public)
		})

		routerGroup.Group(func(staff chi.Router) {
			staff.Use(r.Middlewares.Auth.APIKey)

			r.DomainHandlers.Reservation.Router(staff)
			r.DomainHandlers.Assignment.Router(staff)
			r.DomainHandlers.Table.Router(staff)
			r.DomainHandlers.Schedule.Router(staff)
		})
	})
}

func New(domainHandlers DomainHandlers, middlewares Middlewares) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middlewares:    middlewares,
	}
}
