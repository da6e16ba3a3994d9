// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mgiordano/bellavista/internal/auth"
	"github.com/mgiordano/bellavista/internal/middleware"
)

// Router wires handlers, authentication, and middleware into the HTTP
// routing tree.
type Router struct {
	handler       *Handler
	authMW        *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates the API router.
func NewRouter(handler *Handler, authMW *auth.Middleware, chiMW *ChiMiddleware) *Router {
	return &Router{
		handler:       handler,
		authMW:        authMW,
		chiMiddleware: chiMW,
	}
}

// chiMiddlewareFunc adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it can be used with r.Use().
func chiMiddlewareFunc(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health and metrics.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/api/health", router.handler.Health)
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public menu reads.
	r.Route("/api/menu", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitRead))
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareFunc(middleware.PrometheusMetrics))

		r.Get("/categories", router.handler.MenuCategories)
		r.Get("/items", router.handler.MenuItems)
		r.With(chiPathValue).Get("/items/{categoryId}", router.handler.MenuItemsByCategory)
	})

	// Public form submissions.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitWrite))
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareFunc(middleware.PrometheusMetrics))

		// Reservations attach the user when a valid session rides along.
		r.With(chiMiddlewareFunc(router.authMW.AuthenticateOptional)).
			Post("/api/reservations", router.handler.CreateReservation)
		r.Post("/api/contact", router.handler.CreateContactMessage)
		r.Post("/api/newsletter", router.handler.SubscribeNewsletter)
	})

	// Authentication.
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitAuth))
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareFunc(middleware.PrometheusMetrics))

		r.Post("/login", router.handler.Login)
		r.With(chiMiddlewareFunc(router.authMW.Authenticate)).Get("/user", router.handler.CurrentUser)
	})

	// Authenticated user routes.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareFunc(middleware.PrometheusMetrics))
		r.Use(chiMiddlewareFunc(router.authMW.Authenticate))

		r.Get("/api/reservations", router.handler.MyReservations)
	})

	// Admin routes. Authenticate establishes identity; each handler
	// enforces the admin flag so non-admins get 403 rather than 401.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareFunc(middleware.PrometheusMetrics))
		r.Use(chiMiddlewareFunc(router.authMW.Authenticate))

		r.Post("/menu/categories", router.handler.CreateMenuCategory)
		r.Post("/menu/items", router.handler.CreateMenuItem)
		r.With(chiPathValue).Put("/menu/items/{id}", router.handler.UpdateMenuItem)
		r.With(chiPathValue).Delete("/menu/items/{id}", router.handler.DeleteMenuItem)

		r.Get("/reservations", router.handler.AdminReservations)
		r.With(chiPathValue).Put("/reservations/{id}", router.handler.UpdateReservation)
		r.With(chiPathValue).Delete("/reservations/{id}", router.handler.DeleteReservation)

		r.Get("/contact", router.handler.ContactMessages)
		r.With(chiPathValue).Put("/contact/{id}/read", router.handler.MarkMessageRead)

		r.Get("/newsletter", router.handler.NewsletterSubscribers)
	})

	// Unmatched API routes get the uniform error body.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})

	return r
}
