// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every route of the API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.getAllUsers)
		r.Route("/users/{username}", func(r chi.Router) {
			r.Use(h.ensureCorrectUser)
			r.Get("/", h.getUser)
			r.Get("/to", h.getMessagesTo)
			r.Get("/from", h.getMessagesFrom)
		})

		r.Post("/messages", h.sendMessage)
		r.With(h.ensureMessageParticipant).Get("/messages/{id}", h.getMessage)
		r.With(h.ensureMessageRecipient).Post("/messages/{id}/read", h.markRead)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
