// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/todolists", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/", h.getLists)
		r.Post("/", h.createList)

		r.Route("/{listID}", func(r chi.Router) {
			r.Get("/", h.getList)
			r.Put("/", h.updateList)
			r.Delete("/", h.deleteList)

			r.Put("/toggle-complete-async", h.toggleCompleteAsync)

			r.Get("/todos", h.getItems)
			r.Post("/todos", h.createItem)
			r.Put("/todos/{itemID}", h.updateItem)
			r.Delete("/todos/{itemID}", h.deleteItem)
		})
	})

	router.Get("/ws/todolists/{listID}", h.watchList)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
