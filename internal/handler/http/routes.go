// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	router.Get("/version", h.getServerVersion)

	router.Route("/rest/v1", func(r chi.Router) {
		r.Get("/{table}", h.selectRows)
		r.Post("/{table}", h.insertRows)
		r.Patch("/{table}", h.updateRow)
		r.Delete("/{table}", h.deleteRow)
	})

	router.MethodNotAllowed(methodNotAllowed)
	router.NotFound(notFound)

	return router
}
