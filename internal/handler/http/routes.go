package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Post("/login", h.login)
		r.Get("/shop-items", h.listItems)
	})

	// routes behind the token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/shop-items", h.createItem)
	})

	// uploaded images, served as-is
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir)))
	router.Get("/uploads/*", fileServer.ServeHTTP)

	return router
}
