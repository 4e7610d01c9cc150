package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// routes stay flat: a mounted subrouter accepts every method, which
	// would spoil the Allow header of 405 responses
	router.Get("/api/notes", h.listNotes)
	router.Post("/api/notes", h.createNote)

	// bulk operations; static segments win over {id}
	router.Post("/api/notes/lock-all", h.lockAll)
	router.Post("/api/notes/unlock-all", h.unlockAll)
	router.Post("/api/notes/reconcile", h.reconcile)

	router.Get("/api/notes/{id}", h.getNote)
	router.Put("/api/notes/{id}", h.updateNote)
	router.Delete("/api/notes/{id}", h.deleteNote)
	router.Post("/api/notes/{id}/lock", h.lockNote)
	router.Post("/api/notes/{id}/unlock", h.unlockNote)

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
