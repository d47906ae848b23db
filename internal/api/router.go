package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/evensrud/daybook/internal/index"
	"github.com/evensrud/daybook/internal/vault"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(store *vault.Store, db *index.DB, authEnabled bool, token string) chi.Router {
	h := NewHandler(store, db)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Post("/notes", h.AddNote)
	r.Get("/notes", h.ListNotes)
	r.Get("/search", h.Search)

	return r
}
