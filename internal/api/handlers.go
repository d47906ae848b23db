package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/evensrud/daybook/internal/apperr"
	"github.com/evensrud/daybook/internal/clock"
	"github.com/evensrud/daybook/internal/index"
	"github.com/evensrud/daybook/internal/vault"
)

// Handler holds API route handlers for one vault.
type Handler struct {
	store *vault.Store
	db    *index.DB
}

// NewHandler creates a new Handler.
func NewHandler(store *vault.Store, db *index.DB) *Handler {
	return &Handler{store: store, db: db}
}

// AddNote handles POST /notes: appends one entry to the day file.
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("content is required"))
		return
	}

	ts, err := h.store.ResolveTimestamp(req.Date, req.RelativeDays, req.Time, req.TimeFormat)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := h.store.AddNote(req.Content, ts, req.Category); err != nil {
		slog.Error("add note failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, NotesResponse{
		Date:  clock.FormatDate(ts),
		Notes: []NoteRow{{Time: clock.FormatTime(ts), Content: req.Content}},
	})
}

// ListNotes handles GET /notes?date=&relative_days=&category=.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var relative *int
	if v := q.Get("relative_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("relative_days must be an integer"))
			return
		}
		relative = &n
	}

	date, err := h.store.ResolveDate(q.Get("date"), relative)
	if err != nil {
		var pe *apperr.ParseError
		if errors.As(err, &pe) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		slog.Error("resolve date failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	rows, err := h.store.ListNotes(date, q.Get("category"))
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	resp := NotesResponse{Date: clock.FormatDate(date), Notes: []NoteRow{}}
	for _, row := range rows {
		resp.Notes = append(resp.Notes, NoteRow{Time: row.Time, Content: row.Content})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Search handles GET /search?q=&limit=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("q is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := h.db.Search(q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	resp := SearchResponse{Results: []SearchHit{}}
	for _, res := range results {
		resp.Results = append(resp.Results, SearchHit{
			File:    res.FilePath,
			Day:     res.Day,
			Time:    res.Time,
			Snippet: res.Snippet,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
