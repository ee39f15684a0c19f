package httpapp

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/sonicvault/internal/domain"
	"github.com/cesargomez89/sonicvault/internal/enrich"
	"github.com/cesargomez89/sonicvault/internal/http/dto"
)

// ListAlbums returns the derived view. Query parameters override the
// session filter and sort for this request only.
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	f, s := h.Catalog.Session()
	q := r.URL.Query()

	if q.Has("search") {
		f.Search = strings.TrimSpace(q.Get("search"))
	}
	if q.Has("minRating") {
		v, err := strconv.ParseFloat(q.Get("minRating"), 64)
		if err != nil || v < 0 || v > 5 {
			h.writeError(w, http.StatusBadRequest, "minRating must be a number between 0 and 5")
			return
		}
		f.MinRating = v
	}
	if q.Has("year") {
		f.Year = q.Get("year")
	}
	if q.Has("tag") {
		f.Tag = q.Get("tag")
	}
	if q.Has("sort") {
		field, ok := domain.ParseSortField(q.Get("sort"))
		if !ok {
			h.writeError(w, http.StatusBadRequest, "unknown sort field: "+q.Get("sort"))
			return
		}
		s.Field = field
	}
	if q.Has("order") {
		order, ok := domain.ParseSortOrder(q.Get("order"))
		if !ok {
			h.writeError(w, http.StatusBadRequest, "order must be asc or desc")
			return
		}
		s.Order = order
	}

	h.writeJSON(w, http.StatusOK, h.Catalog.View(f, s))
}

func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req dto.AlbumCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, errs)
		return
	}

	album, err := h.Catalog.Create(req.ToAlbum())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, album)
}

func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	var req dto.AlbumUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, errs)
		return
	}

	album, err := h.Catalog.Update(chi.URLParam(r, "id"), req.ToPatch())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, album)
}

func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if err := h.Catalog.Delete(chi.URLParam(r, "id"), confirmed); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type viewResponse struct {
	Filter domain.Filter `json:"filter"`
	Sort   domain.Sort   `json:"sort"`
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	f, s := h.Catalog.Session()
	h.writeJSON(w, http.StatusOK, viewResponse{Filter: f, Sort: s})
}

func (h *Handler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, errs)
		return
	}

	f := h.Catalog.SetFilter(req.ToFilter())
	_, s := h.Catalog.Session()
	h.writeJSON(w, http.StatusOK, viewResponse{Filter: f, Sort: s})
}

func (h *Handler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	field, ok := domain.ParseSortField(chi.URLParam(r, "field"))
	if !ok {
		h.writeError(w, http.StatusBadRequest, "unknown sort field: "+chi.URLParam(r, "field"))
		return
	}

	s := h.Catalog.ToggleSort(field)
	f, _ := h.Catalog.Session()
	h.writeJSON(w, http.StatusOK, viewResponse{Filter: f, Sort: s})
}

func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	detail, ok := h.Catalog.Selected()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectionRequest
	if err := decodeJSON(r, &req); err != nil || req.ID == "" {
		h.writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	detail, err := h.Catalog.Select(req.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.Catalog.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Catalog.Options())
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Catalog.Stats())
}

// Import takes the pasted rows as the raw request body.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "import is too large")
			return
		}
		h.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	res, err := h.Catalog.Import(string(body))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

type enrichResponse struct {
	Status string `json:"status"`
	RunID  string `json:"run_id,omitempty"`
}

func (h *Handler) StartEnrich(w http.ResponseWriter, r *http.Request) {
	runID, err := h.Catalog.Enrich()
	switch {
	case errors.Is(err, enrich.ErrNothingToDo):
		h.writeJSON(w, http.StatusOK, enrichResponse{Status: string(enrich.OutcomeNothingToDo)})
	case err != nil:
		h.handleError(w, r, err)
	default:
		h.writeJSON(w, http.StatusAccepted, enrichResponse{Status: "started", RunID: runID})
	}
}

func (h *Handler) EnrichStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Catalog.EnrichStatus())
}

type cancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

func (h *Handler) CancelEnrich(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, cancelResponse{Cancelled: h.Catalog.CancelEnrich()})
}

func (h *Handler) GetLastFMKey(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, dto.LastFMKeyResponse{Configured: h.Settings.LastFMKey() != ""})
}

func (h *Handler) SetLastFMKey(w http.ResponseWriter, r *http.Request) {
	var req dto.LastFMKeyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Settings.SetLastFMKey(req.Key); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dto.LastFMKeyResponse{Configured: h.Settings.LastFMKey() != ""})
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req dto.QuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, errs)
		return
	}
	h.writeJSON(w, http.StatusOK, dto.AnswerResponse{Answer: h.Catalog.Ask(r.Context(), req.Question)})
}

func (h *Handler) ParseAlbum(w http.ResponseWriter, r *http.Request) {
	var req dto.ParseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, errs)
		return
	}
	h.writeJSON(w, http.StatusOK, h.Catalog.ParseAlbum(r.Context(), req.Text))
}
