package httpapp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/sonicvault/internal/app"
	"github.com/cesargomez89/sonicvault/internal/enrich"
	"github.com/cesargomez89/sonicvault/internal/http/dto"
	"github.com/cesargomez89/sonicvault/internal/library"
	"github.com/cesargomez89/sonicvault/internal/logger"
)

const maxImportBytes = 5 << 20

type Handler struct {
	Catalog  *app.CatalogService
	Settings *app.SettingsService
	Logger   *logger.Logger
}

func NewHandler(catalog *app.CatalogService, settings *app.SettingsService, log *logger.Logger) *Handler {
	return &Handler{
		Catalog:  catalog,
		Settings: settings,
		Logger:   log.WithComponent("http"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/albums", h.ListAlbums)
		r.Post("/albums", h.CreateAlbum)
		r.Get("/albums/{id}", h.GetAlbum)
		r.Patch("/albums/{id}", h.UpdateAlbum)
		r.Delete("/albums/{id}", h.DeleteAlbum)

		r.Get("/view", h.GetView)
		r.Put("/view/filter", h.SetFilter)
		r.Post("/view/sort/{field}", h.ToggleSort)

		r.Get("/selection", h.GetSelection)
		r.Put("/selection", h.SetSelection)
		r.Delete("/selection", h.ClearSelection)

		r.Get("/filters", h.FilterOptions)
		r.Get("/stats", h.Stats)

		r.Post("/import", h.Import)

		r.Post("/enrich", h.StartEnrich)
		r.Get("/enrich/status", h.EnrichStatus)
		r.Post("/enrich/cancel", h.CancelEnrich)

		r.Get("/settings/lastfm-key", h.GetLastFMKey)
		r.Put("/settings/lastfm-key", h.SetLastFMKey)

		r.Post("/assistant/ask", h.Ask)
		r.Post("/assistant/parse", h.ParseAlbum)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

func (h *Handler) writeValidation(w http.ResponseWriter, errs []dto.ValidationError) {
	h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Error:  dto.ToResponse(errs),
		Fields: dto.ToMap(errs),
	})
}

// handleError maps service errors onto status codes.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, library.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, library.ErrDuplicate):
		h.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, app.ErrConfirmationRequired):
		h.writeError(w, http.StatusPreconditionRequired, "deletion must be confirmed with confirm=true")
	case errors.Is(err, enrich.ErrBusy):
		h.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, enrich.ErrClosed):
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.Logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
