package httpapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/sonicvault/internal/app"
	"github.com/cesargomez89/sonicvault/internal/assistant"
	"github.com/cesargomez89/sonicvault/internal/domain"
	"github.com/cesargomez89/sonicvault/internal/enrich"
	"github.com/cesargomez89/sonicvault/internal/library"
	"github.com/cesargomez89/sonicvault/internal/logger"
	"github.com/cesargomez89/sonicvault/internal/store"
)

type stubEnricher struct {
	runErr error
}

func (s *stubEnricher) RunAll() (string, error) {
	if s.runErr != nil {
		return "", s.runErr
	}
	return "run-1", nil
}

func (s *stubEnricher) Submit(batch []domain.Album) (int, error) { return len(batch), nil }
func (s *stubEnricher) Cancel() bool                              { return false }
func (s *stubEnricher) Status() enrich.Status                     { return enrich.Status{} }

type stubAssistant struct{}

func (stubAssistant) Ask(ctx context.Context, question string, albums []domain.Album) string {
	return "You own " + strings.Repeat("x", len(albums))
}

func (stubAssistant) ParseAlbum(ctx context.Context, text string) assistant.Draft {
	return assistant.Draft{Artist: "Björk", Title: "Homogenic"}
}

type testServer struct {
	router   chi.Router
	lib      *library.Store
	enricher *stubEnricher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := store.NewSQLiteDB(filepath.Join(t.TempDir(), "http.db"))
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	log := logger.Discard()
	lib := library.NewStore()
	enr := &stubEnricher{}
	catalog := app.NewCatalogService(lib, enr, stubAssistant{}, log)
	settings := app.NewSettingsService(store.NewSettingsRepo(db), "", log)

	r := chi.NewRouter()
	NewHandler(catalog, settings, log).RegisterRoutes(r)
	return &testServer{router: r, lib: lib, enricher: enr}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) seed(t *testing.T, albums ...domain.Album) {
	t.Helper()
	if err := s.lib.AddMany(albums); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestListAlbums_QueryOverrides(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t,
		domain.Album{ID: "a", Artist: "Radiohead", Title: "Kid A", Year: "2000", Rating: domain.Float(5)},
		domain.Album{ID: "b", Artist: "Björk", Title: "Homogenic", Year: "1997", Rating: domain.Float(4)},
		domain.Album{ID: "c", Artist: "Air", Title: "Moon Safari", Year: "1998"},
	)

	rec := srv.do(t, http.MethodGet, "/api/albums", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	got := decodeBody[[]domain.Album](t, rec)
	if len(got) != 3 || got[0].Artist != "Air" {
		t.Fatalf("Expected artist ascending by default, got %+v", got)
	}

	rec = srv.do(t, http.MethodGet, "/api/albums?minRating=4&sort=year&order=desc", "")
	got = decodeBody[[]domain.Album](t, rec)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("Unexpected filtered view: %+v", got)
	}

	// Overrides do not stick to the session.
	rec = srv.do(t, http.MethodGet, "/api/view", "")
	view := decodeBody[viewResponse](t, rec)
	if view.Sort != domain.DefaultSort || view.Filter.MinRating != 0 {
		t.Errorf("Session changed by query overrides: %+v", view)
	}
}

func TestListAlbums_BadQuery(t *testing.T) {
	srv := newTestServer(t)

	for _, target := range []string{
		"/api/albums?sort=color",
		"/api/albums?order=sideways",
		"/api/albums?minRating=lots",
	} {
		if rec := srv.do(t, http.MethodGet, target, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestCreateAndGetAlbum(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/albums", `{"artist":"Radiohead","title":"OK Computer","rating":4.5,"tags":["rock"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[domain.Album](t, rec)
	if created.ID == "" {
		t.Fatal("Expected generated id")
	}

	rec = srv.do(t, http.MethodGet, "/api/albums/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	detail := decodeBody[app.AlbumDetail](t, rec)
	want := "https://open.spotify.com/search/Radiohead%20OK%20Computer"
	if detail.Links.Spotify != want {
		t.Errorf("Spotify link = %q, want %q", detail.Links.Spotify, want)
	}
}

func TestCreateAlbum_Validation(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/albums", `{"title":"x","rating":7}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	resp := decodeBody[struct {
		Fields map[string]string `json:"fields"`
	}](t, rec)
	if resp.Fields["rating"] == "" {
		t.Errorf("Expected rating field error, got %v", resp.Fields)
	}

	if rec := srv.do(t, http.MethodPost, "/api/albums", `{"bogus":1}`); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestUpdateAlbum(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t, domain.Album{ID: "a", Artist: "Radiohead", Title: "Kid A", Rating: domain.Float(3), CoverURL: "https://img/x.jpg"})

	rec := srv.do(t, http.MethodPatch, "/api/albums/a", `{"clear_rating":true,"cover_url":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decodeBody[domain.Album](t, rec)
	if got.Rating != nil {
		t.Errorf("Expected rating cleared, got %v", *got.Rating)
	}
	if got.CoverURL != "https://img/x.jpg" {
		t.Errorf("Cover must not be cleared by an empty value, got %q", got.CoverURL)
	}

	if rec := srv.do(t, http.MethodPatch, "/api/albums/missing", `{"title":"x"}`); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestDeleteAlbum_Confirmation(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t, domain.Album{ID: "a", Artist: "Radiohead", Title: "Kid A"})

	if rec := srv.do(t, http.MethodDelete, "/api/albums/a", ""); rec.Code != http.StatusPreconditionRequired {
		t.Fatalf("Expected 428, got %d", rec.Code)
	}
	if srv.lib.Len() != 1 {
		t.Fatal("Album removed without confirmation")
	}
	if rec := srv.do(t, http.MethodDelete, "/api/albums/a?confirm=true", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}
	if rec := srv.do(t, http.MethodDelete, "/api/albums/a?confirm=true", ""); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second delete, got %d", rec.Code)
	}
}

func TestToggleSort(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/view/sort/artist", "")
	view := decodeBody[viewResponse](t, rec)
	if view.Sort.Order != domain.SortDesc {
		t.Errorf("Expected artist desc after toggling the active field, got %+v", view.Sort)
	}

	rec = srv.do(t, http.MethodPost, "/api/view/sort/rating", "")
	view = decodeBody[viewResponse](t, rec)
	if view.Sort.Field != domain.SortByRating || view.Sort.Order != domain.SortAsc {
		t.Errorf("Expected rating asc, got %+v", view.Sort)
	}

	if rec := srv.do(t, http.MethodPost, "/api/view/sort/mood", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestSetFilter(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t,
		domain.Album{ID: "a", Artist: "Radiohead", Title: "Kid A", Tags: []string{"electronic"}},
		domain.Album{ID: "b", Artist: "Björk", Title: "Homogenic", Tags: []string{"electronic"}},
	)

	rec := srv.do(t, http.MethodPut, "/api/view/filter", `{"search":"kid","tag":"electronic"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	got := decodeBody[[]domain.Album](t, srv.do(t, http.MethodGet, "/api/albums", ""))
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("Expected session filter applied, got %+v", got)
	}
}

func TestSelection(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t, domain.Album{ID: "a", Artist: "Radiohead", Title: "Kid A"})

	if rec := srv.do(t, http.MethodGet, "/api/selection", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 with nothing selected, got %d", rec.Code)
	}
	if rec := srv.do(t, http.MethodPut, "/api/selection", `{"id":"missing"}`); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if rec := srv.do(t, http.MethodPut, "/api/selection", `{"id":"a"}`); rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	detail := decodeBody[app.AlbumDetail](t, srv.do(t, http.MethodGet, "/api/selection", ""))
	if detail.ID != "a" || !detail.Selected {
		t.Errorf("Unexpected selection %+v", detail)
	}
	if rec := srv.do(t, http.MethodDelete, "/api/selection", ""); rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", rec.Code)
	}
}

func TestImport(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/import", "Radiohead\tKid A\t5\tVinyl\t2000\telectronic\nbroken\n")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	res := decodeBody[app.ImportResult](t, rec)
	if res.Imported != 1 || res.Dropped != 1 {
		t.Errorf("Unexpected import result %+v", res)
	}
	if srv.lib.Len() != 1 {
		t.Errorf("Expected 1 album in library, got %d", srv.lib.Len())
	}
}

func TestStartEnrich(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"started", nil, http.StatusAccepted},
		{"nothing to do", enrich.ErrNothingToDo, http.StatusOK},
		{"busy", enrich.ErrBusy, http.StatusConflict},
		{"closed", enrich.ErrClosed, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			srv.enricher.runErr = tt.err
			if rec := srv.do(t, http.MethodPost, "/api/enrich", ""); rec.Code != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestLastFMKeySettings(t *testing.T) {
	srv := newTestServer(t)

	resp := decodeBody[map[string]bool](t, srv.do(t, http.MethodGet, "/api/settings/lastfm-key", ""))
	if resp["configured"] {
		t.Error("Expected no key configured")
	}

	rec := srv.do(t, http.MethodPut, "/api/settings/lastfm-key", `{"key":"abc"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !decodeBody[map[string]bool](t, rec)["configured"] {
		t.Error("Expected key configured after save")
	}
}

func TestAssistantRoutes(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t, domain.Album{ID: "a", Artist: "Radiohead", Title: "Kid A"})

	rec := srv.do(t, http.MethodPost, "/api/assistant/ask", `{"question":"how many?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ans := decodeBody[map[string]string](t, rec)["answer"]; ans != "You own x" {
		t.Errorf("Unexpected answer %q", ans)
	}

	if rec := srv.do(t, http.MethodPost, "/api/assistant/ask", `{"question":""}`); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for blank question, got %d", rec.Code)
	}

	draft := decodeBody[assistant.Draft](t, srv.do(t, http.MethodPost, "/api/assistant/parse", `{"text":"homogenic"}`))
	if draft.Title != "Homogenic" {
		t.Errorf("Unexpected draft %+v", draft)
	}
}

func TestStatsAndFilters(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t,
		domain.Album{ID: "a", Artist: "Radiohead", Title: "Kid A", Year: "2000", Rating: domain.Float(5), Ownership: "Vinyl"},
		domain.Album{ID: "b", Artist: "Björk", Title: "Homogenic", Year: "1997", Ownership: "CD"},
	)

	stats := decodeBody[domain.Stats](t, srv.do(t, http.MethodGet, "/api/stats", ""))
	if stats.Total != 2 || stats.Rated != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	opts := decodeBody[domain.FilterOptions](t, srv.do(t, http.MethodGet, "/api/filters", ""))
	if len(opts.Years) != 2 || opts.Years[0] != "2000" {
		t.Errorf("Unexpected years %v", opts.Years)
	}
}
