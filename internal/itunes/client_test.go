package itunes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cesargomez89/sonicvault/internal/httpclient"
)

func newTestClient(url string) *Client {
	return NewClient(url, httpclient.NewClient(nil, time.Second, httpclient.WithRetries(1, 0)))
}

func TestClient_SearchArtwork(t *testing.T) {
	var term, entity, limit string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		term, entity, limit = q.Get("term"), q.Get("entity"), q.Get("limit")
		_, _ = w.Write([]byte(`{"resultCount":1,"results":[{"collectionName":"Souvlaki","artworkUrl100":"https://is1.mzstatic.com/image/thumb/a/100x100bb.jpg"}]}`))
	}))
	defer ts.Close()

	got, err := newTestClient(ts.URL).SearchArtwork(context.Background(), "Slowdive Souvlaki")
	if err != nil {
		t.Fatalf("SearchArtwork failed: %v", err)
	}
	if got != "https://is1.mzstatic.com/image/thumb/a/600x600bb.jpg" {
		t.Errorf("artwork = %q", got)
	}
	if term != "Slowdive Souvlaki" || entity != "album" || limit != "1" {
		t.Errorf("query = term %q entity %q limit %q", term, entity, limit)
	}
}

func TestClient_SearchArtwork_NoUsableResult(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{"no results", http.StatusOK, `{"resultCount":0,"results":[]}`, false},
		{"missing artwork", http.StatusOK, `{"resultCount":1,"results":[{}]}`, false},
		{"malformed artwork", http.StatusOK, `{"resultCount":1,"results":[{"artworkUrl100":"not a url"}]}`, false},
		{"server error", http.StatusInternalServerError, ``, true},
		{"bad json", http.StatusOK, `[`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			got, err := newTestClient(ts.URL).SearchArtwork(context.Background(), "x")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("artwork = %q, want empty", got)
			}
		})
	}
}

func TestUpgradeArtwork(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://x/100x100bb.jpg", "https://x/600x600bb.jpg"},
		{"http://x/60x60bb.jpg", "http://x/60x60bb.jpg"},
		{"", ""},
		{"   ", ""},
		{"ftp://x/100x100bb.jpg", ""},
		{"/relative/100x100bb.jpg", ""},
	}
	for _, tt := range tests {
		if got := UpgradeArtwork(tt.in); got != tt.want {
			t.Errorf("UpgradeArtwork(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
