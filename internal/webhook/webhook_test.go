package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mavwarf/mkicons/internal/assets"
	"github.com/Mavwarf/mkicons/internal/config"
	"github.com/Mavwarf/mkicons/internal/icon"
	"github.com/Mavwarf/mkicons/internal/notice"
)

func TestAnnouncePostsNotice(t *testing.T) {
	var got notice.Notice
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(204)
	}))
	defer srv.Close()

	results := []assets.Result{{Name: "favicon.ico", Size: 32, Format: icon.ICO, Bytes: 300, SHA256: "ff"}}
	if err := Announce(config.Webhook{URL: srv.URL}, "/srv/public", results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("content-type = %q, want application/json", gotContentType)
	}
	if got.Event != notice.Event || got.Dir != "/srv/public" || len(got.Files) != 1 || got.Files[0].Name != "favicon.ico" {
		t.Errorf("notice = %+v", got)
	}
}

func TestSendCustomHeaders(t *testing.T) {
	t.Setenv("TEST_WEBHOOK_TOKEN", "secret123")

	var gotAuth string
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	headers := map[string]string{
		"Authorization": "Bearer $TEST_WEBHOOK_TOKEN",
		"Content-Type":  "application/vnd.icons+json",
	}
	if err := Send(srv.URL, `{}`, headers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret123")
	}
	if gotContentType != "application/vnd.icons+json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		io.WriteString(w, "internal server error")
	}))
	defer srv.Close()

	err := Send(srv.URL, "{}", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "internal server error") {
		t.Errorf("error should contain status and body snippet: %v", err)
	}
}

func TestSendBadURL(t *testing.T) {
	if err := Send("://bad", "{}", nil); err == nil {
		t.Fatal("expected error for malformed URL")
	}
}
