package whisper

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeAudio(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("fake audio bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid key"}}`))
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("model") != "whisper-1" || r.FormValue("language") != "en" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if _, ok := r.MultipartForm.Value["prompt"]; ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if hdr.Filename != "memo.m4a" || string(data) != "fake audio bytes" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"text":"Buy milk on the way home."}`))
	}))
	defer ts.Close()

	path := writeAudio(t, "memo.m4a")

	t.Run("Success", func(t *testing.T) {
		c, err := New(Config{APIKey: "test-key", BaseURL: ts.URL + "/v1", Language: "en", RequestsPerMinute: 600})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		text, err := c.Transcribe(context.Background(), path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "Buy milk on the way home." {
			t.Errorf("unexpected text %q", text)
		}
	})

	t.Run("API error", func(t *testing.T) {
		c, _ := New(Config{APIKey: "bad", BaseURL: ts.URL + "/v1"})
		_, err := c.Transcribe(context.Background(), path)
		if err == nil || !strings.Contains(err.Error(), "invalid key") {
			t.Errorf("expected API error, got %v", err)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		c, _ := New(Config{APIKey: "test-key", BaseURL: ts.URL + "/v1"})
		if _, err := c.Transcribe(context.Background(), filepath.Join(t.TempDir(), "nope.m4a")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("Cancelled while waiting for limiter", func(t *testing.T) {
		c, _ := New(Config{APIKey: "test-key", BaseURL: ts.URL + "/v1", RequestsPerMinute: 1})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := c.Transcribe(ctx, path); err == nil {
			t.Error("expected context error")
		}
	})
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error without API key")
	}
}
