package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-memos/internal/memo"
	memoHTTP "voice-memos/internal/memo/delivery/http"
	repo "voice-memos/internal/memo/repository"
	"voice-memos/internal/middleware"
	"voice-memos/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockMemoUseCase struct {
	loadOutput  memo.LoadOutput
	mergeOutput memo.MergeOutput
	err         error

	gotNames []string
	gotLabel memo.SetLabelInput
}

func (m *mockMemoUseCase) Load(ctx context.Context) (memo.LoadOutput, error) {
	return m.loadOutput, m.err
}
func (m *mockMemoUseCase) Kill(ctx context.Context, names []string) error {
	m.gotNames = names
	return m.err
}
func (m *mockMemoUseCase) Merge(ctx context.Context, names []string) (memo.MergeOutput, error) {
	m.gotNames = names
	return m.mergeOutput, m.err
}
func (m *mockMemoUseCase) SetContent(ctx context.Context, input memo.SetContentInput) error {
	return m.err
}
func (m *mockMemoUseCase) SetLabel(ctx context.Context, input memo.SetLabelInput) error {
	m.gotLabel = input
	return m.err
}
func (m *mockMemoUseCase) Open(ctx context.Context, names []string) error {
	m.gotNames = names
	return m.err
}
func (m *mockMemoUseCase) AddToThings(ctx context.Context, names []string) error {
	m.gotNames = names
	return m.err
}
func (m *mockMemoUseCase) Copy(ctx context.Context, names []string) error {
	m.gotNames = names
	return m.err
}

// ── Helpers ────────────────────────────────────────────────────────────────

type envelope struct {
	ErrorCode int               `json:"error_code"`
	Message   string            `json:"message"`
	Data      json.RawMessage   `json:"data"`
	Errors    map[string]string `json:"errors"`
}

func setupRouter(uc memo.UseCase, token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), token, 0)
	h := memoHTTP.New(log.NewNop(), uc)
	memoHTTP.RegisterRoutes(r.Group("/api/v1/memos"), h, mw)
	return r
}

func do(r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func strPtr(s string) *string { return &s }

// ── Tests ──────────────────────────────────────────────────────────────────

func TestLoad(t *testing.T) {
	uc := &mockMemoUseCase{loadOutput: memo.LoadOutput{Memos: []memo.Memo{
		{Name: "a.m4a", Content: "one", Label: strPtr("work")},
		{Name: "b.m4a", Content: "two"},
	}}}
	r := setupRouter(uc, "")

	w, env := do(r, http.MethodGet, "/api/v1/memos", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var data struct {
		Memos []struct {
			Name    string  `json:"name"`
			Content string  `json:"content"`
			Label   *string `json:"label"`
		} `json:"memos"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("bad data: %v", err)
	}
	if len(data.Memos) != 2 || data.Memos[0].Label == nil || *data.Memos[0].Label != "work" {
		t.Errorf("unexpected memos: %+v", data.Memos)
	}
	if data.Memos[1].Label != nil {
		t.Error("unset label should serialise as null")
	}
}

func TestMerge(t *testing.T) {
	t.Run("Merged", func(t *testing.T) {
		uc := &mockMemoUseCase{mergeOutput: memo.MergeOutput{Memo: memo.Memo{
			Name: "a.m4a,b.m4a", Content: "one\n\ntwo", Label: strPtr("unknown"),
		}}}
		r := setupRouter(uc, "")

		w, env := do(r, http.MethodPost, "/api/v1/memos/merge", map[string]any{"names": []string{"a.m4a", "b.m4a"}})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var data struct {
			Merged bool `json:"merged"`
		}
		_ = json.Unmarshal(env.Data, &data)
		if !data.Merged {
			t.Error("expected merged=true")
		}
		if len(uc.gotNames) != 2 {
			t.Errorf("names not forwarded: %v", uc.gotNames)
		}
	})

	t.Run("Conflict", func(t *testing.T) {
		uc := &mockMemoUseCase{err: repo.ErrAlreadyExists}
		r := setupRouter(uc, "")

		w, _ := do(r, http.MethodPost, "/api/v1/memos/merge", map[string]any{"names": []string{"a", "b"}})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   any
		err    error
		want   int
	}{
		{
			name: "Set content on missing memo", method: http.MethodPut, path: "/api/v1/memos/content",
			body: map[string]string{"name": "ghost", "content": "x"},
			err:  fmt.Errorf("%w: ghost", memo.ErrMemoNotFound), want: http.StatusNotFound,
		},
		{
			name: "Invalid label", method: http.MethodPut, path: "/api/v1/memos/label",
			body: map[string]string{"name": "a", "label": "Not Valid"},
			err:  memo.ErrInvalidLabel, want: http.StatusUnprocessableEntity,
		},
		{
			name: "Open on linux", method: http.MethodPost, path: "/api/v1/memos/open",
			body: map[string]any{"names": []string{"a"}},
			err:  memo.ErrUnsupportedPlatform, want: http.StatusNotImplemented,
		},
		{
			name: "Missing audio", method: http.MethodPost, path: "/api/v1/memos/open",
			body: map[string]any{"names": []string{"a"}},
			err:  fmt.Errorf("%w: /x/a", memo.ErrAudioFileMissing), want: http.StatusNotFound,
		},
		{
			name: "Path in audio name", method: http.MethodPost, path: "/api/v1/memos/open",
			body: map[string]any{"names": []string{"../secret.txt"}},
			err:  fmt.Errorf("%w: %q", memo.ErrInvalidName, "../secret.txt"), want: http.StatusBadRequest,
		},
		{
			name: "Things missing", method: http.MethodPost, path: "/api/v1/memos/things",
			body: map[string]any{"names": []string{"a"}},
			err:  memo.ErrThingsNotInstalled, want: http.StatusNotImplemented,
		},
		{
			name: "Empty copy", method: http.MethodPost, path: "/api/v1/memos/copy",
			body: map[string]any{"names": []string{}},
			err:  memo.ErrNoNames, want: http.StatusBadRequest,
		},
		{
			name: "Unexpected failure", method: http.MethodPost, path: "/api/v1/memos/kill",
			body: map[string]any{"names": []string{"a"}},
			err:  fmt.Errorf("disk I/O error"), want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockMemoUseCase{err: tt.err}, "")
			w, env := do(r, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
			if env.ErrorCode == 0 {
				t.Error("expected non-zero error_code")
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	uc := &mockMemoUseCase{}
	r := setupRouter(uc, "")

	w, _ := do(r, http.MethodPost, "/api/v1/memos/kill", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 when names is missing, got %d", w.Code)
	}

	w, env := do(r, http.MethodPut, "/api/v1/memos/label", map[string]string{"name": "a"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 when label is missing, got %d", w.Code)
	}
	if env.Errors["label"] != "required" {
		t.Errorf("expected label listed as required, got %v", env.Errors)
	}

	w, _ = do(r, http.MethodPost, "/api/v1/memos/merge", map[string]any{"names": []string{"a.m4a", " "}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a blank name, got %d", w.Code)
	}
	if uc.gotNames != nil {
		t.Error("use case must not run on a bad request")
	}
}

func TestAuthRequired(t *testing.T) {
	r := setupRouter(&mockMemoUseCase{}, "secret")

	w, _ := do(r, http.MethodGet, "/api/v1/memos", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without bearer token, got %d", w.Code)
	}
}
