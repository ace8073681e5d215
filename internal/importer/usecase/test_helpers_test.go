package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"voice-memos/internal/importer"
	repo "voice-memos/internal/memo/repository"
	memoSQLite "voice-memos/internal/memo/repository/sqlite"
	"voice-memos/pkg/llmprovider"
	"voice-memos/pkg/log"
	pkgSQLite "voice-memos/pkg/sqlite"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := pkgSQLite.Connect(context.Background(), pkgSQLite.Config{
		Path: filepath.Join(t.TempDir(), "memos.db"),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return memoSQLite.New(db, log.NewNop())
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// mockTranscriber returns a canned transcript per basename.
type mockTranscriber struct {
	mu       sync.Mutex
	texts    map[string]string
	fail     map[string]bool
	calls    []string
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (m *mockTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	n := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		seen := m.maxSeen.Load()
		if n <= seen || m.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	name := filepath.Base(path)
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()

	if m.fail[name] {
		return "", errors.New("stt unavailable")
	}
	return m.texts[name], nil
}

// mockChat answers with a fixed reply per transcript.
type mockChat struct {
	mu      sync.Mutex
	replies map[string]string
	err     error
	prompts []string
}

func (m *mockChat) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, req.SystemInstruction)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.replies[req.Messages[0].Text]}, nil
}

func newTestUseCase(t *testing.T, tr *mockTranscriber, chat ChatModel, cfg importer.Config) (*implUseCase, repo.Repository) {
	t.Helper()
	r := newTestRepo(t)
	return New(r, log.NewNop(), tr, chat, cfg), r
}
