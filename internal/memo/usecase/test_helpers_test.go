package usecase

import (
	"context"
	"sort"
	"sync"

	"voice-memos/internal/memo"
	repo "voice-memos/internal/memo/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu   sync.Mutex
	rows map[string]memo.Memo
	fail error
}

func newMemRepo(memos ...memo.Memo) *memRepo {
	r := &memRepo{rows: make(map[string]memo.Memo)}
	for _, m := range memos {
		r.rows[m.Name] = m
	}
	return r
}

func (r *memRepo) CreateMemo(ctx context.Context, opt repo.CreateMemoOptions) (memo.Memo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return memo.Memo{}, r.fail
	}
	if _, ok := r.rows[opt.Name]; ok {
		return memo.Memo{}, repo.ErrAlreadyExists
	}
	m := memo.Memo{Name: opt.Name, Content: opt.Content, Label: opt.Label}
	r.rows[opt.Name] = m
	return m, nil
}

func (r *memRepo) GetOneMemo(ctx context.Context, name string) (memo.Memo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[name], r.fail
}

func (r *memRepo) ListMemos(ctx context.Context, opt repo.ListMemosOptions) ([]memo.Memo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	want := make(map[string]bool)
	for _, n := range opt.Names {
		want[n] = true
	}
	var out []memo.Memo
	for _, m := range r.rows {
		if len(want) > 0 && !want[m.Name] {
			continue
		}
		if opt.Unlabelled && m.Label != nil {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memRepo) ListNames(ctx context.Context) ([]string, error) {
	memos, err := r.ListMemos(ctx, repo.ListMemosOptions{})
	names := make([]string, len(memos))
	for i, m := range memos {
		names[i] = m.Name
	}
	return names, err
}

func (r *memRepo) UpdateContent(ctx context.Context, opt repo.UpdateContentOptions) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.rows[opt.Name]
	if !ok {
		return false, r.fail
	}
	m.Content = opt.Content
	r.rows[opt.Name] = m
	return true, r.fail
}

func (r *memRepo) UpdateLabel(ctx context.Context, opt repo.UpdateLabelOptions) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.rows[opt.Name]
	if !ok {
		return false, r.fail
	}
	l := opt.Label
	m.Label = &l
	r.rows[opt.Name] = m
	return true, r.fail
}

func (r *memRepo) DeleteMemos(ctx context.Context, names []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, name := range names {
		if _, ok := r.rows[name]; ok {
			delete(r.rows, name)
			n++
		}
	}
	return n, r.fail
}

func (r *memRepo) ReplaceMemos(ctx context.Context, opt repo.ReplaceMemosOptions) (memo.Memo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return memo.Memo{}, r.fail
	}
	for _, n := range opt.Names {
		if _, ok := r.rows[n]; !ok {
			return memo.Memo{}, repo.ErrStaleRecords
		}
	}
	for _, n := range opt.Names {
		delete(r.rows, n)
	}
	m := memo.Memo{Name: opt.Replacement.Name, Content: opt.Replacement.Content, Label: opt.Replacement.Label}
	r.rows[m.Name] = m
	return m, nil
}

type startCall struct {
	dir  string
	name string
	args []string
}

type mockExecutor struct {
	starts []startCall
	err    error
}

func (m *mockExecutor) Start(dir string, name string, args ...string) error {
	m.starts = append(m.starts, startCall{dir: dir, name: name, args: args})
	return m.err
}

type mockClipboard struct {
	text string
	err  error
}

func (m *mockClipboard) WriteAll(text string) error {
	m.text = text
	return m.err
}

func strPtr(s string) *string { return &s }
