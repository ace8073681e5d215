package sqlite

import (
	"context"
	"database/sql"

	"voice-memos/internal/memo"
	repo "voice-memos/internal/memo/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanMemo(s scanner) (memo.Memo, error) {
	var m memo.Memo
	var label sql.NullString
	if err := s.Scan(&m.Name, &m.Content, &label); err != nil {
		return memo.Memo{}, err
	}
	if label.Valid {
		l := label.String
		m.Label = &l
	}
	return m, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// CreateMemo inserts a new Memo row. Returns ErrAlreadyExists when the name is taken.
func (r *implRepository) CreateMemo(ctx context.Context, opt repo.CreateMemoOptions) (memo.Memo, error) {
	const query = `INSERT INTO memos (name, content, label) VALUES (?, ?, ?) ON CONFLICT(name) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, opt.Name, opt.Content, nullable(opt.Label))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMemo"), err)
		return memo.Memo{}, repo.ErrFailedToInsert
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return memo.Memo{}, repo.ErrAlreadyExists
	}
	return memo.Memo{Name: opt.Name, Content: opt.Content, Label: opt.Label}, nil
}

// GetOneMemo retrieves a single Memo by name.
// Returns zero-value Memo (Name == "") when not found; not-found is not an error.
func (r *implRepository) GetOneMemo(ctx context.Context, name string) (memo.Memo, error) {
	query := selectColumns + ` WHERE name = ? LIMIT 1`

	m, err := scanMemo(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return memo.Memo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneMemo"), err)
		return memo.Memo{}, repo.ErrFailedToGet
	}
	return m, nil
}

// ListMemos returns memos ordered by name ascending.
func (r *implRepository) ListMemos(ctx context.Context, opt repo.ListMemosOptions) ([]memo.Memo, error) {
	query, args := r.buildListQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMemos"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	memos := make([]memo.Memo, 0)
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMemos"), err)
			return nil, repo.ErrFailedToList
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMemos"), err)
		return nil, repo.ErrFailedToList
	}
	return memos, nil
}

// ListNames returns every stored name, ordered ascending.
func (r *implRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM memos ORDER BY name ASC`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNames"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, repo.ErrFailedToList
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListNames"), err)
		return nil, repo.ErrFailedToList
	}
	return names, nil
}

// UpdateContent overwrites the content of one memo. Reports whether a row matched.
func (r *implRepository) UpdateContent(ctx context.Context, opt repo.UpdateContentOptions) (bool, error) {
	const query = `UPDATE memos SET content = ? WHERE name = ?`

	res, err := r.db.ExecContext(ctx, query, opt.Content, opt.Name)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateContent"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

// UpdateLabel sets the label of one memo. Reports whether a row matched.
func (r *implRepository) UpdateLabel(ctx context.Context, opt repo.UpdateLabelOptions) (bool, error) {
	const query = `UPDATE memos SET label = ? WHERE name = ?`

	res, err := r.db.ExecContext(ctx, query, opt.Label, opt.Name)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateLabel"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

// DeleteMemos removes the named rows and returns how many were deleted.
func (r *implRepository) DeleteMemos(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	in, args := r.inClause(names)

	res, err := r.db.ExecContext(ctx, `DELETE FROM memos WHERE name IN `+in, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMemos"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, repo.ErrFailedToDelete
	}
	return n, nil
}

// ReplaceMemos deletes opt.Names and inserts opt.Replacement in one transaction.
func (r *implRepository) ReplaceMemos(ctx context.Context, opt repo.ReplaceMemosOptions) (memo.Memo, error) {
	names := dedupe(opt.Names)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReplaceMemos"), err)
		return memo.Memo{}, repo.ErrFailedToMerge
	}
	defer tx.Rollback()

	in, args := r.inClause(names)
	res, err := tx.ExecContext(ctx, `DELETE FROM memos WHERE name IN `+in, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceMemos"), err)
		return memo.Memo{}, repo.ErrFailedToMerge
	}
	if n, err := res.RowsAffected(); err != nil || n != int64(len(names)) {
		return memo.Memo{}, repo.ErrStaleRecords
	}

	rep := opt.Replacement
	res, err = tx.ExecContext(ctx, `INSERT INTO memos (name, content, label) VALUES (?, ?, ?) ON CONFLICT(name) DO NOTHING`,
		rep.Name, rep.Content, nullable(rep.Label))
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("ReplaceMemos"), err)
		return memo.Memo{}, repo.ErrFailedToMerge
	}
	// The merged name is already taken; rolling back keeps the sources.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return memo.Memo{}, repo.ErrAlreadyExists
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReplaceMemos"), err)
		return memo.Memo{}, repo.ErrFailedToMerge
	}

	return memo.Memo{Name: rep.Name, Content: rep.Content, Label: rep.Label}, nil
}
