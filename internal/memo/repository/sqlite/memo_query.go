package sqlite

import (
	"strings"

	repo "voice-memos/internal/memo/repository"
)

const selectColumns = `SELECT name, content, label FROM memos`

// inClause returns "(?, ?, ...)" and the matching args for names.
func (r *implRepository) inClause(names []string) (string, []any) {
	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, n := range names {
		placeholders[i] = "?"
		args[i] = n
	}
	return "(" + strings.Join(placeholders, ", ") + ")", args
}

// buildListQuery builds the full SELECT for ListMemos.
func (r *implRepository) buildListQuery(opt repo.ListMemosOptions) (string, []any) {
	var conditions []string
	var args []any

	if len(opt.Names) > 0 {
		in, inArgs := r.inClause(opt.Names)
		conditions = append(conditions, "name IN "+in)
		args = append(args, inArgs...)
	}
	if opt.Unlabelled {
		conditions = append(conditions, "label IS NULL")
	}

	parts := []string{selectColumns}
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY name ASC")

	return strings.Join(parts, " "), args
}

// dedupe drops repeated names while keeping the first occurrence order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
