package usecase

import (
	"strings"

	"voice-memos/internal/memo"
)

// mergeRows combines rows (already ordered by name) into one memo:
// names joined by ",", contents by a blank line, and the first
// meaningful label, falling back to "unknown".
func mergeRows(rows []memo.Memo) memo.Memo {
	names := make([]string, len(rows))
	contents := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
		contents[i] = r.Content
	}

	label := memo.UnknownLabel
	for _, r := range rows {
		if r.Label != nil && *r.Label != memo.UnknownLabel {
			label = *r.Label
			break
		}
	}

	return memo.Memo{
		Name:    strings.Join(names, ","),
		Content: strings.Join(contents, "\n\n"),
		Label:   &label,
	}
}

// joinContents joins memo contents the same way merge does.
func joinContents(rows []memo.Memo) string {
	contents := make([]string, len(rows))
	for i, r := range rows {
		contents[i] = r.Content
	}
	return strings.Join(contents, "\n\n")
}
