package repository

// CreateMemoOptions holds parameters for inserting a new Memo.
// Label nil stores NULL.
type CreateMemoOptions struct {
	Name    string
	Content string
	Label   *string
}

// ListMemosOptions holds filter parameters for listing Memos.
// Results are always ordered by name ascending.
type ListMemosOptions struct {
	Names      []string // restrict to these names when non-empty
	Unlabelled bool     // only rows whose label IS NULL
}

type UpdateContentOptions struct {
	Name    string
	Content string
}

type UpdateLabelOptions struct {
	Name  string
	Label string
}

// ReplaceMemosOptions deletes Names and inserts Replacement atomically.
// The replacement is rejected when any of Names no longer exists.
type ReplaceMemosOptions struct {
	Names       []string
	Replacement CreateMemoOptions
}
