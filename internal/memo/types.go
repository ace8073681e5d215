package memo

import "regexp"

// UnknownLabel is the category used when nothing better is known.
const UnknownLabel = "unknown"

// labelPattern is the only shape a stored label may take.
var labelPattern = regexp.MustCompile(`^[a-z]+$`)

// Memo is one transcribed recording. Name is the audio file basename.
type Memo struct {
	Name    string
	Content string
	Label   *string
}

// LabelOrEmpty returns the label, or "" when unset.
func (m Memo) LabelOrEmpty() string {
	if m.Label == nil {
		return ""
	}
	return *m.Label
}

// ValidLabel reports whether label may be stored.
func ValidLabel(label string) bool {
	return labelPattern.MatchString(label)
}

// --- UseCase Inputs ---

type SetContentInput struct {
	Name    string
	Content string
}

type SetLabelInput struct {
	Name  string
	Label string
}

// --- UseCase Outputs ---

type LoadOutput struct {
	Memos []Memo
}

type MergeOutput struct {
	// Memo is the merged row; zero when the merge was a no-op.
	Memo Memo
}
