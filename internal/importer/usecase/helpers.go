package usecase

import (
	"strings"
	"unicode"
)

const labelSystemPrompt = `You categorise transcripts of personal voice memos.
Reply with exactly one lowercase English word naming the category of the memo, for example "shopping", "work", "idea" or "reminder".
Do not add punctuation, quotes or explanation.`

// buildLabelPrompt appends the allowed categories, if any, to the system prompt.
func buildLabelPrompt(categories []string) string {
	if len(categories) == 0 {
		return labelSystemPrompt
	}
	return labelSystemPrompt + "\nChoose one of: " + strings.Join(categories, ", ") +
		". If none of them fits, reply unknown."
}

// normalizeLabel keeps the first line of a model answer, lowercased and with
// surrounding punctuation or quotes removed.
func normalizeLabel(answer string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(answer), "\n")
	line = strings.ToLower(strings.TrimSpace(line))
	return strings.TrimFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// toParagraphs trims each line of a transcript, collapses inner whitespace
// and separates the non-empty lines with a blank line.
func toParagraphs(text string) string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
