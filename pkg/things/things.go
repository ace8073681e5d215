// Package things builds Things 3 "add via JSON" URLs.
//
// See https://culturedcode.com/things/support/articles/2803573/#json
package things

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the URL prefix handled by the Things app.
const Scheme = "things:///json"

// Todo is the attribute set of a to-do item.
type Todo struct {
	Title string  `json:"title"`
	Notes *string `json:"notes"`
}

// Item is one entry of the JSON payload.
type Item struct {
	Type       string `json:"type"`
	Attributes any    `json:"attributes"`
}

// NewTodoItem wraps a Todo as a "to-do" Item.
func NewTodoItem(todo Todo) Item {
	return Item{Type: "to-do", Attributes: todo}
}

// BuildURL returns the things:///json URL adding items, optionally revealing them.
func BuildURL(items []Item, reveal bool) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("things: no items")
	}

	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("things: marshal items: %w", err)
	}

	// Things expects %20 for spaces; QueryEscape produces '+'.
	query := "data=" + escape(string(data))
	if reveal {
		query += "&reveal=true"
	}

	u, err := url.Parse(Scheme)
	if err != nil {
		return "", err
	}
	u.RawQuery = query
	return u.String(), nil
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
