package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

const notePrefix = "- "

// Notes is the ordered list of short notes attached to a memory.
// The dash-prefixed rendering is a display concern only; storage keeps the
// list as is.
type Notes StringList

// ParseNotes turns multi-line text into notes. Each non-blank line becomes
// one note, with a leading "- " removed.
func ParseNotes(text string) Notes {
	notes := Notes{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if line == "" {
			continue
		}
		notes = append(notes, line)
	}
	return notes
}

// Format renders the notes as dash-prefixed lines.
func (n Notes) Format() string {
	lines := make([]string, 0, len(n))
	for _, note := range n {
		lines = append(lines, notePrefix+note)
	}
	return strings.Join(lines, "\n")
}

func (n Notes) MarshalJSON() ([]byte, error) {
	return StringList(n).MarshalJSON()
}

func (n *Notes) UnmarshalJSON(b []byte) error {
	var l StringList
	if err := l.UnmarshalJSON(b); err != nil {
		// legacy rows kept notes as one newline-joined string
		var text string
		if jsonErr := json.Unmarshal(b, &text); jsonErr != nil {
			return err
		}
		*n = ParseNotes(text)
		return nil
	}
	*n = Notes(l)
	return nil
}

// Value implements driver.Valuer.
func (n Notes) Value() (driver.Value, error) {
	return StringList(n).Value()
}

// Scan implements sql.Scanner.
func (n *Notes) Scan(src any) error {
	var l StringList
	if err := l.Scan(src); err != nil {
		switch v := src.(type) {
		case string:
			*n = ParseNotes(v)
			return nil
		case []byte:
			*n = ParseNotes(string(v))
			return nil
		}
		return err
	}
	*n = Notes(l)
	return nil
}
