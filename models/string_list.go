package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings. SQL backends keep it as JSON text
// so the same schema works for Postgres and SQLite; the BaaS receives a
// regular JSON array.
//
// A nil list marshals to [] so records never carry null tags.
type StringList []string

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *StringList) UnmarshalJSON(b []byte) error {
	var v []string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		v = []string{}
	}
	*l = v
	return nil
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	b, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		return l.UnmarshalJSON([]byte(v))
	case []byte:
		return l.UnmarshalJSON(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Contains reports whether s is in the list. Matching is exact and
// case-sensitive.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// WithTag returns the list with tag appended. A blank tag or one already
// present leaves the list unchanged.
func (l StringList) WithTag(tag string) StringList {
	tag = strings.TrimSpace(tag)
	if tag == "" || l.Contains(tag) {
		return l
	}
	return append(l, tag)
}

// WithoutTag returns the list without tag. Removing an absent tag is a no-op.
func (l StringList) WithoutTag(tag string) StringList {
	out := make(StringList, 0, len(l))
	for _, v := range l {
		if v != tag {
			out = append(out, v)
		}
	}
	return out
}

// ParseTags splits comma separated input, trims every part, drops empties
// and keeps the first occurrence of duplicates.
func ParseTags(raw string) StringList {
	tags := StringList{}
	for _, part := range strings.Split(raw, ",") {
		tags = tags.WithTag(part)
	}
	return tags
}

// Joined renders the list the way tag inputs show it.
func (l StringList) Joined() string {
	return strings.Join(l, ", ")
}
