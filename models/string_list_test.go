package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_WithTag(t *testing.T) {
	tags := StringList{"beach"}

	tags = tags.WithTag("beach")
	assert.Equal(t, StringList{"beach"}, tags, "duplicate tag must not be added")

	tags = tags.WithTag("Beach")
	assert.Equal(t, StringList{"beach", "Beach"}, tags, "matching is case-sensitive")

	tags = tags.WithTag("   ")
	assert.Equal(t, StringList{"beach", "Beach"}, tags, "blank tag is ignored")
}

func TestStringList_WithoutTag(t *testing.T) {
	tags := StringList{"a", "b", "c"}

	assert.Equal(t, StringList{"a", "c"}, tags.WithoutTag("b"))
	assert.Equal(t, StringList{"a", "b", "c"}, tags.WithoutTag("zzz"), "removing absent tag is a no-op")
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, StringList{"food", "city", "night"}, ParseTags(" food, city ,,night, food"))
	assert.Equal(t, StringList{}, ParseTags(""))
}

func TestStringList_JSONNilIsEmptyArray(t *testing.T) {
	b, err := json.Marshal(struct {
		Tags StringList `json:"tags"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":[]}`, string(b))

	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`null`), &l))
	assert.NotNil(t, l)
	assert.Empty(t, l)
}

func TestStringList_ValueScan(t *testing.T) {
	v, err := StringList{"x", "y"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["x","y"]`, v)

	var l StringList
	require.NoError(t, l.Scan(`["x","y"]`))
	assert.Equal(t, StringList{"x", "y"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)
}

func TestNotes_ParseAndFormat(t *testing.T) {
	notes := ParseNotes("- first\n\n-second\r\n  - third  ")
	assert.Equal(t, Notes{"first", "second", "third"}, notes)
	assert.Equal(t, "- first\n- second\n- third", notes.Format())
}

func TestNotes_UnmarshalLegacyString(t *testing.T) {
	var n Notes
	require.NoError(t, json.Unmarshal([]byte(`"- sunrise\n- swim"`), &n))
	assert.Equal(t, Notes{"sunrise", "swim"}, n)

	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &n))
	assert.Equal(t, Notes{"a", "b"}, n)
}

func TestNotes_ScanLegacyText(t *testing.T) {
	var n Notes
	require.NoError(t, n.Scan("- one\n- two"))
	assert.Equal(t, Notes{"one", "two"}, n)
}
