package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain date", in: "2024-05-01", want: "2024-05-01"},
		{name: "timestamp suffix is truncated", in: "2024-05-07T10:00:00Z", want: "2024-05-07"},
		{name: "surrounding spaces", in: "  2024-01-02 ", want: "2024-01-02"},
		{name: "empty is zero", in: "", want: ""},
		{name: "garbage", in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_Before(t *testing.T) {
	start := NewDate(2024, time.May, 1)
	end := NewDate(2024, time.May, 7)

	assert.True(t, start.Before(end))
	assert.False(t, end.Before(start))
	assert.False(t, start.Before(start), "equal dates are not before each other")
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		D Date `json:"d"`
	}

	b, err := json.Marshal(wrapper{D: NewDate(2024, time.May, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-05-01"}`, string(b))

	b, err = json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":null}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2023-12-31"}`), &w))
	assert.Equal(t, "2023-12-31", w.D.String())

	require.NoError(t, json.Unmarshal([]byte(`{"d":null}`), &w))
	assert.True(t, w.D.IsZero())
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, time.March, 3, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2024-03-03", d.String())

	require.NoError(t, d.Scan("2024-04-04"))
	assert.Equal(t, "2024-04-04", d.String())

	require.NoError(t, d.Scan([]byte("2024-05-05")))
	assert.Equal(t, "2024-05-05", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Human(t *testing.T) {
	assert.Equal(t, "May 1, 2024", NewDate(2024, time.May, 1).Human())
	assert.Equal(t, "", Date{}.Human())
}
