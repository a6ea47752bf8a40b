package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTime_UnmarshalJSON(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	for _, input := range []string{`"2024-01-15T10:30:00Z"`, `1705314600000`, `"1705314600000"`} {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(input), &ft), input)
		assert.True(t, want.Equal(ft.ToTime()), input)
	}
}

func TestFlexTime_InBody(t *testing.T) {
	var body CreateItemBody
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Lamp","createdAt":1705314600000}`), &body))
	require.NotNil(t, body.CreatedAt)
	assert.Equal(t, int64(1705314600000), body.CreatedAt.ToTime().UnixMilli())
}

func TestFlexTime_NilToTime(t *testing.T) {
	var ft *FlexTime
	assert.True(t, ft.ToTime().IsZero())
}
