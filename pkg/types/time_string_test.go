package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	for _, bad := range []string{"9:30", "25:00", "09:60", "0930", ""} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, bad)
	}
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:45")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), next)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrOutOfDay)
}

func TestCompare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("bad").IsAfter("00:00"))
}

func TestNewTimeString(t *testing.T) {
	assert.Equal(t, TimeString("14:05"), NewTimeString(time.Date(2026, 1, 1, 14, 5, 59, 0, time.UTC)))
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Start TimeString `json:"start"`
	}{Start: "10:00"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"10:00"}`, string(data))

	var out struct {
		Start TimeString `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"11:30"}`), &out))
	assert.Equal(t, TimeString("11:30"), out.Start)

	assert.Error(t, json.Unmarshal([]byte(`{"start":"11:3"}`), &out))
}
