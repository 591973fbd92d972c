package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationStore_Defaults(t *testing.T) {
	s := NewApplicationStore()
	assert.NotNil(t, s.Applied)
	assert.Empty(t, s.Applied)
	assert.Nil(t, s.LastReset)
}

func TestApplicationStore_AddAndContains(t *testing.T) {
	s := NewApplicationStore()

	assert.False(t, s.Contains("u1"))
	assert.True(t, s.Add("u1"))
	assert.True(t, s.Contains("u1"))

	// Second add is a no-op
	assert.False(t, s.Add("u1"))
	assert.Len(t, s.Applied, 1)
}

func TestApplicationStore_Clear(t *testing.T) {
	s := NewApplicationStore()
	s.Add("u1")
	s.Add("u2")
	s.Add("u3")

	s.Clear()
	assert.Empty(t, s.Applied)
	assert.False(t, s.Contains("u1"))
}

func TestApplicationStore_JSONRoundtrip(t *testing.T) {
	reset := time.Date(2025, 6, 1, 5, 0, 0, 0, time.UTC)
	original := ApplicationStore{
		Applied:   []string{"111", "222", "333"},
		LastReset: &reset,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored ApplicationStore
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.ElementsMatch(t, original.Applied, restored.Applied)
	require.NotNil(t, restored.LastReset)
	assert.True(t, restored.LastReset.Equal(reset))
}

func TestApplicationStore_NullLastReset(t *testing.T) {
	raw := `{"applied":[],"lastReset":null}`
	var s ApplicationStore
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Nil(t, s.LastReset)
	assert.Empty(t, s.Applied)
}
