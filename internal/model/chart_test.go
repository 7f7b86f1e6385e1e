package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatchupChart_EmptyBuckets(t *testing.T) {
	c := NewMatchupChart(Fire)
	assert.Equal(t, Fire, c.Type)
	assert.Equal(t, 0, c.Size())

	for _, from := range AllSymbols() {
		for _, to := range AllSymbols() {
			assert.NotNil(t, c.Bucket(from, to))
			assert.Empty(t, c.Bucket(from, to))
		}
	}

	_, _, ok := c.Locate(Water)
	assert.False(t, ok)
}

func TestMatchupChart_JSON(t *testing.T) {
	c := NewMatchupChart(Fire)
	c.Buckets[Super][Resist] = append(c.Buckets[Super][Resist], Water, Rock)
	c.Buckets[Resist][Resist] = append(c.Buckets[Resist][Resist], Fire)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded struct {
		Type    string              `json:"type"`
		Label   string              `json:"label"`
		Abbr    string              `json:"abbr"`
		Buckets map[string][]string `json:"buckets"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "FIRE", decoded.Type)
	assert.Equal(t, "Fire", decoded.Label)
	assert.Equal(t, "FIRE", decoded.Abbr)
	assert.Len(t, decoded.Buckets, 16)
	assert.Equal(t, []string{"WATER", "ROCK"}, decoded.Buckets["SR"])
	assert.Equal(t, []string{"FIRE"}, decoded.Buckets["RR"])
	assert.Equal(t, []string{}, decoded.Buckets["II"])
}

func TestSymbolicMatrix_Rows(t *testing.T) {
	m := SymbolicMatrix{
		{Neutral, Super},
		{Immune, Resist},
	}
	assert.Equal(t, []string{"NS", "IR"}, m.Rows())
	assert.Equal(t, Immune, m.At(Fighting, Normal))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `["NS","IR"]`, string(data))
}
