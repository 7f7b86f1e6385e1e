package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	types := AllTypes()
	require.Len(t, types, 18)
	assert.Equal(t, Normal, types[0])
	assert.Equal(t, Fairy, types[17])

	assert.Equal(t, []string{
		"NORMAL", "FIGHTING", "FLYING", "POISON", "GROUND", "ROCK",
		"BUG", "GHOST", "STEEL", "FIRE", "WATER", "GRASS",
		"ELECTRIC", "PSYCHIC", "ICE", "DRAGON", "DARK", "FAIRY",
	}, TypeNames())
}

func TestTypeMetadata(t *testing.T) {
	tests := []struct {
		t     Type
		name  string
		label string
		abbr  string
		class string
	}{
		{Normal, "NORMAL", "Normal", "NRM", "normal"},
		{Fighting, "FIGHTING", "Fighting", "FTG", "fighting"},
		{Rock, "ROCK", "Rock", "ROCK", "rock"},
		{Ghost, "GHOST", "Ghost", "GHO", "ghost"},
		{Electric, "ELECTRIC", "Electric", "ELEC", "electric"},
		{Fairy, "FAIRY", "Fairy", "FRY", "fairy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.t.Name())
			assert.Equal(t, tt.name, tt.t.String())
			assert.Equal(t, tt.label, tt.t.Label())
			assert.Equal(t, tt.abbr, tt.t.Abbr())
			assert.Equal(t, tt.class, tt.t.Class())
		})
	}
}

func TestParseType(t *testing.T) {
	for _, in := range []string{"PSYCHIC", "psychic", "  Psychic "} {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, Psychic, got)
	}

	_, err := ParseType("SOUND")
	assert.Error(t, err)
}

func TestInvalidType(t *testing.T) {
	bad := Type(42)
	assert.False(t, bad.Valid())
	assert.Equal(t, "Type(42)", bad.Name())

	_, err := bad.MarshalText()
	assert.Error(t, err)
}

func TestTypeText(t *testing.T) {
	text, err := Dragon.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "DRAGON", string(text))

	var back Type
	require.NoError(t, back.UnmarshalText([]byte("dragon")))
	assert.Equal(t, Dragon, back)
}

func TestSymbols(t *testing.T) {
	assert.Equal(t, []Symbol{Immune, Resist, Neutral, Super}, AllSymbols())
	assert.Equal(t, byte('I'), Immune.Letter())
	assert.Equal(t, "super", Super.String())
	assert.Equal(t, "NS", BucketKey(Neutral, Super))

	for _, s := range AllSymbols() {
		parsed, err := ParseSymbol(string(s.Letter()))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseSymbol("X")
	assert.Error(t, err)
	assert.Equal(t, byte('?'), Symbol(9).Letter())
}
