package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type identifies one of the fixed type categories by its position in the
// ordered registry
type Type int

const (
	Normal Type = iota
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Steel
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
	Dark
	Fairy
)

// NumTypes is the size of the type registry
const NumTypes = int(Fairy) + 1

// typeInfo holds the display metadata for a type
type typeInfo struct {
	name  string
	abbr  string
	label string
	class string
}

var registry [NumTypes]typeInfo

var byName map[string]Type

func init() {
	names := [NumTypes][2]string{
		{"NORMAL", "NRM"},
		{"FIGHTING", "FTG"},
		{"FLYING", "FLY"},
		{"POISON", "PSN"},
		{"GROUND", "GRD"},
		{"ROCK", "ROCK"},
		{"BUG", "BUG"},
		{"GHOST", "GHO"},
		{"STEEL", "STL"},
		{"FIRE", "FIRE"},
		{"WATER", "WTR"},
		{"GRASS", "GRS"},
		{"ELECTRIC", "ELEC"},
		{"PSYCHIC", "PSY"},
		{"ICE", "ICE"},
		{"DRAGON", "DRG"},
		{"DARK", "DARK"},
		{"FAIRY", "FRY"},
	}

	title := cases.Title(language.English)
	byName = make(map[string]Type, NumTypes)

	for i, n := range names {
		registry[i] = typeInfo{
			name:  n[0],
			abbr:  n[1],
			label: title.String(n[0]),
			class: strings.ToLower(n[0]),
		}
		byName[n[0]] = Type(i)
	}
}

// AllTypes returns the registry in its fixed order
func AllTypes() []Type {
	types := make([]Type, NumTypes)
	for i := range types {
		types[i] = Type(i)
	}
	return types
}

// Valid reports whether t is a registered type
func (t Type) Valid() bool {
	return t >= 0 && int(t) < NumTypes
}

// Name returns the upper-case identifier (e.g. "FIGHTING")
func (t Type) Name() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return registry[t].name
}

// Label returns the title-case display label (e.g. "Fighting")
func (t Type) Label() string {
	if !t.Valid() {
		return t.Name()
	}
	return registry[t].label
}

// Abbr returns the short abbreviation used in compact tables (e.g. "FTG")
func (t Type) Abbr() string {
	if !t.Valid() {
		return t.Name()
	}
	return registry[t].abbr
}

// Class returns the lower-case CSS class name (e.g. "fighting")
func (t Type) Class() string {
	if !t.Valid() {
		return strings.ToLower(t.Name())
	}
	return registry[t].class
}

func (t Type) String() string {
	return t.Name()
}

// MarshalText encodes the type as its name
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid type index %d", int(t))
	}
	return []byte(t.Name()), nil
}

// UnmarshalText decodes a type from its name
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType resolves a type name, ignoring case and surrounding whitespace
func ParseType(name string) (Type, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if t, ok := byName[key]; ok {
		return t, nil
	}
	return -1, fmt.Errorf("unknown type: %q", name)
}

// TypeNames returns the ordered list of upper-case type identifiers
func TypeNames() []string {
	names := make([]string, NumTypes)
	for i := range names {
		names[i] = registry[i].name
	}
	return names
}
