package model

import "fmt"

// Symbol is the bucketed classification of a damage multiplier.
// Severity increases with the numeric value: Immune < Resist < Neutral < Super.
type Symbol int

const (
	Immune  Symbol = iota // immunity or double resistance
	Resist                // not very effective
	Neutral               // regular damage
	Super                 // super effective
)

// NumSymbols is the number of classification symbols
const NumSymbols = int(Super) + 1

var symbolLetters = [NumSymbols]byte{'I', 'R', 'N', 'S'}

var symbolNames = [NumSymbols]string{"immune", "resist", "neutral", "super"}

// AllSymbols returns the symbols in severity order
func AllSymbols() []Symbol {
	return []Symbol{Immune, Resist, Neutral, Super}
}

// Valid reports whether s is one of the four symbols
func (s Symbol) Valid() bool {
	return s >= 0 && int(s) < NumSymbols
}

// Letter returns the single-letter code (I, R, N or S)
func (s Symbol) Letter() byte {
	if !s.Valid() {
		return '?'
	}
	return symbolLetters[s]
}

func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return symbolNames[s]
}

// MarshalText encodes the symbol as its letter code
func (s Symbol) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid symbol %d", int(s))
	}
	return []byte{s.Letter()}, nil
}

// ParseSymbol decodes a letter code
func ParseSymbol(code string) (Symbol, error) {
	if len(code) == 1 {
		for i, l := range symbolLetters {
			if l == code[0] {
				return Symbol(i), nil
			}
		}
	}
	return -1, fmt.Errorf("unknown symbol: %q", code)
}
