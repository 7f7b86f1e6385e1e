package model

import (
	"encoding/json"
	"strings"
)

// SymbolicMatrix is the classified effectiveness table, indexed [attacker][defender]
type SymbolicMatrix [][]Symbol

// At returns the classification of attacker hitting defender
func (m SymbolicMatrix) At(attacker, defender Type) Symbol {
	return m[attacker][defender]
}

// Rows renders each attacking row as a string of letter codes (e.g. "NNNNNRNIR...")
func (m SymbolicMatrix) Rows() []string {
	rows := make([]string, len(m))
	for i, row := range m {
		var b strings.Builder
		for _, s := range row {
			b.WriteByte(s.Letter())
		}
		rows[i] = b.String()
	}
	return rows
}

// MarshalJSON encodes the matrix as its letter-code rows
func (m SymbolicMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Rows())
}

// MatchupChart partitions every type by how hard it hits the chart's type
// (from) and how hard the chart's type hits it (to)
type MatchupChart struct {
	Type    Type
	Buckets [NumSymbols][NumSymbols][]Type // [from][to], ascending type order
}

// NewMatchupChart returns a chart for t with all 16 buckets empty
func NewMatchupChart(t Type) *MatchupChart {
	c := &MatchupChart{Type: t}
	for from := range c.Buckets {
		for to := range c.Buckets[from] {
			c.Buckets[from][to] = []Type{}
		}
	}
	return c
}

// Bucket returns the types that hit this type with from and are hit by it with to
func (c *MatchupChart) Bucket(from, to Symbol) []Type {
	return c.Buckets[from][to]
}

// Locate returns the bucket holding t
func (c *MatchupChart) Locate(t Type) (from, to Symbol, ok bool) {
	for f := range c.Buckets {
		for g := range c.Buckets[f] {
			for _, member := range c.Buckets[f][g] {
				if member == t {
					return Symbol(f), Symbol(g), true
				}
			}
		}
	}
	return 0, 0, false
}

// Size returns the number of entries across all buckets
func (c *MatchupChart) Size() int {
	n := 0
	for f := range c.Buckets {
		for g := range c.Buckets[f] {
			n += len(c.Buckets[f][g])
		}
	}
	return n
}

// BucketKey returns the two-letter name of a bucket, from first (e.g. "NS")
func BucketKey(from, to Symbol) string {
	return string([]byte{from.Letter(), to.Letter()})
}

// chartJSON is the wire form of a MatchupChart
type chartJSON struct {
	Type    Type              `json:"type"`
	Label   string            `json:"label"`
	Abbr    string            `json:"abbr"`
	Buckets map[string][]Type `json:"buckets"`
}

// MarshalJSON encodes the chart with named buckets ("II" through "SS")
func (c *MatchupChart) MarshalJSON() ([]byte, error) {
	out := chartJSON{
		Type:    c.Type,
		Label:   c.Type.Label(),
		Abbr:    c.Type.Abbr(),
		Buckets: make(map[string][]Type, NumSymbols*NumSymbols),
	}
	for _, from := range AllSymbols() {
		for _, to := range AllSymbols() {
			out.Buckets[BucketKey(from, to)] = c.Bucket(from, to)
		}
	}
	return json.Marshal(out)
}
