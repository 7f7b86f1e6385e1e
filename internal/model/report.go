package model

// Report is everything the renderer needs to produce a page
type Report struct {
	Title    string          `json:"title"`    // Page heading
	Table    string          `json:"table"`    // Name of the effectiveness table
	Digest   string          `json:"digest"`   // Content digest of the table
	Types    []Type          `json:"types"`    // Registry order
	Symbolic SymbolicMatrix  `json:"symbolic"` // Classified matrix, one letter row per attacker
	Charts   []*MatchupChart `json:"charts"`   // One chart per type, registry order
}

// Chart returns the chart for t, or nil when the report does not cover it
func (r *Report) Chart(t Type) *MatchupChart {
	for _, c := range r.Charts {
		if c.Type == t {
			return c
		}
	}
	return nil
}
