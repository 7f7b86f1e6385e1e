package classify

import (
	"github.com/ppiankov/typechart/internal/model"
)

// Upper bounds (exclusive) of each classification interval. They sit between
// the multipliers the effectiveness table uses and must move with it.
const (
	ImmuneBelow  = 0.4
	ResistBelow  = 0.9
	NeutralBelow = 1.1
	SuperBelow   = 1.7
)

// Matrix is a read-only N×N table of multipliers, indexed (attacker, defender).
// gonum's mat.Matrix satisfies it.
type Matrix interface {
	Dims() (r, c int)
	At(i, j int) float64
}

// Classify buckets a single multiplier. Values at or above SuperBelow, and NaN,
// are outside the domain of the effectiveness table.
func Classify(multiplier float64) (model.Symbol, error) {
	switch {
	case multiplier < ImmuneBelow:
		return model.Immune, nil
	case multiplier < ResistBelow:
		return model.Resist, nil
	case multiplier < NeutralBelow:
		return model.Neutral, nil
	case multiplier < SuperBelow:
		return model.Super, nil
	}
	return -1, &OutOfDomainError{Value: multiplier, Attacker: -1, Defender: -1}
}

// BuildSymbolicMatrix classifies every entry of m. The matrix must be square
// with one row per registered type. The first failure aborts the build and no
// partial matrix is returned.
func BuildSymbolicMatrix(m Matrix, types []model.Type) (model.SymbolicMatrix, error) {
	r, c := m.Dims()
	if r != c {
		return nil, &DimensionError{What: "matrix columns", Got: c, Want: r}
	}
	if r != len(types) {
		return nil, &DimensionError{What: "matrix rows", Got: r, Want: len(types)}
	}

	symbolic := make(model.SymbolicMatrix, r)
	for i := 0; i < r; i++ {
		row := make([]model.Symbol, c)
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			s, err := Classify(v)
			if err != nil {
				return nil, &OutOfDomainError{Value: v, Attacker: types[i], Defender: types[j]}
			}
			row[j] = s
		}
		symbolic[i] = row
	}

	return symbolic, nil
}
