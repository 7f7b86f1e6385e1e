package chart

import (
	"fmt"

	"github.com/ppiankov/typechart/internal/classify"
	"github.com/ppiankov/typechart/internal/model"
)

// Build returns one matchup chart per type, in the order of types.
//
// For the chart of types[i], every types[j] (including j == i) is appended to
// bucket (from, to) where from = symbolic[j][i] and to = symbolic[i][j]. Each
// chart is a partition of types and bucket contents keep ascending index order.
func Build(types []model.Type, m classify.Matrix, symbolic model.SymbolicMatrix) ([]*model.MatchupChart, error) {
	n := len(types)
	if r, c := m.Dims(); r != n || c != n {
		return nil, &classify.DimensionError{What: "numeric matrix", Got: r, Want: n}
	}
	if len(symbolic) != n {
		return nil, &classify.DimensionError{What: "symbolic matrix", Got: len(symbolic), Want: n}
	}
	for i, row := range symbolic {
		if len(row) != n {
			return nil, &classify.DimensionError{What: "symbolic row " + types[i].Name(), Got: len(row), Want: n}
		}
		for j, s := range row {
			if !s.Valid() {
				return nil, fmt.Errorf("%w: %s -> %s is %v", classify.ErrInvalidSymbol, types[i], types[j], s)
			}
		}
	}

	charts := make([]*model.MatchupChart, n)
	for i := range types {
		charts[i] = buildOne(types, symbolic, i)
	}
	return charts, nil
}

func buildOne(types []model.Type, symbolic model.SymbolicMatrix, i int) *model.MatchupChart {
	c := model.NewMatchupChart(types[i])
	for j := range types {
		to := symbolic[i][j]
		from := symbolic[j][i]
		c.Buckets[from][to] = append(c.Buckets[from][to], types[j])
	}
	return c
}
