package table

import (
	"crypto/sha256"
	_ "embed"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"os"

	"github.com/ppiankov/typechart/internal/classify"
	"github.com/ppiankov/typechart/internal/model"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

//go:embed data/pokemon-go.yaml
var defaultTable []byte

// Effectiveness is an immutable N×N multiplier table, indexed [attacker][defender]
type Effectiveness struct {
	name   string
	types  []model.Type
	dense  *mat.Dense
	digest string
}

// New builds a table from one row per attacking type, each row giving the
// multiplier against every defending type in the same order
func New(name string, types []model.Type, rows [][]float64) (*Effectiveness, error) {
	n := len(types)
	if n == 0 {
		return nil, &classify.DimensionError{What: "type list", Got: 0, Want: 1}
	}
	if len(rows) != n {
		return nil, &classify.DimensionError{What: "rows", Got: len(rows), Want: n}
	}

	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, &classify.DimensionError{What: "row " + types[i].Name(), Got: len(row), Want: n}
		}
		data = append(data, row...)
	}

	return &Effectiveness{
		name:   name,
		types:  append([]model.Type(nil), types...),
		dense:  mat.NewDense(n, n, data),
		digest: digest(name, types, data),
	}, nil
}

// Name returns the table's name
func (e *Effectiveness) Name() string {
	return e.name
}

// Types returns the ordered type list the table is indexed by
func (e *Effectiveness) Types() []model.Type {
	return append([]model.Type(nil), e.types...)
}

// Dims returns the table dimensions
func (e *Effectiveness) Dims() (r, c int) {
	return e.dense.Dims()
}

// At returns the multiplier of the i-th type attacking the j-th type
func (e *Effectiveness) At(i, j int) float64 {
	return e.dense.At(i, j)
}

// Multiplier looks up a pair by type
func (e *Effectiveness) Multiplier(attacker, defender model.Type) (float64, error) {
	i, ok := e.index(attacker)
	if !ok {
		return 0, fmt.Errorf("type %s not in table %s", attacker, e.name)
	}
	j, ok := e.index(defender)
	if !ok {
		return 0, fmt.Errorf("type %s not in table %s", defender, e.name)
	}
	return e.dense.At(i, j), nil
}

// Digest returns a hex content hash of the name, the type order and the
// multipliers
func (e *Effectiveness) Digest() string {
	return e.digest
}

func (e *Effectiveness) index(t model.Type) (int, bool) {
	for i, candidate := range e.types {
		if candidate == t {
			return i, true
		}
	}
	return 0, false
}

func digest(name string, types []model.Type, data []float64) string {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(name)))
	h.Write(buf[:])
	h.Write([]byte(name))
	for _, t := range types {
		binary.LittleEndian.PutUint64(buf[:], uint64(t))
		h.Write(buf[:])
	}
	for _, v := range data {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// file is the on-disk form of an effectiveness table
type file struct {
	Name        string               `yaml:"name"`
	Types       []string             `yaml:"types"`
	Multipliers map[string][]float64 `yaml:"multipliers"`
}

// Parse decodes a YAML table. The type list, when present, must match the
// registry order exactly; every registered type needs a row.
func Parse(data []byte) (*Effectiveness, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}

	types := model.AllTypes()

	if len(f.Types) > 0 {
		if len(f.Types) != len(types) {
			return nil, &classify.DimensionError{What: "type list", Got: len(f.Types), Want: len(types)}
		}
		for i, name := range f.Types {
			t, err := model.ParseType(name)
			if err != nil || t != types[i] {
				return nil, fmt.Errorf("%w: type list position %d is %q, want %s",
					classify.ErrDimensionMismatch, i, name, types[i])
			}
		}
	}

	rows := make([][]float64, len(types))
	var seen [model.NumTypes]bool
	for name, row := range f.Multipliers {
		t, err := model.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: multipliers: %v", classify.ErrDimensionMismatch, err)
		}
		if seen[t] {
			return nil, fmt.Errorf("%w: duplicate row for %s", classify.ErrDimensionMismatch, t)
		}
		seen[t] = true
		rows[t] = row
	}
	for i, row := range rows {
		if row == nil {
			return nil, &classify.DimensionError{What: "row " + types[i].Name(), Got: 0, Want: len(types)}
		}
	}

	name := f.Name
	if name == "" {
		name = "unnamed"
	}

	return New(name, types, rows)
}

// Load reads a YAML table from path
func Load(path string) (*Effectiveness, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	e, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}

// Default returns the embedded Pokémon GO table
func Default() (*Effectiveness, error) {
	return Parse(defaultTable)
}
