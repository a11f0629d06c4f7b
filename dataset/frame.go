// Package dataset provides the column-oriented Frame type the analysis
// functions operate on, together with loaders for CSV files and SQL queries.
//
// A Frame is a small, read-mostly stand-in for the slice of a pandas
// DataFrame the original coursework utilities relied on: named columns of a
// single kind (numeric or categorical) with positional row access. Numeric
// columns mark missing values with NaN, categorical columns with the empty
// string, so statistics can skip them the way pandas' skipna default does.
package dataset

import (
	"math"

	"github.com/Josemvg/josemltools/pkg/errors"
)

// Kind identifies the type of a column.
type Kind int

const (
	// Numeric columns hold float64 values; NaN marks a missing cell.
	Numeric Kind = iota
	// Categorical columns hold string labels; "" marks a missing cell.
	Categorical
)

// String returns the kind name used in errors and logs.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Series is a single named column.
type Series struct {
	name    string
	kind    Kind
	floats  []float64
	strings []string
}

// NewNumericSeries creates a numeric column. The slice is used directly,
// not copied.
func NewNumericSeries(name string, values []float64) *Series {
	return &Series{name: name, kind: Numeric, floats: values}
}

// NewCategoricalSeries creates a categorical column. The slice is used
// directly, not copied.
func NewCategoricalSeries(name string, values []string) *Series {
	return &Series{name: name, kind: Categorical, strings: values}
}

// Name returns the column name.
func (s *Series) Name() string { return s.name }

// Kind returns the column kind.
func (s *Series) Kind() Kind { return s.kind }

// Len returns the number of rows in the column.
func (s *Series) Len() int {
	if s.kind == Numeric {
		return len(s.floats)
	}
	return len(s.strings)
}

// Floats returns the underlying numeric values. It errors on categorical
// columns instead of silently coercing.
func (s *Series) Floats() ([]float64, error) {
	if s.kind != Numeric {
		return nil, errors.NewColumnKindError("Series.Floats", s.name, Numeric.String(), s.kind.String())
	}
	return s.floats, nil
}

// Strings returns the underlying categorical labels.
func (s *Series) Strings() ([]string, error) {
	if s.kind != Categorical {
		return nil, errors.NewColumnKindError("Series.Strings", s.name, Categorical.String(), s.kind.String())
	}
	return s.strings, nil
}

// IsMissing reports whether the cell at row i is missing.
func (s *Series) IsMissing(i int) bool {
	if s.kind == Numeric {
		return math.IsNaN(s.floats[i])
	}
	return s.strings[i] == ""
}

// take returns a new Series with only the given rows, in order.
func (s *Series) take(rows []int) *Series {
	if s.kind == Numeric {
		out := make([]float64, len(rows))
		for i, r := range rows {
			out[i] = s.floats[r]
		}
		return NewNumericSeries(s.name, out)
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = s.strings[r]
	}
	return NewCategoricalSeries(s.name, out)
}

// Frame is an ordered collection of equally sized Series with by-name lookup.
type Frame struct {
	series []*Series
	index  map[string]int
	rows   int
}

// New builds a Frame from the given columns. All columns must have the same
// length and distinct names.
func New(series ...*Series) (*Frame, error) {
	if len(series) == 0 {
		return nil, errors.NewEmptyDataError("dataset.New", "no columns")
	}

	f := &Frame{
		series: series,
		index:  make(map[string]int, len(series)),
		rows:   series[0].Len(),
	}
	for i, s := range series {
		if s.Len() != f.rows {
			return nil, errors.NewValidationError("series", "all columns must have the same length", s.name)
		}
		if _, dup := f.index[s.name]; dup {
			return nil, errors.NewValidationError("series", "duplicate column name", s.name)
		}
		f.index[s.name] = i
	}
	return f, nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return f.rows }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.series) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.series))
	for i, s := range f.series {
		names[i] = s.name
	}
	return names
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Series returns the column with the given name.
func (f *Frame) Series(name string) (*Series, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, errors.NewColumnNotFoundError("Frame.Series", name)
	}
	return f.series[i], nil
}

// Numeric returns the float values of a numeric column.
func (f *Frame) Numeric(name string) ([]float64, error) {
	s, err := f.Series(name)
	if err != nil {
		return nil, err
	}
	return s.Floats()
}

// Categorical returns the labels of a categorical column.
func (f *Frame) Categorical(name string) ([]string, error) {
	s, err := f.Series(name)
	if err != nil {
		return nil, err
	}
	return s.Strings()
}

// NumericNames returns the names of the numeric columns, in frame order.
// This mirrors pandas' select_dtypes(include=np.number) used by the
// per-column outlier summary.
func (f *Frame) NumericNames() []string {
	var names []string
	for _, s := range f.series {
		if s.kind == Numeric {
			names = append(names, s.name)
		}
	}
	return names
}

// Take returns a new Frame containing only the given rows, in the given
// order. Row indices must be within range.
func (f *Frame) Take(rows []int) (*Frame, error) {
	for _, r := range rows {
		if r < 0 || r >= f.rows {
			return nil, errors.NewValueError("Frame.Take", "row index out of range")
		}
	}
	taken := make([]*Series, len(f.series))
	for i, s := range f.series {
		taken[i] = s.take(rows)
	}
	return New(taken...)
}
