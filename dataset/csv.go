package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Josemvg/josemltools/pkg/errors"
)

// missingTokens are the cell values treated as missing on load, matching the
// defaults pandas.read_csv recognizes for the datasets these utilities were
// written against.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

func isMissingToken(cell string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(cell))]
}

// ReadCSV loads a frame from CSV data. The first record is the header.
//
// Column kinds are inferred: a column whose every non-missing cell parses as
// a float becomes Numeric, anything else Categorical. A column that is mostly
// numeric but demoted by unparseable cells raises a DataConversionWarning
// through the pkg/errors warning system, since that usually means a typo in
// the data rather than a genuine label column.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	// Ragged rows are a data error the caller should hear about;
	// FieldsPerRecord default already enforces rectangular input.
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dataset: reading CSV")
	}
	if len(records) == 0 {
		return nil, errors.NewEmptyDataError("ReadCSV", "input has no header row")
	}

	header := records[0]
	body := records[1:]
	if len(body) == 0 {
		return nil, errors.NewEmptyDataError("ReadCSV", "input has no data rows")
	}

	series := make([]*Series, len(header))
	for col, name := range header {
		name = strings.TrimSpace(name)
		series[col] = inferColumn(name, body, col)
	}
	return New(series...)
}

// inferColumn builds the Series for one CSV column, deciding its kind.
func inferColumn(name string, body [][]string, col int) *Series {
	floats := make([]float64, len(body))
	numeric := true
	parsed := 0
	for i, rec := range body {
		cell := rec[col]
		if isMissingToken(cell) {
			floats[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			numeric = false
			break
		}
		floats[i] = v
		parsed++
	}

	// An all-missing column stays Numeric (all NaN), the way pandas loads
	// an empty float column.
	if numeric {
		return NewNumericSeries(name, floats)
	}

	if parsed > 0 {
		// Some cells parsed before the demotion: mixed column.
		errors.Warn(errors.NewDataConversionWarning(
			name, Numeric.String(), Categorical.String(),
			"column contains cells that do not parse as float"))
	}

	labels := make([]string, len(body))
	for i, rec := range body {
		cell := rec[col]
		if isMissingToken(cell) {
			labels[i] = ""
			continue
		}
		labels[i] = strings.TrimSpace(cell)
	}
	return NewCategoricalSeries(name, labels)
}

// OpenCSV loads a frame from a CSV file on disk.
func OpenCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: opening %s", path)
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV writes a frame as CSV with a header row. Missing numeric cells
// are written as empty cells so a round trip preserves missingness.
func WriteCSV(w io.Writer, f *Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Names()); err != nil {
		return errors.Wrap(err, "dataset: writing CSV header")
	}

	record := make([]string, f.NumCols())
	for row := 0; row < f.NumRows(); row++ {
		for col, s := range f.series {
			switch s.kind {
			case Numeric:
				v := s.floats[row]
				if math.IsNaN(v) {
					record[col] = ""
				} else {
					record[col] = strconv.FormatFloat(v, 'g', -1, 64)
				}
			case Categorical:
				record[col] = s.strings[row]
			}
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "dataset: writing CSV record")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "dataset: flushing CSV")
}
