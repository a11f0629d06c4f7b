package dataset

import (
	"database/sql"
	"math"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/Josemvg/josemltools/pkg/errors"
)

// OpenSQLite opens a SQLite database file with the pure Go driver.
// Use ReadSQL to load a query result into a Frame.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: opening sqlite database %s", path)
	}
	return db, nil
}

// ReadSQLite opens a SQLite database, runs the query and loads the result
// into a Frame. Convenience wrapper for the CLI's one-shot reads.
func ReadSQLite(path, query string) (*Frame, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return ReadSQL(db, query)
}

// ReadSQL loads the result of a query into a Frame.
//
// Column kinds follow the scanned values: columns whose every non-NULL value
// is an integer, float, or numeric text become Numeric; everything else
// becomes Categorical. NULLs load as missing cells. SQLite's dynamic typing
// means a column can mix text and numbers; such columns demote to
// Categorical with a DataConversionWarning, same as the CSV loader.
func ReadSQL(db *sql.DB, query string) (*Frame, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: running query")
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "dataset: reading result columns")
	}
	if len(names) == 0 {
		return nil, errors.NewEmptyDataError("ReadSQL", "query returned no columns")
	}

	var cells [][]any
	for rows.Next() {
		record := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range record {
			ptrs[i] = &record[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "dataset: scanning row")
		}
		cells = append(cells, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "dataset: iterating rows")
	}
	if len(cells) == 0 {
		return nil, errors.NewEmptyDataError("ReadSQL", "query returned no rows")
	}

	series := make([]*Series, len(names))
	for col, name := range names {
		series[col] = inferSQLColumn(name, cells, col)
	}
	return New(series...)
}

// sqlFloat converts a scanned SQL value to a float64 if it is numeric.
func sqlFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// sqlString converts a scanned SQL value to its label form.
func sqlString(v any) string {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return ""
	}
}

func inferSQLColumn(name string, cells [][]any, col int) *Series {
	floats := make([]float64, len(cells))
	numeric := true
	parsed := 0
	for i, record := range cells {
		v := record[col]
		if v == nil {
			floats[i] = math.NaN()
			continue
		}
		f, ok := sqlFloat(v)
		if !ok {
			numeric = false
			break
		}
		floats[i] = f
		parsed++
	}

	// An all-NULL column stays Numeric (all NaN), same as the CSV loader.
	if numeric {
		return NewNumericSeries(name, floats)
	}

	if parsed > 0 {
		errors.Warn(errors.NewDataConversionWarning(
			name, Numeric.String(), Categorical.String(),
			"column mixes numeric and non-numeric values"))
	}

	labels := make([]string, len(cells))
	for i, record := range cells {
		if record[col] == nil {
			labels[i] = ""
			continue
		}
		labels[i] = sqlString(record[col])
	}
	return NewCategoricalSeries(name, labels)
}
