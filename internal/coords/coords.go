// Package coords displaces target coordinates in per-chromosome tables.
//
// A chromosome table is a gota DataFrame with a numeric coordinate column
// named ColCoo; its other columns are carried through untouched.
package coords

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column is the name of the coordinate column.
const Column = "ColCoo"

// Shift adds delta to every ColCoo value of the first numChr tables and
// returns those numChr tables. The input tables are not modified.
//
// Requesting more tables than supplied returns an *ArityError; a table
// without a numeric ColCoo column returns a *SchemaError naming its 1-based
// position. No partial result is returned on error.
func Shift(tables []dataframe.DataFrame, numChr, delta int) ([]dataframe.DataFrame, error) {
	if numChr < 0 || numChr > len(tables) {
		return nil, &ArityError{Requested: numChr, Supplied: len(tables)}
	}

	out := make([]dataframe.DataFrame, numChr)
	for i := 0; i < numChr; i++ {
		shifted, err := shiftTable(tables[i], delta)
		if err != nil {
			if serr, ok := err.(*SchemaError); ok {
				serr.Index = i + 1
			}
			return nil, err
		}
		out[i] = shifted
	}

	return out, nil
}

func shiftTable(df dataframe.DataFrame, delta int) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, &SchemaError{Field: Column, Reason: df.Err.Error()}
	}
	if !hasColumn(df, Column) {
		return df, &SchemaError{Field: Column, Reason: "missing column"}
	}

	col := df.Col(Column)
	var moved series.Series
	switch col.Type() {
	case series.Int:
		vals, err := col.Int()
		if err != nil {
			return df, &SchemaError{Field: Column, Reason: err.Error()}
		}
		for j := range vals {
			vals[j] += delta
		}
		moved = series.New(vals, series.Int, Column)
	case series.Float:
		vals := col.Float()
		for j := range vals {
			vals[j] += float64(delta)
		}
		moved = series.New(vals, series.Float, Column)
	default:
		return df, &SchemaError{Field: Column, Reason: fmt.Sprintf("column has type %s, want numeric", col.Type())}
	}

	// Mutate reuses the receiver's column slice, so work on a copy.
	out := df.Copy().Mutate(moved)
	if out.Err != nil {
		return df, fmt.Errorf("shifting %s: %w", Column, out.Err)
	}
	return out, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// loadOptions read every column as text so that opaque fields keep their
// exact spelling; only ColCoo is typed afterwards.
func loadOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	}
}

// ReadCSV loads one chromosome table from CSV with a header row. ColCoo is
// read as Int when every value is an integer and as Float otherwise; all
// other columns are kept as strings.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r, loadOptions()...)
	if df.Err != nil {
		return df, fmt.Errorf("reading table: %w", df.Err)
	}
	return typeCoordinate(df)
}

// ReadJSON loads one chromosome table from a JSON array of row objects.
// Columns are typed as in ReadCSV. A JSON null becomes a missing value, and
// a row without a field is missing that value.
//
// On failure the returned frame carries the error in Err as well, so that
// Shift reports it only for tables it actually uses.
func ReadJSON(r io.Reader) (dataframe.DataFrame, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows []map[string]interface{}
	if err := dec.Decode(&rows); err != nil {
		err = fmt.Errorf("reading table: %w", err)
		return dataframe.DataFrame{Err: err}, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)

	records := make([][]string, 0, len(rows)+1)
	records = append(records, names)
	for _, row := range rows {
		rec := make([]string, len(names))
		for j, name := range names {
			rec[j] = jsonText(row[name])
		}
		records = append(records, rec)
	}

	df := dataframe.LoadRecords(records, loadOptions()...)
	if df.Err != nil {
		err := fmt.Errorf("reading table: %w", df.Err)
		return dataframe.DataFrame{Err: err}, err
	}
	df, err := typeCoordinate(df)
	if err != nil {
		return dataframe.DataFrame{Err: err}, err
	}
	return df, nil
}

// jsonText renders a decoded JSON value as its text. Strings and numbers
// keep their literal spelling.
func jsonText(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "NaN"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// typeCoordinate converts a textual ColCoo column to Int, or to Float when
// some value is not an integer. A column that is not numeric, or a table
// without one, is returned unchanged for Shift to reject.
func typeCoordinate(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if !hasColumn(df, Column) {
		return df, nil
	}
	recs := df.Col(Column).Records()

	var typed series.Series
	if ints, ok := parseInts(recs); ok {
		typed = series.New(ints, series.Int, Column)
	} else if floats, ok := parseFloats(recs); ok {
		typed = series.New(floats, series.Float, Column)
	} else {
		return df, nil
	}

	out := df.Mutate(typed)
	if out.Err != nil {
		return df, fmt.Errorf("typing %s: %w", Column, out.Err)
	}
	return out, nil
}

func parseInts(recs []string) ([]int, bool) {
	vals := make([]int, len(recs))
	for i, r := range recs {
		v, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

func parseFloats(recs []string) ([]float64, bool) {
	vals := make([]float64, len(recs))
	for i, r := range recs {
		v, err := strconv.ParseFloat(strings.TrimSpace(r), 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// WriteCSV writes a chromosome table as CSV with a header row.
func WriteCSV(w io.Writer, df dataframe.DataFrame) error {
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
