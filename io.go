package boscale

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

//////
// Tabular input for experiment data.
//////

// ReadCSV reads an experiment table from a CSV file: a header row of column
// names followed by numeric data rows.
//
// Parameters:
// - path: Path to the CSV file
//
// Returns:
// - names: Column names from the header row
// - data: Numeric row matrix, one row per record
// - error: The underlying I/O error, or ErrBadTable for structural problems
//
// Usage example:
//
//	names, data, err := boscale.ReadCSV("experiments.csv")
//	X, Y, xNames, yNames, err := boscale.SplitXY(names, data, "Yield")
func ReadCSV(path string) (names []string, data [][]float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("boscale: read %s: %w", path, err)
	}

	return parseTable(records)
}

// ReadXLSX reads an experiment table from the first sheet of an XLSX
// workbook: a header row of column names followed by numeric data rows.
// Blank rows are skipped.
//
// Parameters:
// - path: Path to the workbook
//
// Returns:
// - names: Column names from the header row
// - data: Numeric row matrix, one row per sheet row
// - error: The underlying I/O error, or ErrBadTable for structural problems
func ReadXLSX(path string) (names []string, data [][]float64, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("boscale: read %s: %w", path, err)
	}

	return parseTable(rows)
}

// SplitXY splits an experiment table into independent-variable (X) and
// response (Y) column blocks by response name, preserving column order
// within each block. With no explicit response names the last column is
// taken as the single response.
//
// Parameters:
// - names: Column names, one per column of data
// - data: Numeric row matrix
// - yNames: Names of the response columns (optional)
//
// Returns:
// - X, Y: Column blocks, one row per data row
// - xNames, outYNames: The names backing each block
// - error: ErrColumnNotFound for an unknown response name,
//   ErrDimensionMismatch if names does not cover every column
//
// Usage example:
//
//	X, Y, xNames, yNames, err := boscale.SplitXY(names, data, "Yield")
func SplitXY(names []string, data [][]float64, yNames ...string) (X, Y [][]float64, xNames, outYNames []string, err error) {
	rows, dim, err := matrixShape(data)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	if len(names) != dim {
		return nil, nil, nil, nil, fmt.Errorf("%w: %d names for %d columns", ErrDimensionMismatch, len(names), dim)
	}

	if len(yNames) == 0 {
		yNames = []string{names[dim-1]}
	}

	index := make(map[string]int, dim)
	for i, n := range names {
		index[n] = i
	}

	isY := make([]bool, dim)

	for _, n := range yNames {
		i, ok := index[n]
		if !ok {
			return nil, nil, nil, nil, fmt.Errorf("%w: %q", ErrColumnNotFound, n)
		}

		isY[i] = true
	}

	var xCols, yCols []int

	for i, n := range names {
		if isY[i] {
			yCols = append(yCols, i)
			outYNames = append(outYNames, n)
		} else {
			xCols = append(xCols, i)
			xNames = append(xNames, n)
		}
	}

	X = pickColumns(data, rows, xCols)
	Y = pickColumns(data, rows, yCols)

	return X, Y, xNames, outYNames, nil
}

//////
// Internal.
//////

// parseTable interprets raw string records as a header row followed by
// numeric data rows. Rows whose cells are all empty are skipped.
func parseTable(records [][]string) ([]string, [][]float64, error) {
	var names []string

	var data [][]float64

	for k, rec := range records {
		if blankRow(rec) {
			continue
		}

		if names == nil {
			names = make([]string, len(rec))
			for i, c := range rec {
				names[i] = strings.TrimSpace(c)
			}

			continue
		}

		if len(rec) != len(names) {
			return nil, nil, fmt.Errorf("%w: row %d has %d cells, header has %d", ErrBadTable, k, len(rec), len(names))
		}

		row := make([]float64, len(rec))

		for i, c := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d column %q: %q is not numeric", ErrBadTable, k, names[i], c)
			}

			row[i] = v
		}

		data = append(data, row)
	}

	if names == nil || len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: need a header row and at least one data row", ErrBadTable)
	}

	return names, data, nil
}

// blankRow reports whether every cell of a record is empty or whitespace.
func blankRow(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// pickColumns assembles a new matrix from the listed columns of data.
func pickColumns(data [][]float64, rows int, cols []int) [][]float64 {
	if len(cols) == 0 {
		return nil
	}

	out := make([][]float64, rows)

	for k := 0; k < rows; k++ {
		out[k] = make([]float64, len(cols))
		for i, c := range cols {
			out[k][i] = data[k][c]
		}
	}

	return out
}
