// Package workbook reads and writes the kinematics spreadsheet: one
// worksheet, a header row, then position, velocity and acceleration columns.
package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/kinograph/internal/kinematics"
	"github.com/san-kum/kinograph/internal/logger"
)

// DefaultPath is looked up in the working directory.
const DefaultPath = "kinematics_output.xlsx"

const sheetName = "Sheet1"

// Load parses the first worksheet of path into a Table, skipping the header
// row. Every failure is a *LoadError.
func Load(path string) (kinematics.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: no worksheets", ErrSchema)}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	table, err := parseRows(rows)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	logger.L().Debug("workbook.load", "path", path, "sheet", sheets[0], "rows", table.Rows())
	return table, nil
}

func parseRows(rows [][]string) (kinematics.Table, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: no data rows below the header", ErrSchema)
	}

	data := rows[1:]
	table := make(kinematics.Table, 0, len(data))
	for i, row := range data {
		// spreadsheet rows are 1-based and the header is row 1
		line := i + 2
		if len(row) < kinematics.NumColumns {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrSchema, line, len(row), kinematics.NumColumns)
		}

		values := make([]float64, kinematics.NumColumns)
		for j := range values {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q is not numeric", ErrSchema, line, j+1, row[j])
			}
			values[j] = v
		}
		table = append(table, values)
	}
	return table, nil
}

// Write stores table at path with a header row naming each column.
func Write(path string, table kinematics.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	header := make([]interface{}, kinematics.NumColumns)
	for i, c := range kinematics.Columns() {
		header[i] = c.Label()
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range table {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, kinematics.NumColumns)
		for j := range values {
			values[j] = row[j]
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return err
	}

	logger.L().Info("workbook.write", "path", path, "rows", table.Rows())
	return nil
}
