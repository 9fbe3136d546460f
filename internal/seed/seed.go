// Package seed loads students from an .xlsx worksheet into a roster.
package seed

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hpungsan/roster/internal/errors"
	"github.com/hpungsan/roster/internal/ops"
)

// ImportInput contains parameters for an import.
type ImportInput struct {
	Path  string // required for Import; ignored by ImportReader
	Sheet string // default: first sheet
}

// SkippedRow describes a data row that could not be added.
type SkippedRow struct {
	Row    int    `json:"row"` // 1-based, as shown in spreadsheet apps
	Reason string `json:"reason"`
}

// ImportOutput contains the result of an import.
type ImportOutput struct {
	Sheet    string       `json:"sheet"`
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped"`
}

// columns holds the index of each required header.
type columns struct {
	id, name, grade int
}

// Import opens the workbook at input.Path and adds each data row to r.
func Import(r *ops.Roster, input ImportInput) (*ImportOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}
	file, err := os.Open(input.Path)
	if err != nil {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("open workbook: %v", err))
	}
	defer file.Close()

	return ImportReader(r, file, input)
}

// ImportReader reads a workbook from src and adds each data row to r.
//
// The first row is a header naming the id, name and grade columns
// (case-insensitive, any order). Rows that fail to parse or are rejected by
// the roster are reported in Skipped; they do not stop the import.
func ImportReader(r *ops.Roster, src io.Reader, input ImportInput) (*ImportOutput, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("open workbook: %v", err))
	}
	defer f.Close()

	sheet := input.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, errors.NewInvalidRequest("workbook does not contain any sheets")
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("sheet not found: %q", sheet))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("read rows from sheet %q: %w", sheet, err))
	}
	if len(rows) == 0 {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("sheet %q is empty", sheet))
	}

	cols, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	out := &ImportOutput{Sheet: sheet, Skipped: []SkippedRow{}}
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isBlank(row) {
			continue
		}

		add, err := parseRow(row, cols)
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedRow{Row: rowNum, Reason: err.Error()})
			continue
		}
		if _, err := ops.Add(r, add); err != nil {
			out.Skipped = append(out.Skipped, SkippedRow{Row: rowNum, Reason: reason(err)})
			continue
		}
		out.Imported++
	}
	return out, nil
}

func parseHeader(header []string) (columns, error) {
	cols := columns{id: -1, name: -1, grade: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id":
			cols.id = i
		case "name":
			cols.name = i
		case "grade":
			cols.grade = i
		}
	}

	var missing []string
	if cols.id < 0 {
		missing = append(missing, "id")
	}
	if cols.name < 0 {
		missing = append(missing, "name")
	}
	if cols.grade < 0 {
		missing = append(missing, "grade")
	}
	if len(missing) > 0 {
		return cols, errors.NewInvalidRequest(fmt.Sprintf("header row missing columns: %s", strings.Join(missing, ", ")))
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (ops.AddInput, error) {
	idText := cell(row, cols.id)
	id, err := parseID(idText)
	if err != nil {
		return ops.AddInput{}, fmt.Errorf("invalid id %q", idText)
	}

	gradeText := cell(row, cols.grade)
	grade, err := strconv.ParseFloat(gradeText, 64)
	if err != nil {
		return ops.AddInput{}, fmt.Errorf("invalid grade %q", gradeText)
	}

	return ops.AddInput{ID: id, Name: cell(row, cols.name), Grade: grade}, nil
}

// parseID accepts integers, including spreadsheet floats such as "12.0".
func parseID(s string) (int, error) {
	if id, err := strconv.Atoi(s); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}

// cell returns the trimmed value at i, or "" when the row is short.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// reason extracts a user-facing message from a roster error.
func reason(err error) string {
	if rErr, ok := err.(*errors.RosterError); ok {
		return fmt.Sprintf("[%s] %s", rErr.Code, rErr.Message)
	}
	return err.Error()
}
