// Package importer reads question/answer pairs from spreadsheet files.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Card is one question/answer pair read from a file.
type Card struct {
	Question string
	Answer   string
}

// RowError describes a row that was skipped.
type RowError struct {
	Row    int
	Reason string
}

// Result holds the cards read and the rows skipped.
type Result struct {
	Cards   []Card
	Skipped []RowError
}

// Options select where cards are read from. Columns are zero-based.
type Options struct {
	Sheet          string // empty selects the first sheet
	QuestionColumn int
	AnswerColumn   int
	SkipHeader     bool
}

// DefaultOptions reads column A as the question and B as the answer below a header row.
func DefaultOptions() Options {
	return Options{QuestionColumn: 0, AnswerColumn: 1, SkipHeader: true}
}

// ReadFile reads cards from an .xlsx file, or from a .csv file by extension.
func ReadFile(path string, opts Options) (*Result, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open csv file: %w", err)
		}
		defer f.Close()
		return ReadCSV(f, opts)
	}
	return readExcel(path, opts)
}

func readExcel(path string, opts Options) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("excel file has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("get rows of sheet %q: %w", sheet, err)
	}
	return collect(rows, opts), nil
}

// ReadCSV reads cards from CSV data.
func ReadCSV(r io.Reader, opts Options) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return collect(rows, opts), nil
}

func collect(rows [][]string, opts Options) *Result {
	res := &Result{Cards: make([]Card, 0, len(rows))}

	for i, row := range rows {
		if i == 0 && opts.SkipHeader {
			continue
		}
		if isBlank(row) {
			continue
		}

		q := cell(row, opts.QuestionColumn)
		a := cell(row, opts.AnswerColumn)
		switch {
		case q == "":
			res.Skipped = append(res.Skipped, RowError{Row: i + 1, Reason: "empty question"})
		case a == "":
			res.Skipped = append(res.Skipped, RowError{Row: i + 1, Reason: "empty answer"})
		default:
			res.Cards = append(res.Cards, Card{Question: q, Answer: a})
		}
	}

	return res
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
