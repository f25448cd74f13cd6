// Package bank reads the question-bank backing file. The bank is a
// row-oriented .xlsx sheet with a header naming the columns
// question, subject, use, correct, responseA..responseD, remark.
package bank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mind-engage/quizbank/internal/quiz"
)

var requiredColumns = []string{"question", "subject", "use", "responsea", "responseb"}

// LoadXLSX reads every row of the first sheet into questions, preserving
// sheet order. Rows with an empty question cell are skipped.
func LoadXLSX(path string) ([]quiz.Question, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("workbook is empty")
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column: %s", col)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []quiz.Question
	for _, row := range rows[1:] {
		q := quiz.Question{
			Question:  cell(row, "question"),
			Subject:   cell(row, "subject"),
			Use:       cell(row, "use"),
			Correct:   cell(row, "correct"),
			ResponseA: cell(row, "responsea"),
			ResponseB: cell(row, "responseb"),
			ResponseC: cell(row, "responsec"),
			ResponseD: cell(row, "responsed"),
			Remark:    cell(row, "remark"),
		}
		if q.Question == "" {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}
