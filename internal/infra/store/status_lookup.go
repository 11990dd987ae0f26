package store

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cazeai/bizcon-outreach/internal/entity"
)

// StatusLookup resolves a lead's current status label from a separate
// spreadsheet maintained by the review process. Anything that goes wrong
// (missing file, missing columns, blank cell) resolves to "Not Responded".
type StatusLookup struct {
	Path string
}

func NewStatusLookup(path string) *StatusLookup {
	return &StatusLookup{Path: path}
}

func (s *StatusLookup) StatusFor(email string) string {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return entity.StatusNotResponded
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil || len(rows) < 2 {
		return entity.StatusNotResponded
	}

	idx := columnIndex(rows[0])
	emailCol := col(idx, "Email")
	stCol := col(idx, statusColumn)
	if emailCol < 0 || stCol < 0 {
		return entity.StatusNotResponded
	}

	for _, row := range rows[1:] {
		if cellAt(row, emailCol) == email {
			if st := cellAt(row, stCol); st != "" {
				return titleCase(st)
			}
			break
		}
	}
	return entity.StatusNotResponded
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
