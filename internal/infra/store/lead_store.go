package store

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/cazeai/bizcon-outreach/internal/entity"
)

var leadColumns = []string{
	"ID", "Name", "Company", "Email", "Description",
	"source", "email_count", "Last Email Sent",
}

// LeadStore persists leads in a flat spreadsheet, read and written wholesale.
type LeadStore struct {
	Path string
}

func NewLeadStore(path string) *LeadStore {
	return &LeadStore{Path: path}
}

func (s *LeadStore) LoadAll() ([]entity.Lead, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return nil, ErrNotFound
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open leads file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read leads file: %w", err)
	}
	if len(rows) == 0 {
		return []entity.Lead{}, nil
	}

	idx := columnIndex(rows[0])
	countCol := col(idx, "Email Sent Count")
	if countCol < 0 {
		countCol = col(idx, "email_count")
	}

	leads := make([]entity.Lead, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id := cellAt(row, col(idx, "ID"))
		if id == "" {
			continue
		}
		lead := entity.Lead{
			ID:          id,
			Name:        cellAt(row, col(idx, "Name")),
			Company:     cellAt(row, col(idx, "Company")),
			Email:       cellAt(row, col(idx, "Email")),
			Description: cellAt(row, col(idx, "Description")),
			Source:      cellAt(row, col(idx, "source")),
			EmailCount:  parseCount(cellAt(row, countCol)),
		}
		if raw := cellAt(row, col(idx, "Last Email Sent")); raw != "" {
			if t, err := parseTimestamp(raw); err == nil {
				lead.LastEmailSent = &t
			}
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

func (s *LeadStore) SaveAll(leads []entity.Lead) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(leadColumns))
	for i, c := range leadColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write leads header: %w", err)
	}

	for i, lead := range leads {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			lead.ID, lead.Name, lead.Company, lead.Email, lead.Description,
			lead.Source, lead.EmailCount, formatTimestamp(lead.LastEmailSent),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write lead row: %w", err)
		}
	}

	return saveAtomic(f, s.Path)
}
