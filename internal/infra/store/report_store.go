package store

import (
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cazeai/bizcon-outreach/internal/entity"
)

const statusColumn = "Status (Hot/Warm/Cold/Not Responded)"

var reportColumns = []string{
	"ID", "Name", "Company", "Email", "Description",
	"Private Link", "Sent Date", "Chat Summary", statusColumn, "source",
}

// ReportStore holds the outreach report in memory between Load and Save.
// Records are deduplicated by Email.
type ReportStore struct {
	Path    string
	records []entity.ReportRecord
}

func NewReportStore(path string) *ReportStore {
	return &ReportStore{Path: path}
}

// Load reads the report file, creating an empty one with the canonical
// column schema if it does not exist yet.
func (s *ReportStore) Load() error {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		s.records = nil
		return s.Save()
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("failed to read report file: %w", err)
	}

	s.records = nil
	if len(rows) < 2 {
		return nil
	}

	idx := columnIndex(rows[0])
	for _, row := range rows[1:] {
		email := cellAt(row, col(idx, "Email"))
		if email == "" {
			continue
		}
		rec := entity.ReportRecord{
			ReportToken: cellAt(row, col(idx, "ID")),
			Name:        cellAt(row, col(idx, "Name")),
			Company:     cellAt(row, col(idx, "Company")),
			Email:       email,
			Description: cellAt(row, col(idx, "Description")),
			PrivateLink: cellAt(row, col(idx, "Private Link")),
			ChatSummary: cellAt(row, col(idx, "Chat Summary")),
			Status:      cellAt(row, col(idx, statusColumn)),
			Source:      cellAt(row, col(idx, "source")),
		}
		if raw := cellAt(row, col(idx, "Sent Date")); raw != "" {
			if t, err := parseTimestamp(raw); err == nil {
				rec.SentDate = t
			}
		}
		if rec.Status == "" {
			rec.Status = entity.StatusNotResponded
		}
		s.records = append(s.records, rec)
	}
	return nil
}

// UpsertByEmail refreshes only the Sent Date of an existing record for the
// same address; anything else about it (status included) stays untouched.
// New addresses are appended with status "Not Responded".
func (s *ReportStore) UpsertByEmail(rec entity.ReportRecord) {
	for i := range s.records {
		if s.records[i].Email == rec.Email {
			s.records[i].SentDate = rec.SentDate
			return
		}
	}
	if rec.Status == "" {
		rec.Status = entity.StatusNotResponded
	}
	s.records = append(s.records, rec)
}

func (s *ReportStore) Records() []entity.ReportRecord {
	return s.records
}

// Save overwrites the report file with the full in-memory set.
func (s *ReportStore) Save() error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(reportColumns))
	for i, c := range reportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for i, rec := range s.records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		sent := rec.SentDate
		row := []interface{}{
			rec.ReportToken, rec.Name, rec.Company, rec.Email, rec.Description,
			rec.PrivateLink, formatSentDate(sent), rec.ChatSummary, rec.Status, rec.Source,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	return saveAtomic(f, s.Path)
}

func formatSentDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(sentDateLayout)
}
