package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cazeai/bizcon-outreach/internal/entity"
)

func writeStatusFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "selected_users.xlsx")
	f := excelize.NewFile()
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}
	require.NoError(t, f.SaveAs(path))
	f.Close()
	return path
}

func TestStatusLookupMissingFile(t *testing.T) {
	s := NewStatusLookup(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Equal(t, entity.StatusNotResponded, s.StatusFor("x@y.com"))
}

func TestStatusLookupNormalizesTitleCase(t *testing.T) {
	path := writeStatusFile(t, [][]interface{}{
		{"Email", statusColumn},
		{"dana@acme.com", "hot"},
		{"lee@globex.com", "NOT RESPONDED"},
	})
	s := NewStatusLookup(path)

	assert.Equal(t, "Hot", s.StatusFor("dana@acme.com"))
	assert.Equal(t, "Not Responded", s.StatusFor("lee@globex.com"))
}

func TestStatusLookupUnknownEmail(t *testing.T) {
	path := writeStatusFile(t, [][]interface{}{
		{"Email", statusColumn},
		{"dana@acme.com", "Warm"},
	})
	s := NewStatusLookup(path)

	assert.Equal(t, entity.StatusNotResponded, s.StatusFor("nobody@nowhere.com"))
}

func TestStatusLookupBlankStatusCell(t *testing.T) {
	path := writeStatusFile(t, [][]interface{}{
		{"Email", statusColumn},
		{"dana@acme.com", ""},
	})
	s := NewStatusLookup(path)

	assert.Equal(t, entity.StatusNotResponded, s.StatusFor("dana@acme.com"))
}

func TestStatusLookupMissingColumns(t *testing.T) {
	path := writeStatusFile(t, [][]interface{}{
		{"Email", "Notes"},
		{"dana@acme.com", "call back"},
	})
	s := NewStatusLookup(path)

	assert.Equal(t, entity.StatusNotResponded, s.StatusFor("dana@acme.com"))
}
