package spreadsheet_test

import (
	"testing"

	"go-workhub/internal/shared/spreadsheet"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	headers := []string{"ID", "Name", "Email"}
	rows := [][]interface{}{
		{int64(1), "Alice", "alice@example.com"},
		{int64(2), "Bob", "bob@example.com"},
	}

	f, err := spreadsheet.Build("Employees", headers, rows)
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Employees"}, f.GetSheetList())

	got, err := f.GetRows("Employees")
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, headers, got[0])
	assert.Equal(t, []string{"1", "Alice", "alice@example.com"}, got[1])

	// Header row carries the bold style, data rows do not.
	headerStyle, err := f.GetCellStyle("Employees", "A1")
	assert.NoError(t, err)
	dataStyle, err := f.GetCellStyle("Employees", "A2")
	assert.NoError(t, err)
	assert.NotEqual(t, headerStyle, dataStyle)
}
