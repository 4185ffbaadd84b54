package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster() Dataset {
	return Dataset{
		Headers: []string{"national_id", "name", "active"},
		Rows: []map[string]string{
			{"national_id": "12345678901", "name": "Ana", "active": "false"},
			{"national_id": "10987654321", "name": "Bruno", "active": "true"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(roster())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "national_id,name,active", lines[0])
	assert.Equal(t, "12345678901,Ana,false", lines[1])
}

func TestCSVExporterOptions(t *testing.T) {
	out, err := NewCSVExporter(WithDelimiter(';'), WithBOM()).Render(roster())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, utf8BOM))
	lines := strings.Split(strings.TrimSpace(string(out[len(utf8BOM):])), "\n")
	assert.Equal(t, "national_id;name;active", lines[0])
}

func TestPDFExporterPaginatesLongTables(t *testing.T) {
	data := roster()
	for i := 0; i < 120; i++ {
		data.Rows = append(data.Rows, map[string]string{"national_id": "00000000000", "name": "José", "active": "true"})
	}
	out, err := NewPDFExporter().Render(data, "students")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	pages := bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
	assert.Greater(t, pages, 1)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(roster(), "students")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestXLSXRoundTrip(t *testing.T) {
	out, err := NewXLSXExporter().Render(roster(), "students")
	require.NoError(t, err)

	data, err := ReadXLSX(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, roster().Headers, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Bruno", data.Rows[1]["name"])
}

func TestRenderersRequireHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
	_, err = NewXLSXExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

func TestReadXLSXKeepsSheetRowNumbers(t *testing.T) {
	out, err := NewXLSXExporter().Render(Dataset{
		Headers: []string{" national_id ", "name"},
		Rows: []map[string]string{
			{" national_id ": "1", "name": "Ana"},
			{},
			{" national_id ": "3", "name": "Carla"},
		},
	}, "students")
	require.NoError(t, err)

	data, err := ReadXLSX(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"national_id", "name"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "3", data.Rows[1]["national_id"])
	assert.Equal(t, []int{2, 4}, data.Lines)
}
