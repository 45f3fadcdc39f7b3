package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftth_backend/internals/features/projects/project/model"
)

func TestTemplateRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf, 0))

	wb, err := ReadWorkbook("template.xlsx", &buf)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, GuideSheetName, wb.Sheets[0].Name)

	sheet, err := DiscoverSheet(wb)
	require.NoError(t, err)
	assert.Equal(t, DataSheetName, sheet.Name)
	assert.Equal(t, TemplateColumns, sheet.Headers)

	p, _, _ := newTestPipeline("DEPLOYMENT")
	plan, err := p.Validate(wb, "DEPLOYMENT")
	require.NoError(t, err)
	require.Len(t, plan.Records, 1)
	assert.Equal(t, "PRJ001", plan.Records[0].NoProject)
	assert.Equal(t, "85", plan.Records[0].Persentase)
}

func TestWriteExport(t *testing.T) {
	progress := "DONE"
	rows := []model.ProjectModel{{
		Regional: "JATIM", NoProject: "PRJ9", NamaProject: "Lop", Pop: "SBY",
		Port: "16", PortTerisi: "8", Progress: &progress, Status: "RFS", UIC: "DEPLOYMENT", Persentase: "100",
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, rows))

	wb, err := ReadWorkbook("export.xlsx", &buf)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	require.Len(t, wb.Sheets[0].Rows, 1)

	row := wb.Sheets[0].Rows[0]
	assert.Equal(t, "PRJ9", row.Get(ColNoProject))
	assert.Equal(t, "DONE", row.Get(ColProgress))
	assert.Equal(t, "RFS", row.Get("status"))
}
