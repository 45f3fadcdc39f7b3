package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftth_backend/internals/features/projects/importer"
)

const csvHeader = "Regional,No Project,Nama Project,POP,Port,Port Terisi,Progress\n"

func TestValidateFileCSV(t *testing.T) {
	data := csvHeader +
		"1. jabar,PRJ001,Griya,POP1,100,25,created boq\n" +
		",,,POP9,,,\n"

	plan, err := validateFile("data.csv", strings.NewReader(data), "planning", 100)
	require.NoError(t, err)
	assert.Equal(t, "PLANNING", plan.Division)
	assert.Len(t, plan.Records, 1)
	assert.Equal(t, 1, plan.Skipped)
}

func TestValidateFileReportsEveryRow(t *testing.T) {
	data := csvHeader +
		"jabar,PRJ001,Griya,,100,25,\n" +
		"mars,PRJ002,Taman,POP2,abc,0,\n"

	_, err := validateFile("data.csv", strings.NewReader(data), "DEPLOYMENT", 100)
	var verr *importer.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Messages), 3)
}

func TestValidateImportCommandExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvHeader+"jabar,PRJ001,Griya,,1,0,\n"), 0o600))

	var out bytes.Buffer
	cmd := newValidateImportCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path, "--division", "PLANNING"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, errValidation)
	assert.Contains(t, out.String(), "POP wajib diisi")
	assert.Contains(t, out.String(), "1 error ditemukan")
}

func TestTemplateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.xlsx")
	cmd := newTemplateCmd()
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
