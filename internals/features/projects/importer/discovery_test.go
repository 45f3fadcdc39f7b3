package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workbookOf(names ...string) *Workbook {
	wb := &Workbook{}
	for _, n := range names {
		wb.Sheets = append(wb.Sheets, Sheet{Name: n})
	}
	return wb
}

func TestDiscoverSheet(t *testing.T) {
	cases := []struct {
		sheets []string
		want   string
	}{
		{[]string{"Panduan", "Data"}, "Data"},
		{[]string{"Sheet1", "Notes"}, "Sheet1"},
		{[]string{"Panduan", "Rekap Data 2024"}, "Rekap Data 2024"},
		{[]string{"Guide", "Instruksi Import", "Projects"}, "Projects"},
		{[]string{"Panduan", "User Guide"}, "Panduan"},
		{[]string{"DATA"}, "DATA"},
	}
	for _, tc := range cases {
		sh, err := DiscoverSheet(workbookOf(tc.sheets...))
		require.NoError(t, err)
		assert.Equal(t, tc.want, sh.Name, "sheets %v", tc.sheets)
	}
}

func TestDiscoverSheetEmptyWorkbook(t *testing.T) {
	_, err := DiscoverSheet(&Workbook{})
	assert.ErrorIs(t, err, ErrNoSheet)

	_, err = DiscoverSheet(nil)
	assert.ErrorIs(t, err, ErrNoSheet)
}

func TestCanonicalHeader(t *testing.T) {
	assert.Equal(t, ColNoProject, CanonicalHeader("No Project"))
	assert.Equal(t, ColNoProject, CanonicalHeader("NO_PROJECT"))
	assert.Equal(t, ColNoProject, CanonicalHeader("no project*"))
	assert.Equal(t, ColTOC, CanonicalHeader("TOC (hari)"))
	assert.Equal(t, ColPop, CanonicalHeader("STO"))
	assert.Equal(t, ColCirculirStatus, CanonicalHeader("Circulir Status"))
	assert.Equal(t, "", CanonicalHeader("  "))
}
