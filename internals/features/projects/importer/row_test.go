package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowOf(n int, cells map[string]string) Row {
	return Row{Number: n, Cells: cells}
}

func validCells() map[string]string {
	return map[string]string{
		ColRegional:    "1. jabar",
		ColNoProject:   "PRJ001",
		ColNamaProject: "Test",
		ColPop:         "POP1",
		ColPort:        "100",
		ColPortTerisi:  "25",
		ColProgress:    "18. bast",
		ColRevenue:     "500000000",
	}
}

func TestNormalizeRowEndToEnd(t *testing.T) {
	res := NormalizeRow(rowOf(2, validCells()), "DEPLOYMENT")
	require.True(t, res.OK(), "errors: %v", res.Errors)

	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	rec := BuildRecord(res.Row, "DEPLOYMENT", now)

	assert.Equal(t, "JABAR", rec.Regional)
	require.NotNil(t, rec.Progress)
	assert.Equal(t, "BAST", *rec.Progress)
	assert.Equal(t, "RFS", rec.Status)
	assert.Equal(t, "DEPLOYMENT", rec.UIC)
	assert.Equal(t, "85", rec.Persentase)
	assert.Equal(t, "25", rec.Occupancy)
	assert.Equal(t, "300000000", rec.Capex)
	assert.Equal(t, "500000000", rec.Revenue)
	assert.Equal(t, "100", rec.Port)
	assert.Equal(t, "0", rec.JumlahODP)
	assert.Nil(t, rec.IdlePort)
	assert.Nil(t, rec.NoSPK)
	require.NotNil(t, rec.Division)
	assert.Equal(t, "DEPLOYMENT", *rec.Division)
	require.NotNil(t, rec.UpdateProgress)
	assert.True(t, now.Equal(*rec.UpdateProgress))
}

func TestNormalizeRowRequiredFields(t *testing.T) {
	res := NormalizeRow(rowOf(7, map[string]string{ColNoProject: "X1"}), "")
	assert.Equal(t, []string{
		"Baris 7: Regional wajib diisi",
		"Baris 7: Nama Project wajib diisi",
		"Baris 7: POP wajib diisi",
	}, res.Errors)
}

func TestNormalizeRowAccumulatesAllErrors(t *testing.T) {
	cells := validCells()
	cells[ColRegional] = "papua"
	cells[ColProgress] = "bastx"
	cells[ColCirculirStatus] = "done"
	cells[ColPort] = "seratus"
	cells[ColTOC] = "12 hari"

	res := NormalizeRow(rowOf(3, cells), "")
	require.Len(t, res.Errors, 5)
	assert.Contains(t, res.Errors[0], `Regional "PAPUA" tidak valid`)
	assert.Contains(t, res.Errors[0], "JABAR")
	assert.Contains(t, res.Errors[1], `Progress "BASTX" tidak valid`)
	assert.Contains(t, res.Errors[1], `mungkin maksud Anda "BAST"`)
	assert.Contains(t, res.Errors[2], `Circulir Status "done"`)
	assert.Contains(t, res.Errors[3], `Port harus berupa angka (nilai: "seratus")`)
	assert.Contains(t, res.Errors[4], "TOC harus berupa angka")
	for _, msg := range res.Errors {
		assert.Contains(t, msg, "Baris 3: ")
	}
}

func TestNormalizeRowProgressWithoutSuggestion(t *testing.T) {
	cells := validCells()
	cells[ColProgress] = "xyz"
	res := NormalizeRow(rowOf(2, cells), "DEPLOYMENT")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, `Baris 2: Progress "XYZ" tidak valid`, res.Errors[0])
}

func TestNormalizeRowNoProjectTooLong(t *testing.T) {
	cells := validCells()
	cells[ColNoProject] = "PRJ-0000000000000000001"
	res := NormalizeRow(rowOf(2, cells), "DEPLOYMENT")
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "melebihi 20 karakter")
}

func TestNormalizeRowDivisionGating(t *testing.T) {
	cells := validCells()
	cells[ColProgress] = "DONE"

	planning := NormalizeRow(rowOf(2, cells), "PLANNING")
	require.Len(t, planning.Errors, 1)
	assert.Contains(t, planning.Errors[0], "tidak boleh diimport oleh divisi PLANNING")

	deployment := NormalizeRow(rowOf(2, cells), "deployment")
	assert.True(t, deployment.OK())

	cells[ColProgress] = "created boq"
	assert.False(t, NormalizeRow(rowOf(2, cells), "DEPLOYMENT").OK())
	assert.True(t, NormalizeRow(rowOf(2, cells), "PLANNING").OK())
	assert.True(t, NormalizeRow(rowOf(2, cells), "ADMIN").OK())

	// progress kosong → UIC gabungan, semua divisi lolos
	cells[ColProgress] = ""
	for _, div := range []string{"PLANNING", "DEPLOYMENT", ""} {
		res := NormalizeRow(rowOf(2, cells), div)
		assert.True(t, res.OK(), div)
	}
}

func TestNormalizeRowAliasAndCirculir(t *testing.T) {
	cells := validCells()
	cells[ColProgress] = "  2.  hold "
	cells[ColCirculirStatus] = "1. Ongoing"
	res := NormalizeRow(rowOf(2, cells), "DEPLOYMENT")
	require.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, "PENDING / HOLD", res.Row.Progress)
	assert.Equal(t, "ongoing", res.Row.CirculirStatus)

	rec := BuildRecord(res.Row, "DEPLOYMENT", time.Now())
	assert.Equal(t, "PENDING", rec.Status)
	assert.Equal(t, "0", rec.Persentase)
	require.NotNil(t, rec.CirculirStatus)
	assert.Equal(t, "ongoing", *rec.CirculirStatus)
}

func TestBuildRecordBlankProgressUsesDefaultStage(t *testing.T) {
	cells := validCells()
	delete(cells, ColProgress)
	res := NormalizeRow(rowOf(2, cells), "PLANNING")
	require.True(t, res.OK())

	rec := BuildRecord(res.Row, "PLANNING", time.Now())
	assert.Nil(t, rec.Progress)
	assert.Equal(t, "PENDING", rec.Status)
	assert.Equal(t, "PLANNING & DEPLOYMENT", rec.UIC)
	assert.Equal(t, "0", rec.Persentase)
}

func TestOccupancy(t *testing.T) {
	assert.Equal(t, 0, Occupancy(0, 10))
	assert.Equal(t, 0, Occupancy(-5, 10))
	assert.Equal(t, 33, Occupancy(3, 1))
	assert.Equal(t, 67, Occupancy(3, 2))
	assert.Equal(t, 50, Occupancy(8, 4))
}

func TestNumberHelpers(t *testing.T) {
	v, ok := ParseNumber(" 12.5 ")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	_, ok = ParseNumber("NaN")
	assert.False(t, ok)
	_, ok = ParseNumber("1,5")
	assert.False(t, ok)

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1_000", 0, false},
		{"0x1A", 26, true},
		{"0b11", 3, true},
		{"0o17", 15, true},
		{"-0x1A", 0, false},
		{"0x1p3", 0, false},
		{"0.5", 0.5, true},
		{"1e3", 1000, true},
	}
	for _, tc := range cases {
		v, ok := ParseNumber(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, v, tc.in)
	}

	assert.Equal(t, "0", NumberString(""))
	assert.Equal(t, "0", NumberString("abc"))
	assert.Equal(t, "42", NumberString("42.0"))
	assert.Equal(t, "0", Revenue("").String())
	assert.Equal(t, "150", Capex(Revenue("250")).String())
}

func TestIsFiller(t *testing.T) {
	assert.True(t, IsFiller(rowOf(2, map[string]string{ColRegional: "JABAR"})))
	assert.False(t, IsFiller(rowOf(2, map[string]string{ColNamaProject: "X"})))
	assert.False(t, IsFiller(rowOf(2, map[string]string{ColNoProject: "X"})))
}
