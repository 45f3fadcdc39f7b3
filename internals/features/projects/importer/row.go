package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ftth_backend/internals/features/projects/workflow"
)

const maxNoProjectLen = 20

var requiredColumns = []struct{ key, label string }{
	{ColRegional, "Regional"},
	{ColNoProject, "No Project"},
	{ColNamaProject, "Nama Project"},
	{ColPop, "POP"},
}

var numericColumns = []struct{ key, label string }{
	{ColPort, "Port"},
	{ColJumlahODP, "Jumlah ODP"},
	{ColPortTerisi, "Port Terisi"},
	{ColTOC, "TOC"},
	{ColBEP, "BEP"},
}

// NormalizedRow adalah baris setelah normalisasi (belum dihitung turunannya).
type NormalizedRow struct {
	Number         int
	Cells          map[string]string
	Regional       string
	Progress       string
	CirculirStatus string
	Stage          workflow.Stage
}

// Get membaca nilai mentah sel (default "").
func (n NormalizedRow) Get(key string) string {
	return n.Cells[key]
}

// RowResult menampung hasil satu baris; Errors berisi SEMUA pelanggaran.
type RowResult struct {
	Row    NormalizedRow
	Errors []string
}

func (r RowResult) OK() bool { return len(r.Errors) == 0 }

// IsFiller: baris tanpa no_project DAN nama_project tidak ikut diimport.
func IsFiller(row Row) bool {
	return strings.TrimSpace(row.Get(ColNoProject)) == "" && strings.TrimSpace(row.Get(ColNamaProject)) == ""
}

// NormalizeRow menormalisasi lalu memvalidasi satu baris untuk divisi pengimport.
func NormalizeRow(row Row, division string) RowResult {
	return normalizeRow(row, division, true)
}

// CheckFillerRow: baris filler tetap dicek nilai selnya, tanpa aturan wajib diisi.
// Errors kosong berarti baris boleh dilewati.
func CheckFillerRow(row Row, division string) RowResult {
	return normalizeRow(row, division, false)
}

func normalizeRow(row Row, division string, required bool) RowResult {
	n := row.Number
	res := RowResult{Row: NormalizedRow{Number: n, Cells: row.Cells}}
	if res.Row.Cells == nil {
		res.Row.Cells = map[string]string{}
	}
	// Number <= 0: input manual (form), tanpa prefix baris
	addErr := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		if n > 0 {
			msg = fmt.Sprintf("Baris %d: %s", n, msg)
		}
		res.Errors = append(res.Errors, msg)
	}

	// 1) wajib diisi, dicek sebelum normalisasi
	for _, col := range requiredColumns {
		if required && strings.TrimSpace(row.Get(col.key)) == "" {
			addErr("%s wajib diisi", col.label)
		}
	}

	// normalisasi
	rawRegional := row.Get(ColRegional)
	res.Row.Regional = workflow.NormalizeRegional(rawRegional)
	res.Row.Progress = workflow.NormalizeProgress(row.Get(ColProgress))
	res.Row.CirculirStatus = workflow.NormalizeCirculir(row.Get(ColCirculirStatus))

	if noProject := strings.TrimSpace(row.Get(ColNoProject)); len([]rune(noProject)) > maxNoProjectLen {
		addErr("No Project %q melebihi %d karakter", noProject, maxNoProjectLen)
	}

	// 2) regional
	if strings.TrimSpace(rawRegional) != "" && !workflow.IsRegional(res.Row.Regional) {
		addErr("Regional %q tidak valid. Pilihan: %s", res.Row.Regional, strings.Join(workflow.Regionals, ", "))
	}

	// 3) progress
	if res.Row.Progress != "" && !workflow.IsCanonicalProgress(res.Row.Progress) {
		msg := fmt.Sprintf("Progress %q tidak valid", res.Row.Progress)
		if s := workflow.SuggestProgress(res.Row.Progress); s != "" {
			msg += fmt.Sprintf(" (mungkin maksud Anda %q?)", s)
		}
		addErr("%s", msg)
	}

	// 4) circulir_status
	if res.Row.CirculirStatus != "" && !workflow.IsCirculirStatus(res.Row.CirculirStatus) {
		addErr("Circulir Status %q tidak valid. Pilihan: %s", res.Row.CirculirStatus, strings.Join(workflow.CirculirStatuses, ", "))
	}

	// 5) kolom angka
	for _, col := range numericColumns {
		v := strings.TrimSpace(row.Get(col.key))
		if v == "" {
			continue
		}
		if _, ok := ParseNumber(v); !ok {
			addErr("%s harus berupa angka (nilai: %q)", col.label, v)
		}
	}

	// 6) otorisasi divisi terhadap UIC turunan progress
	res.Row.Stage = workflow.Lookup(res.Row.Progress)
	if err := workflow.AuthorizeDivision(division, res.Row.Stage.UIC); err != nil {
		addErr("progress %q (UIC %s) tidak boleh diimport oleh divisi %s", res.Row.Progress, res.Row.Stage.UIC, strings.ToUpper(division))
	}

	return res
}

// ParseNumber mengikuti Number() spreadsheet/JS: spasi diabaikan, kosong = 0,
// NaN/Infinity ditolak.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	// "1_000" diterima strconv, Number() tidak
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	if base, digits, ok := radixPrefix(s); ok {
		n, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// radixPrefix: 0x/0o/0b tanpa tanda, sama seperti Number().
func radixPrefix(s string) (int, string, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}

// NumberString: Number(x) || 0 lalu distringkan.
func NumberString(s string) string {
	f, ok := ParseNumber(s)
	if !ok {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
