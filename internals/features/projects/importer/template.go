package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"ftth_backend/internals/features/projects/project/model"
	"ftth_backend/internals/features/projects/workflow"
)

const (
	GuideSheetName = "Panduan"
	DataSheetName  = "Data"
)

var columnLabels = map[string]string{
	ColRegional:       "Regional*",
	ColNoProject:      "No Project*",
	ColNamaProject:    "Nama Project*",
	ColPop:            "POP*",
	ColNoSPK:          "No SPK",
	ColMitra:          "Mitra",
	ColPort:           "Port",
	ColJumlahODP:      "Jumlah ODP",
	ColPortTerisi:     "Port Terisi",
	ColTOC:            "TOC (hari)",
	ColBEP:            "BEP (bulan)",
	ColRevenue:        "Revenue",
	ColStartPekerjaan: "Start Pekerjaan",
	ColTargetActive:   "Target Active",
	ColTanggalActive:  "Tanggal Active",
	ColAgingTOC:       "Aging TOC",
	ColTargetBEP:      "Target BEP",
	ColProgress:       "Progress",
	ColCirculirStatus: "Circulir Status",
	ColRemark:         "Remark",
	ColIssue:          "Issue",
	ColNextAction:     "Next Action",
}

// kolom hasil hitungan hanya ada di export
var exportExtraColumns = []string{"Idle Port", "Occupancy (%)", "Capex", "Status", "UIC", "Persentase", "Division"}

func guideLines(maxRows int) []string {
	lines := []string{
		"PANDUAN IMPORT PROJECT FTTH",
		"",
		"1. Isi data pada sheet \"Data\". Baris pertama adalah header, jangan diubah.",
		"2. Kolom bertanda * wajib diisi: Regional, No Project, Nama Project, POP.",
		fmt.Sprintf("3. Maksimal %d baris data per file.", maxRows),
		"4. Regional: " + strings.Join(workflow.Regionals, ", ") + ".",
		"5. Circulir Status: " + strings.Join(workflow.CirculirStatuses, ", ") + ".",
		"6. Tanggal ditulis YYYY-MM-DD atau DD/MM/YYYY.",
		"7. Status, UIC, Persentase, Occupancy, dan Capex dihitung otomatis oleh sistem.",
		"8. Satu error pada baris mana pun membatalkan seluruh import.",
		"",
		"Progress yang valid (Status / UIC / %):",
	}
	for _, p := range workflow.ProgressOrder {
		st := workflow.Lookup(p)
		lines = append(lines, fmt.Sprintf("- %s → %s / %s / %d%%", p, st.Status, st.UIC, st.Percentage))
	}
	return lines
}

// WriteTemplate menulis template import (.xlsx) dengan sheet Panduan dan Data.
func WriteTemplate(w io.Writer, maxRows int) error {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", GuideSheetName); err != nil {
		return err
	}
	for i, line := range guideLines(maxRows) {
		if err := f.SetCellValue(GuideSheetName, fmt.Sprintf("A%d", i+1), line); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(GuideSheetName, "A", "A", 90)

	idx, err := f.NewSheet(DataSheetName)
	if err != nil {
		return err
	}
	header := make([]any, 0, len(TemplateColumns))
	for _, col := range TemplateColumns {
		header = append(header, columnLabels[col])
	}
	if err := f.SetSheetRow(DataSheetName, "A1", &header); err != nil {
		return err
	}
	example := []any{
		"JABAR", "PRJ001", "LOP Contoh", "POP1", "", "", 100, 8, 25, 30, 24, 500000000,
		"2024-01-15", "2024-03-01", "", "", "", "BAST", "ongoing", "", "", "",
	}
	if err := f.SetSheetRow(DataSheetName, "A2", &example); err != nil {
		return err
	}
	if err := styleHeader(f, DataSheetName, len(header)); err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	_, err = f.WriteTo(w)
	return err
}

// WriteExport menulis daftar project ke .xlsx dengan kolom template + kolom turunan.
func WriteExport(w io.Writer, rows []model.ProjectModel) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DataSheetName); err != nil {
		return err
	}

	header := make([]any, 0, len(TemplateColumns)+len(exportExtraColumns))
	for _, col := range TemplateColumns {
		header = append(header, strings.TrimSuffix(columnLabels[col], "*"))
	}
	for _, c := range exportExtraColumns {
		header = append(header, c)
	}

	sw, err := f.NewStreamWriter(DataSheetName)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, p := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, exportRow(p)); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func exportRow(p model.ProjectModel) []any {
	return []any{
		p.Regional, p.NoProject, p.NamaProject, p.Pop, deref(p.NoSPK), deref(p.Mitra),
		p.Port, p.JumlahODP, p.PortTerisi, p.TOC, p.BEP, p.Revenue,
		deref(p.StartPekerjaan), deref(p.TargetActive), deref(p.TanggalActive), deref(p.AgingTOC), deref(p.TargetBEP),
		deref(p.Progress), deref(p.CirculirStatus), deref(p.Remark), deref(p.Issue), deref(p.NextAction),
		deref(p.IdlePort), p.Occupancy, p.Capex, p.Status, p.UIC, p.Persentase, deref(p.Division),
	}
}

func styleHeader(f *excelize.File, sheet string, cols int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
