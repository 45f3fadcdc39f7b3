package importer

import (
	"regexp"
	"strings"
)

// Kunci kolom kanonik sama dengan nama kolom di tabel projects.
const (
	ColRegional       = "regional"
	ColNoProject      = "no_project"
	ColNamaProject    = "nama_project"
	ColPop            = "pop"
	ColNoSPK          = "no_spk"
	ColMitra          = "mitra"
	ColRemark         = "remark"
	ColIssue          = "issue"
	ColNextAction     = "next_action"
	ColPort           = "port"
	ColJumlahODP      = "jumlah_odp"
	ColPortTerisi     = "port_terisi"
	ColTOC            = "toc"
	ColBEP            = "bep"
	ColRevenue        = "revenue"
	ColStartPekerjaan = "start_pekerjaan"
	ColTargetActive   = "target_active"
	ColTanggalActive  = "tanggal_active"
	ColAgingTOC       = "aging_toc"
	ColTargetBEP      = "target_bep"
	ColProgress       = "progress"
	ColCirculirStatus = "circulir_status"
)

// TemplateColumns: urutan kolom pada sheet Data template import.
var TemplateColumns = []string{
	ColRegional, ColNoProject, ColNamaProject, ColPop, ColNoSPK, ColMitra,
	ColPort, ColJumlahODP, ColPortTerisi, ColTOC, ColBEP, ColRevenue,
	ColStartPekerjaan, ColTargetActive, ColTanggalActive, ColAgingTOC, ColTargetBEP,
	ColProgress, ColCirculirStatus, ColRemark, ColIssue, ColNextAction,
}

var headerAliases = map[string]string{
	"nomor_project":    ColNoProject,
	"no_proyek":        ColNoProject,
	"project_no":       ColNoProject,
	"project_id":       ColNoProject,
	"nama":             ColNamaProject,
	"nama_proyek":      ColNamaProject,
	"project_name":     ColNamaProject,
	"nama_lop":         ColNamaProject,
	"sto":              ColPop,
	"nomor_spk":        ColNoSPK,
	"spk":              ColNoSPK,
	"vendor":           ColMitra,
	"odp":              ColJumlahODP,
	"jml_odp":          ColJumlahODP,
	"total_port":       ColPort,
	"jumlah_port":      ColPort,
	"terisi":           ColPortTerisi,
	"port_used":        ColPortTerisi,
	"toc_hari":         ColTOC,
	"bep_bulan":        ColBEP,
	"nilai_revenue":    ColRevenue,
	"start":            ColStartPekerjaan,
	"mulai_pekerjaan":  ColStartPekerjaan,
	"tgl_active":       ColTanggalActive,
	"tanggal_aktif":    ColTanggalActive,
	"target_aktif":     ColTargetActive,
	"status_progress":  ColProgress,
	"circulir":         ColCirculirStatus,
	"status_circulir":  ColCirculirStatus,
	"keterangan":       ColRemark,
	"catatan":          ColRemark,
	"kendala":          ColIssue,
	"tindak_lanjut":    ColNextAction,
	"next_action_plan": ColNextAction,
}

var (
	parenRe   = regexp.MustCompile(`\([^)]*\)`)
	nonWordRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// CanonicalHeader mengubah label header ("No Project*", "TOC (hari)") menjadi kunci kolom.
func CanonicalHeader(label string) string {
	h := strings.ToLower(strings.TrimSpace(label))
	h = parenRe.ReplaceAllString(h, "")
	h = strings.Trim(nonWordRe.ReplaceAllString(h, "_"), "_")
	if h == "" {
		return ""
	}
	if canonical, ok := headerAliases[h]; ok {
		return canonical
	}
	return h
}
