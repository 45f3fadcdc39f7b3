// Package workflow memegang tabel tetap alur kerja project FTTH:
// progress → {status, uic, persentase}, alias progress, regional, dan status circulir.
package workflow

import "strings"

const (
	UICPlanning   = "PLANNING"
	UICDeployment = "DEPLOYMENT"
	UICBoth       = "PLANNING & DEPLOYMENT"

	StatusReject  = "REJECT"
	StatusPending = "PENDING"
	StatusPlan    = "PLAN"
	StatusOngoing = "ONGOING"
	StatusRFS     = "RFS"
)

// Stage adalah turunan dari satu nilai progress.
type Stage struct {
	Status     string `json:"status"`
	UIC        string `json:"uic"`
	Percentage int    `json:"percentage"`
}

// DefaultStage dipakai bila progress kosong.
var DefaultStage = Stage{Status: StatusPending, UIC: UICBoth, Percentage: 0}

// ProgressOrder: urutan kanonik, dipakai untuk saran dan urutan dashboard.
var ProgressOrder = []string{
	"REJECT",
	"PENDING / HOLD",
	"CREATED BOQ",
	"CHECKED BOQ",
	"BEP",
	"APPROVED",
	"SPK SURVEY",
	"SURVEY",
	"DRM",
	"APPROVED BOQ DRM",
	"SPK",
	"MOS",
	"PERIZINAN",
	"CONST",
	"COMMTEST",
	"UT",
	"REKON",
	"BAST",
	"BALOP",
	"DONE",
}

var progressMapping = map[string]Stage{
	"REJECT":           {StatusReject, UICBoth, 0},
	"PENDING / HOLD":   {StatusPending, UICBoth, 0},
	"CREATED BOQ":      {StatusPlan, UICPlanning, 5},
	"CHECKED BOQ":      {StatusPlan, UICPlanning, 10},
	"BEP":              {StatusPlan, UICPlanning, 15},
	"APPROVED":         {StatusPlan, UICPlanning, 20},
	"SPK SURVEY":       {StatusPlan, UICPlanning, 25},
	"SURVEY":           {StatusPlan, UICPlanning, 30},
	"DRM":              {StatusPlan, UICPlanning, 35},
	"APPROVED BOQ DRM": {StatusPlan, UICPlanning, 40},
	"SPK":              {StatusOngoing, UICDeployment, 45},
	"MOS":              {StatusOngoing, UICDeployment, 50},
	"PERIZINAN":        {StatusOngoing, UICDeployment, 55},
	"CONST":            {StatusOngoing, UICDeployment, 65},
	"COMMTEST":         {StatusOngoing, UICDeployment, 75},
	"UT":               {StatusOngoing, UICDeployment, 80},
	"REKON":            {StatusRFS, UICDeployment, 82},
	"BAST":             {StatusRFS, UICDeployment, 85},
	"BALOP":            {StatusRFS, UICDeployment, 90},
	"DONE":             {StatusRFS, UICDeployment, 100},
}

// progressAliases: kunci sudah dalam bentuk ternormalisasi (upper, spasi tunggal).
var progressAliases = map[string]string{
	"HOLD":              "PENDING / HOLD",
	"PENDING":           "PENDING / HOLD",
	"CANCEL":            "REJECT",
	"CANCELLED":         "REJECT",
	"CANCELED":          "REJECT",
	"RFS":               "REKON",
	"READY FOR SERVICE": "REKON",
	"CONSTRUCTION":      "CONST",
	"COMPLETE":          "DONE",
	"COMPLETED":         "DONE",
	"FINISH":            "DONE",
	"FINISHED":          "DONE",
	"DEPLOYMENT":        "DONE",
}

// Lookup mengembalikan turunan progress; DefaultStage untuk kosong/tidak dikenal.
func Lookup(progress string) Stage {
	if st, ok := progressMapping[strings.TrimSpace(progress)]; ok {
		return st
	}
	return DefaultStage
}

// IsCanonicalProgress: true bila progress persis salah satu nilai kanonik.
func IsCanonicalProgress(progress string) bool {
	_, ok := progressMapping[progress]
	return ok
}

// ResolveAlias mengganti alias dengan nilai kanoniknya; selain alias dikembalikan apa adanya.
func ResolveAlias(normalized string) string {
	if canonical, ok := progressAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// Aliases mengembalikan salinan tabel alias (untuk panduan template import).
func Aliases() map[string]string {
	out := make(map[string]string, len(progressAliases))
	for k, v := range progressAliases {
		out[k] = v
	}
	return out
}

// SuggestProgress mencari nilai kanonik yang mirip secara substring (case-insensitive).
// Match pertama menurut ProgressOrder menang; "" bila tidak ada.
func SuggestProgress(candidate string) string {
	c := strings.ToUpper(strings.TrimSpace(candidate))
	if c == "" {
		return ""
	}
	for _, p := range ProgressOrder {
		if strings.Contains(c, p) || strings.Contains(p, c) || strings.HasPrefix(p, c) {
			return p
		}
	}
	return ""
}
