package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ftth_backend/internals/features/projects/project/model"
)

var capexRatio = decimal.RequireFromString("0.6")

// BuildRecord menghitung kolom turunan dari baris yang sudah lolos validasi.
// status/uic/persentase selalu dari tabel progress, tidak pernah dari input.
// idle_port tidak diisi (generated column).
func BuildRecord(row NormalizedRow, division string, now time.Time) model.ProjectModel {
	port, _ := ParseNumber(row.Get(ColPort))
	terisi, _ := ParseNumber(row.Get(ColPortTerisi))
	revenue := Revenue(row.Get(ColRevenue))

	rec := model.ProjectModel{
		Regional:    strings.ToUpper(row.Regional),
		NoProject:   strings.TrimSpace(row.Get(ColNoProject)),
		NamaProject: strings.TrimSpace(row.Get(ColNamaProject)),
		Pop:         strings.TrimSpace(row.Get(ColPop)),
		NoSPK:       optionalText(row.Get(ColNoSPK)),
		Mitra:       optionalText(row.Get(ColMitra)),
		Remark:      optionalText(row.Get(ColRemark)),
		Issue:       optionalText(row.Get(ColIssue)),
		NextAction:  optionalText(row.Get(ColNextAction)),

		Port:       NumberString(row.Get(ColPort)),
		JumlahODP:  NumberString(row.Get(ColJumlahODP)),
		PortTerisi: NumberString(row.Get(ColPortTerisi)),
		TOC:        NumberString(row.Get(ColTOC)),
		BEP:        NumberString(row.Get(ColBEP)),
		Revenue:    revenue.String(),
		Capex:      Capex(revenue).String(),
		Occupancy:  strconv.Itoa(Occupancy(port, terisi)),

		StartPekerjaan: CoerceDate(row.Get(ColStartPekerjaan)),
		TargetActive:   CoerceDate(row.Get(ColTargetActive)),
		TanggalActive:  CoerceDate(row.Get(ColTanggalActive)),
		AgingTOC:       CoerceDate(row.Get(ColAgingTOC)),
		TargetBEP:      CoerceDate(row.Get(ColTargetBEP)),

		Progress:       optionalText(row.Progress),
		Status:         row.Stage.Status,
		UIC:            row.Stage.UIC,
		Persentase:     strconv.Itoa(row.Stage.Percentage),
		CirculirStatus: optionalText(row.CirculirStatus),
		UpdateProgress: &now,
		Division:       optionalText(strings.ToUpper(strings.TrimSpace(division))),
	}
	return rec
}

// Occupancy = round(port_terisi / port × 100), 0 bila port <= 0.
func Occupancy(port, terisi float64) int {
	if port <= 0 {
		return 0
	}
	return int(math.Floor(terisi/port*100 + 0.5))
}

// Capex = revenue × 0.6
func Capex(revenue decimal.Decimal) decimal.Decimal {
	return revenue.Mul(capexRatio)
}

// Revenue: nilai tidak valid atau kosong menjadi 0.
func Revenue(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		if f, ok := ParseNumber(s); ok {
			return decimal.NewFromFloat(f)
		}
		return decimal.Zero
	}
	return d
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
