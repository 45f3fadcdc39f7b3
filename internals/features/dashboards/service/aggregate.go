package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"ftth_backend/internals/features/projects/importer"
	"ftth_backend/internals/features/projects/project/model"
	"ftth_backend/internals/features/projects/workflow"
)

// label progress kosong di breakdown
const NoProgressLabel = "(belum diisi)"

type Summary struct {
	TotalProjects   int    `json:"total_projects"`
	TotalPort       string `json:"total_port"`
	TotalPortTerisi string `json:"total_port_terisi"`
	TotalIdlePort   string `json:"total_idle_port"`
	TotalRevenue    string `json:"total_revenue"`
	TotalCapex      string `json:"total_capex"`
	AvgOccupancy    string `json:"avg_occupancy"`
}

type RegionalStat struct {
	Regional   string `json:"regional"`
	Projects   int    `json:"projects"`
	Port       string `json:"port"`
	PortTerisi string `json:"port_terisi"`
	Revenue    string `json:"revenue"`
	Capex      string `json:"capex"`
	Occupancy  int    `json:"occupancy"`
}

type ProgressStat struct {
	Progress   string `json:"progress"`
	Status     string `json:"status"`
	UIC        string `json:"uic"`
	Percentage int    `json:"percentage"`
	Count      int    `json:"count"`
}

type CountStat struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

func dec(s string) decimal.Decimal {
	return importer.Revenue(s)
}

// Summarize: total & rata-rata occupancy (hanya project dengan port > 0).
func Summarize(rows []model.ProjectModel) Summary {
	var port, terisi, idle, revenue, capex, occSum decimal.Decimal
	occN := 0
	for _, r := range rows {
		p, t := dec(r.Port), dec(r.PortTerisi)
		port = port.Add(p)
		terisi = terisi.Add(t)
		if d := p.Sub(t); d.IsPositive() {
			idle = idle.Add(d)
		}
		revenue = revenue.Add(dec(r.Revenue))
		capex = capex.Add(dec(r.Capex))
		if p.IsPositive() {
			occSum = occSum.Add(dec(r.Occupancy))
			occN++
		}
	}
	avg := decimal.Zero
	if occN > 0 {
		avg = occSum.Div(decimal.NewFromInt(int64(occN))).Round(2)
	}
	return Summary{
		TotalProjects:   len(rows),
		TotalPort:       port.String(),
		TotalPortTerisi: terisi.String(),
		TotalIdlePort:   idle.String(),
		TotalRevenue:    revenue.String(),
		TotalCapex:      capex.String(),
		AvgOccupancy:    avg.StringFixed(2),
	}
}

// ByRegional: urut sesuai daftar regional, regional lain (data lama) di belakang.
func ByRegional(rows []model.ProjectModel) []RegionalStat {
	type acc struct {
		n                      int
		port, terisi, rev, capex decimal.Decimal
	}
	groups := map[string]*acc{}
	for _, r := range rows {
		k := strings.ToUpper(strings.TrimSpace(r.Regional))
		g := groups[k]
		if g == nil {
			g = &acc{}
			groups[k] = g
		}
		g.n++
		g.port = g.port.Add(dec(r.Port))
		g.terisi = g.terisi.Add(dec(r.PortTerisi))
		g.rev = g.rev.Add(dec(r.Revenue))
		g.capex = g.capex.Add(dec(r.Capex))
	}

	keys := orderedKeys(groups, workflow.Regionals)
	out := make([]RegionalStat, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		out = append(out, RegionalStat{
			Regional:   k,
			Projects:   g.n,
			Port:       g.port.String(),
			PortTerisi: g.terisi.String(),
			Revenue:    g.rev.String(),
			Capex:      g.capex.String(),
			Occupancy:  importer.Occupancy(g.port.InexactFloat64(), g.terisi.InexactFloat64()),
		})
	}
	return out
}

// ByProgress: semua progress kanonik (count 0 tetap tampil) urut persentase.
func ByProgress(rows []model.ProjectModel) []ProgressStat {
	counts := map[string]int{}
	for _, r := range rows {
		k := NoProgressLabel
		if r.Progress != nil && strings.TrimSpace(*r.Progress) != "" {
			k = strings.TrimSpace(*r.Progress)
		}
		counts[k]++
	}

	out := make([]ProgressStat, 0, len(workflow.ProgressOrder)+1)
	seen := map[string]bool{}
	for _, p := range workflow.ProgressOrder {
		st := workflow.Lookup(p)
		out = append(out, ProgressStat{Progress: p, Status: st.Status, UIC: st.UIC, Percentage: st.Percentage, Count: counts[p]})
		seen[p] = true
	}
	rest := make([]string, 0)
	for k := range counts {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		st := workflow.DefaultStage
		out = append(out, ProgressStat{Progress: k, Status: st.Status, UIC: st.UIC, Percentage: st.Percentage, Count: counts[k]})
	}
	return out
}

var statusOrder = []string{
	workflow.StatusReject,
	workflow.StatusPending,
	workflow.StatusPlan,
	workflow.StatusOngoing,
	workflow.StatusRFS,
}

var uicOrder = []string{workflow.UICPlanning, workflow.UICDeployment, workflow.UICBoth}

func ByStatus(rows []model.ProjectModel) []CountStat {
	return countBy(rows, func(p model.ProjectModel) string { return p.Status }, statusOrder)
}

func ByUIC(rows []model.ProjectModel) []CountStat {
	return countBy(rows, func(p model.ProjectModel) string { return p.UIC }, uicOrder)
}

func countBy(rows []model.ProjectModel, key func(model.ProjectModel) string, order []string) []CountStat {
	counts := map[string]*int{}
	for _, k := range order {
		counts[k] = new(int)
	}
	for _, r := range rows {
		k := strings.TrimSpace(key(r))
		if counts[k] == nil {
			counts[k] = new(int)
		}
		*counts[k]++
	}
	keys := orderedKeys(counts, order)
	out := make([]CountStat, 0, len(keys))
	for _, k := range keys {
		out = append(out, CountStat{Key: k, Count: *counts[k]})
	}
	return out
}

// orderedKeys: key dari order dulu (yang ada di m), sisanya alfabetis.
func orderedKeys[V any](m map[string]V, order []string) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		if _, ok := m[k]; ok {
			out = append(out, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(m)-len(out))
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
