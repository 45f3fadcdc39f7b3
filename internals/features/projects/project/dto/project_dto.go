package dto

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"ftth_backend/internals/features/projects/importer"
	"ftth_backend/internals/features/projects/project/model"
)

// FlexString menerima string, angka, atau null dari JSON.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(string(b))
	return nil
}

func (f FlexString) String() string { return string(f) }

// ====================
// Request DTO
// ====================

// ProjectRequest dipakai create & update (PUT = ganti penuh).
// status/uic/persentase/occupancy/capex sengaja tidak ada: selalu dihitung server.
type ProjectRequest struct {
	Regional       FlexString `json:"regional"`
	NoProject      FlexString `json:"no_project"`
	NamaProject    FlexString `json:"nama_project"`
	Pop            FlexString `json:"pop"`
	NoSPK          FlexString `json:"no_spk"`
	Mitra          FlexString `json:"mitra"`
	Port           FlexString `json:"port"`
	JumlahODP      FlexString `json:"jumlah_odp"`
	PortTerisi     FlexString `json:"port_terisi"`
	TOC            FlexString `json:"toc"`
	BEP            FlexString `json:"bep"`
	Revenue        FlexString `json:"revenue"`
	StartPekerjaan FlexString `json:"start_pekerjaan"`
	TargetActive   FlexString `json:"target_active"`
	TanggalActive  FlexString `json:"tanggal_active"`
	AgingTOC       FlexString `json:"aging_toc"`
	TargetBEP      FlexString `json:"target_bep"`
	Progress       FlexString `json:"progress"`
	CirculirStatus FlexString `json:"circulir_status"`
	Remark         FlexString `json:"remark"`
	Issue          FlexString `json:"issue"`
	NextAction     FlexString `json:"next_action"`
}

// ToRow: request → baris import tanpa nomor (validasi sama persis dengan import).
func (r ProjectRequest) ToRow() importer.Row {
	return importer.Row{Cells: map[string]string{
		importer.ColRegional:       r.Regional.String(),
		importer.ColNoProject:      r.NoProject.String(),
		importer.ColNamaProject:    r.NamaProject.String(),
		importer.ColPop:            r.Pop.String(),
		importer.ColNoSPK:          r.NoSPK.String(),
		importer.ColMitra:          r.Mitra.String(),
		importer.ColPort:           r.Port.String(),
		importer.ColJumlahODP:      r.JumlahODP.String(),
		importer.ColPortTerisi:     r.PortTerisi.String(),
		importer.ColTOC:            r.TOC.String(),
		importer.ColBEP:            r.BEP.String(),
		importer.ColRevenue:        r.Revenue.String(),
		importer.ColStartPekerjaan: r.StartPekerjaan.String(),
		importer.ColTargetActive:   r.TargetActive.String(),
		importer.ColTanggalActive:  r.TanggalActive.String(),
		importer.ColAgingTOC:       r.AgingTOC.String(),
		importer.ColTargetBEP:      r.TargetBEP.String(),
		importer.ColProgress:       r.Progress.String(),
		importer.ColCirculirStatus: r.CirculirStatus.String(),
		importer.ColRemark:         r.Remark.String(),
		importer.ColIssue:          r.Issue.String(),
		importer.ColNextAction:     r.NextAction.String(),
	}}
}

// ListQuery: query string GET /api/projects
type ListQuery struct {
	Regional       string `query:"regional"`
	Division       string `query:"division"`
	UIC            string `query:"uic"`
	Status         string `query:"status"`
	Progress       string `query:"progress"`
	CirculirStatus string `query:"circulir_status"`
	Search         string `query:"q"`
	Archived       string `query:"archived"` // "true" | "false" | "all"
}

// ArchivedFilter: default hanya project aktif.
func (q ListQuery) ArchivedFilter() *bool {
	switch strings.ToLower(strings.TrimSpace(q.Archived)) {
	case "all":
		return nil
	case "":
		f := false
		return &f
	default:
		v, err := strconv.ParseBool(q.Archived)
		if err != nil {
			f := false
			return &f
		}
		return &v
	}
}

// ====================
// Response DTO
// ====================

type ProjectDTO struct {
	ID             uuid.UUID  `json:"id"`
	Regional       string     `json:"regional"`
	NoProject      string     `json:"no_project"`
	NamaProject    string     `json:"nama_project"`
	Pop            string     `json:"pop"`
	NoSPK          *string    `json:"no_spk"`
	Mitra          *string    `json:"mitra"`
	Port           float64    `json:"port"`
	JumlahODP      float64    `json:"jumlah_odp"`
	PortTerisi     float64    `json:"port_terisi"`
	IdlePort       float64    `json:"idle_port"`
	TOC            float64    `json:"toc"`
	BEP            float64    `json:"bep"`
	Revenue        string     `json:"revenue"`
	Capex          string     `json:"capex"`
	Occupancy      float64    `json:"occupancy"`
	StartPekerjaan *string    `json:"start_pekerjaan"`
	TargetActive   *string    `json:"target_active"`
	TanggalActive  *string    `json:"tanggal_active"`
	AgingTOC       *string    `json:"aging_toc"`
	TargetBEP      *string    `json:"target_bep"`
	Progress       *string    `json:"progress"`
	Status         string     `json:"status"`
	UIC            string     `json:"uic"`
	Persentase     float64    `json:"persentase"`
	CirculirStatus *string    `json:"circulir_status"`
	Remark         *string    `json:"remark"`
	Issue          *string    `json:"issue"`
	NextAction     *string    `json:"next_action"`
	UpdateProgress *time.Time `json:"update_progress"`
	Division       *string    `json:"division"`
	IsArchived     bool       `json:"is_archived"`
	ArchivedAt     *time.Time `json:"archived_at"`
	CreatedBy      *uuid.UUID `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func num(s string) float64 {
	f, _ := importer.ParseNumber(s)
	return f
}

func ToProjectDTO(p model.ProjectModel) ProjectDTO {
	idle := 0.0
	if p.IdlePort != nil {
		idle = num(*p.IdlePort)
	}
	return ProjectDTO{
		ID:             p.ID,
		Regional:       p.Regional,
		NoProject:      p.NoProject,
		NamaProject:    p.NamaProject,
		Pop:            p.Pop,
		NoSPK:          p.NoSPK,
		Mitra:          p.Mitra,
		Port:           num(p.Port),
		JumlahODP:      num(p.JumlahODP),
		PortTerisi:     num(p.PortTerisi),
		IdlePort:       idle,
		TOC:            num(p.TOC),
		BEP:            num(p.BEP),
		Revenue:        p.Revenue,
		Capex:          p.Capex,
		Occupancy:      num(p.Occupancy),
		StartPekerjaan: p.StartPekerjaan,
		TargetActive:   p.TargetActive,
		TanggalActive:  p.TanggalActive,
		AgingTOC:       p.AgingTOC,
		TargetBEP:      p.TargetBEP,
		Progress:       p.Progress,
		Status:         p.Status,
		UIC:            p.UIC,
		Persentase:     num(p.Persentase),
		CirculirStatus: p.CirculirStatus,
		Remark:         p.Remark,
		Issue:          p.Issue,
		NextAction:     p.NextAction,
		UpdateProgress: p.UpdateProgress,
		Division:       p.Division,
		IsArchived:     p.IsArchived,
		ArchivedAt:     p.ArchivedAt,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToProjectDTOs(rows []model.ProjectModel) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToProjectDTO(r))
	}
	return out
}

// ImportResponse: ringkasan import sukses.
type ImportResponse struct {
	Sheet    string `json:"sheet"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Total    int    `json:"total_rows"`
}
