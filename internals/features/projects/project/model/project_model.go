package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectModel merepresentasikan tabel projects.
// Kolom angka disimpan sebagai numeric dan dibawa sebagai string desimal;
// kolom tanggal bertipe text karena import boleh menyimpan string apa adanya.
type ProjectModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Regional    string  `gorm:"column:regional;type:varchar(20);not null;index" json:"regional"`
	NoProject   string  `gorm:"column:no_project;type:varchar(20);not null;uniqueIndex" json:"no_project"`
	NamaProject string  `gorm:"column:nama_project;type:text;not null" json:"nama_project"`
	Pop         string  `gorm:"column:pop;type:text;not null" json:"pop"`
	NoSPK       *string `gorm:"column:no_spk;type:text" json:"no_spk"`
	Mitra       *string `gorm:"column:mitra;type:text" json:"mitra"`
	Remark      *string `gorm:"column:remark;type:text" json:"remark"`
	Issue       *string `gorm:"column:issue;type:text" json:"issue"`
	NextAction  *string `gorm:"column:next_action;type:text" json:"next_action"`

	Port       string  `gorm:"column:port;type:numeric;not null;default:0" json:"port"`
	JumlahODP  string  `gorm:"column:jumlah_odp;type:numeric;not null;default:0" json:"jumlah_odp"`
	PortTerisi string  `gorm:"column:port_terisi;type:numeric;not null;default:0" json:"port_terisi"`
	IdlePort   *string `gorm:"column:idle_port;->;-:migration" json:"idle_port"` // generated column milik DB
	TOC        string  `gorm:"column:toc;type:numeric;not null;default:0" json:"toc"`
	BEP        string  `gorm:"column:bep;type:numeric;not null;default:0" json:"bep"`
	Revenue    string  `gorm:"column:revenue;type:numeric;not null;default:0" json:"revenue"`
	Capex      string  `gorm:"column:capex;type:numeric;not null;default:0" json:"capex"`
	Occupancy  string  `gorm:"column:occupancy;type:numeric;not null;default:0" json:"occupancy"`

	StartPekerjaan *string `gorm:"column:start_pekerjaan;type:text" json:"start_pekerjaan"`
	TargetActive   *string `gorm:"column:target_active;type:text" json:"target_active"`
	TanggalActive  *string `gorm:"column:tanggal_active;type:text" json:"tanggal_active"`
	AgingTOC       *string `gorm:"column:aging_toc;type:text" json:"aging_toc"`
	TargetBEP      *string `gorm:"column:target_bep;type:text" json:"target_bep"`

	Progress       *string    `gorm:"column:progress;type:varchar(40);index" json:"progress"`
	Status         string     `gorm:"column:status;type:varchar(20);not null;index" json:"status"`
	UIC            string     `gorm:"column:uic;type:varchar(40);not null;index" json:"uic"`
	Persentase     string     `gorm:"column:persentase;type:numeric;not null;default:0" json:"persentase"`
	CirculirStatus *string    `gorm:"column:circulir_status;type:varchar(10)" json:"circulir_status"`
	UpdateProgress *time.Time `gorm:"column:update_progress;type:timestamptz" json:"update_progress"`
	Division       *string    `gorm:"column:division;type:varchar(30);index" json:"division"`

	IsArchived bool       `gorm:"column:is_archived;not null;default:false;index" json:"is_archived"`
	ArchivedAt *time.Time `gorm:"column:archived_at;type:timestamptz" json:"archived_at"`
	CreatedBy  *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt  time.Time  `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

// IdlePortExpr dipakai migrasi untuk membuat generated column idle_port.
const IdlePortExpr = `GREATEST(port - port_terisi, 0)`
