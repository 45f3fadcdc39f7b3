package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionImport  = "import"
	ActionArchive = "archive"
	ActionRestore = "restore"
)

// ProjectLogModel: jejak perubahan satu project (append-only).
type ProjectLogModel struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID     uuid.UUID      `gorm:"column:project_id;type:uuid;not null;index" json:"project_id"`
	Action        string         `gorm:"column:action;type:varchar(20);not null" json:"action"`
	ChangedFields pq.StringArray `gorm:"column:changed_fields;type:text[]" json:"changed_fields"`
	Snapshot      datatypes.JSON `gorm:"column:snapshot;type:jsonb" json:"snapshot"`
	ActorID       *uuid.UUID     `gorm:"column:actor_id;type:uuid" json:"actor_id"`
	CreatedAt     time.Time      `gorm:"column:created_at;type:timestamptz;autoCreateTime;index" json:"created_at"`
}

func (ProjectLogModel) TableName() string {
	return "project_logs"
}
