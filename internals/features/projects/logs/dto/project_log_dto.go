package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"ftth_backend/internals/features/projects/logs/model"
)

type ProjectLogDTO struct {
	ID            uuid.UUID       `json:"id"`
	ProjectID     uuid.UUID       `json:"project_id"`
	Action        string          `json:"action"`
	ChangedFields []string        `json:"changed_fields"`
	Snapshot      json.RawMessage `json:"snapshot,omitempty"`
	ActorID       *uuid.UUID      `json:"actor_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToProjectLogDTO(m model.ProjectLogModel) ProjectLogDTO {
	changed := []string(m.ChangedFields)
	if changed == nil {
		changed = []string{}
	}
	out := ProjectLogDTO{
		ID:            m.ID,
		ProjectID:     m.ProjectID,
		Action:        m.Action,
		ChangedFields: changed,
		ActorID:       m.ActorID,
		CreatedAt:     m.CreatedAt,
	}
	if len(m.Snapshot) > 0 {
		out.Snapshot = json.RawMessage(m.Snapshot)
	}
	return out
}

func ToProjectLogDTOs(rows []model.ProjectLogModel) []ProjectLogDTO {
	out := make([]ProjectLogDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToProjectLogDTO(r))
	}
	return out
}
