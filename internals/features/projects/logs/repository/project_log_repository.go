package repository

import (
	"context"
	"reflect"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ftth_backend/internals/features/projects/logs/model"
)

// kolom yang selalu berubah, tidak dihitung sebagai perubahan
var ignoredDiffFields = map[string]bool{
	"updated_at":      true,
	"update_progress": true,
	"created_at":      true,
}

type ProjectLogRepository struct {
	DB *gorm.DB
}

func NewProjectLogRepository(db *gorm.DB) *ProjectLogRepository {
	return &ProjectLogRepository{DB: db}
}

// NewEntry membuat log dengan snapshot JSON dari project sesudah perubahan.
func NewEntry(projectID uuid.UUID, action string, changed []string, snapshot any, actor *uuid.UUID) (model.ProjectLogModel, error) {
	raw, err := sonic.Marshal(snapshot)
	if err != nil {
		return model.ProjectLogModel{}, err
	}
	return model.ProjectLogModel{
		ProjectID:     projectID,
		Action:        action,
		ChangedFields: changed,
		Snapshot:      datatypes.JSON(raw),
		ActorID:       actor,
	}, nil
}

// ChangedFields membandingkan dua nilai lewat bentuk JSON-nya (per key).
func ChangedFields(before, after any) ([]string, error) {
	a, err := toMap(before)
	if err != nil {
		return nil, err
	}
	b, err := toMap(after)
	if err != nil {
		return nil, err
	}

	var out []string
	for k, bv := range b {
		if ignoredDiffFields[k] {
			continue
		}
		if av, ok := a[k]; !ok || !reflect.DeepEqual(av, bv) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}

func toMap(v any) (map[string]any, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := sonic.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *ProjectLogRepository) Append(ctx context.Context, entries ...model.ProjectLogModel) error {
	if len(entries) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(&entries, 200).Error
}

func (r *ProjectLogRepository) ListByProject(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]model.ProjectLogModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.ProjectLogModel{}).Where("project_id = ?", projectID)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.ProjectLogModel
	err := q.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, total, err
}
