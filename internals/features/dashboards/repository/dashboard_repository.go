package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"ftth_backend/internals/features/projects/project/model"
)

type Filter struct {
	Regional string `query:"regional"`
	Division string `query:"division"`
}

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

// ActiveProjects: project non-arsip, kolom yang dipakai agregasi saja.
func (r *DashboardRepository) ActiveProjects(ctx context.Context, f Filter) ([]model.ProjectModel, error) {
	q := r.DB.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Select("id, regional, division, progress, status, uic, port, port_terisi, revenue, capex, occupancy").
		Where("is_archived = ?", false)
	if v := strings.TrimSpace(f.Regional); v != "" {
		q = q.Where("regional = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(f.Division); v != "" {
		q = q.Where("division = ?", strings.ToUpper(v))
	}

	var rows []model.ProjectModel
	err := q.Find(&rows).Error
	return rows, err
}
