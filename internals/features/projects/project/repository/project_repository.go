package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ftth_backend/internals/features/projects/project/model"
)

var ErrProjectNotFound = errors.New("project tidak ditemukan")

const insertBatchSize = 200

// Filter untuk list project; field kosong = tidak difilter.
type Filter struct {
	Regional       string
	Division       string
	UIC            string
	Status         string
	Progress       string
	CirculirStatus string
	Search         string
	Archived       *bool

	Limit   int
	Offset  int
	OrderBy string // kolom sudah di-whitelist oleh caller, mis. "updated_at DESC"
}

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

// InsertBatch: seluruh batch dalam satu transaksi, gagal satu = rollback semua.
func (r *ProjectRepository) InsertBatch(ctx context.Context, rows []model.ProjectModel) ([]model.ProjectModel, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, insertBatchSize).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.ProjectModel) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// Update menyimpan semua kolom yang bisa diubah; kolom generated tidak ikut.
func (r *ProjectRepository) Update(ctx context.Context, p *model.ProjectModel) error {
	return r.DB.WithContext(ctx).
		Model(p).
		Select("*").
		Omit("id", "idle_port", "created_at", "created_by").
		Updates(p).Error
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ProjectModel, error) {
	var p model.ProjectModel
	err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if v := strings.TrimSpace(f.Regional); v != "" {
		q = q.Where("regional = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(f.Division); v != "" {
		q = q.Where("division = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(f.UIC); v != "" {
		q = q.Where("uic = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(f.Status); v != "" {
		q = q.Where("status = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(f.Progress); v != "" {
		q = q.Where("progress = ?", v)
	}
	if v := strings.TrimSpace(f.CirculirStatus); v != "" {
		q = q.Where("circulir_status = ?", strings.ToLower(v))
	}
	if f.Archived != nil {
		q = q.Where("is_archived = ?", *f.Archived)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("(no_project ILIKE ? OR nama_project ILIKE ? OR pop ILIKE ? OR mitra ILIKE ?)", like, like, like, like)
	}
	return q
}

// List mengembalikan halaman data + total sebelum paging.
func (r *ProjectRepository) List(ctx context.Context, f Filter) ([]model.ProjectModel, int64, error) {
	base := r.applyFilter(r.DB.WithContext(ctx).Model(&model.ProjectModel{}), f)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base.Session(&gorm.Session{})
	if f.OrderBy != "" {
		q = q.Order(f.OrderBy)
	} else {
		q = q.Order("updated_at DESC")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []model.ProjectModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// SetArchived: archive/restore, mengembalikan baris terbaru.
func (r *ProjectRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool, now time.Time) (*model.ProjectModel, error) {
	updates := map[string]any{"is_archived": archived, "archived_at": nil, "updated_at": now}
	if archived {
		updates["archived_at"] = now
	}
	res := r.DB.WithContext(ctx).Model(&model.ProjectModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrProjectNotFound
	}
	return r.FindByID(ctx, id)
}

// LookupCandidates: no_project & nama_project semua project aktif untuk pencarian fuzzy.
func (r *ProjectRepository) LookupCandidates(ctx context.Context) ([]LookupRow, error) {
	var rows []LookupRow
	err := r.DB.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Select("id, no_project, nama_project, regional, progress").
		Where("is_archived = ?", false).
		Scan(&rows).Error
	return rows, err
}

type LookupRow struct {
	ID          uuid.UUID `json:"id"`
	NoProject   string    `json:"no_project"`
	NamaProject string    `json:"nama_project"`
	Regional    string    `json:"regional"`
	Progress    *string   `json:"progress"`
}
