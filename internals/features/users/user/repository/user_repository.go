package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ftth_backend/internals/features/users/user/model"
)

var ErrUserNotFound = errors.New("user tidak ditemukan")

type ListFilter struct {
	Role     string
	Division string
	Active   *bool
	Search   string
	Limit    int
	Offset   int
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// FindByIdentifier: email atau user_name.
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.UserModel, error) {
	identifier = strings.TrimSpace(identifier)
	var u model.UserModel
	if err := r.DB.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) OR user_name = ?", identifier, identifier).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// DivisionOf: satu-satunya read profil untuk import.
func (r *UserRepository) DivisionOf(ctx context.Context, userID uuid.UUID) (string, error) {
	var row struct{ Division *string }
	err := r.DB.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("division").
		Where("id = ?", userID).
		Take(&row).Error
	if err != nil {
		return "", notFound(err)
	}
	if row.Division == nil {
		return "", nil
	}
	return strings.ToUpper(strings.TrimSpace(*row.Division)), nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.UserModel) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

// Update kolom tertentu saja (map → zero value ikut tersimpan).
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.UserModel, error) {
	res := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	res := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

func (r *UserRepository) IsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	var row struct{ IsActive bool }
	if err := r.DB.WithContext(ctx).Model(&model.UserModel{}).
		Select("is_active").Where("id = ?", id).Take(&row).Error; err != nil {
		return false, notFound(err)
	}
	return row.IsActive, nil
}

func (r *UserRepository) List(ctx context.Context, f ListFilter) ([]model.UserModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.UserModel{})
	if v := strings.TrimSpace(f.Role); v != "" {
		q = q.Where("role = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(f.Division); v != "" {
		q = q.Where("division = ?", strings.ToUpper(v))
	}
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("(user_name ILIKE ? OR email ILIKE ? OR full_name ILIKE ?)", like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.UserModel
	err := q.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&users).Error
	return users, total, err
}

// DeactivateStale menonaktifkan akun non-admin yang tidak login sejak cutoff
// (created_at dipakai bila belum pernah login).
func (r *UserRepository) DeactivateStale(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("is_active = ? AND role <> ?", true, "admin").
		Where("COALESCE(last_login_at, created_at) < ?", cutoff).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
