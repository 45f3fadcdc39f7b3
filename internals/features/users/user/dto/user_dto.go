package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	uModel "ftth_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest: dibuat oleh admin
type CreateUserRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name" validate:"omitempty,max=120"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin user viewer"`
	Division *string `json:"division" validate:"omitempty,oneof=PLANNING DEPLOYMENT ADMIN planning deployment admin"`
	IsActive *bool   `json:"is_active"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	if r.Role == "" {
		r.Role = "user"
	}
	r.FullName = trimPtr(r.FullName)
	r.Division = upperPtr(r.Division)
}

// ToModel: password di-hash oleh service
func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	m := &uModel.UserModel{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Role:     r.Role,
		Division: r.Division,
		IsActive: true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

// UpdateUserRequest: partial (pointer = field dikirim)
type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=120"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user viewer"`
	Division *string `json:"division" validate:"omitempty,oneof=PLANNING DEPLOYMENT ADMIN planning deployment admin"`
	IsActive *bool   `json:"is_active"`
}

// Fields: map kolom untuk gorm Updates. Division "" → NULL.
func (r *UpdateUserRequest) Fields() map[string]any {
	out := map[string]any{}
	if r.FullName != nil {
		out["full_name"] = strings.TrimSpace(*r.FullName)
	}
	if r.Role != nil {
		out["role"] = strings.ToLower(strings.TrimSpace(*r.Role))
	}
	if r.Division != nil {
		if d := upperPtr(r.Division); d != nil {
			out["division"] = *d
		} else {
			out["division"] = nil
		}
	}
	if r.IsActive != nil {
		out["is_active"] = *r.IsActive
	}
	return out
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type ListUserQuery struct {
	Role     string `query:"role"`
	Division string `query:"division"`
	Active   *bool  `query:"is_active"`
	Search   string `query:"q"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserName    string     `json:"user_name"`
	Email       string     `json:"email"`
	FullName    *string    `json:"full_name"`
	Role        string     `json:"role"`
	Division    *string    `json:"division"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromModel(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:          m.ID,
		UserName:    m.UserName,
		Email:       m.Email,
		FullName:    m.FullName,
		Role:        m.Role,
		Division:    m.Division,
		IsActive:    m.IsActive,
		LastLoginAt: m.LastLoginAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModelList(list []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func upperPtr(s *string) *string {
	v := trimPtr(s)
	if v == nil {
		return nil
	}
	u := strings.ToUpper(*v)
	return &u
}
