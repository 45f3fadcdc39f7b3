package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName    string     `gorm:"column:user_name;size:50;not null;uniqueIndex" json:"user_name"`
	Email       string     `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password    string     `gorm:"column:password;not null" json:"-"`
	FullName    *string    `gorm:"column:full_name;size:120" json:"full_name"`
	Role        string     `gorm:"column:role;type:varchar(20);not null;default:'user'" json:"role"`
	Division    *string    `gorm:"column:division;type:varchar(30)" json:"division"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	LastLoginAt *time.Time `gorm:"column:last_login_at;type:timestamptz" json:"last_login_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// DivisionOrEmpty: divisi upper-case, "" bila belum diset.
func (u UserModel) DivisionOrEmpty() string {
	if u.Division == nil {
		return ""
	}
	return *u.Division
}
