package database

import (
	"fmt"

	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	logModel "ftth_backend/internals/features/projects/logs/model"
	projectModel "ftth_backend/internals/features/projects/project/model"
	authModel "ftth_backend/internals/features/users/auth/model"
	userModel "ftth_backend/internals/features/users/user/model"
)

// Models: urutan penting (users dulu, project_logs terakhir).
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&projectModel.ProjectModel{},
		&logModel.ProjectLogModel{},
	}
}

// idle_port dihitung DB, tidak pernah ditulis aplikasi.
var idlePortDDL = fmt.Sprintf(
	`ALTER TABLE projects ADD COLUMN IF NOT EXISTS idle_port numeric GENERATED ALWAYS AS (%s) STORED`,
	projectModel.IdlePortExpr,
)

func Migrate(db *gorm.DB) error {
	configs.Log.Info("🛠️ AutoMigrate...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		// Supabase sudah punya gen_random_uuid(); cukup warning
		configs.Log.Warnf("pgcrypto: %v", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec(idlePortDDL).Error; err != nil {
		return fmt.Errorf("idle_port column: %w", err)
	}
	configs.Log.Info("✅ Migrasi selesai")
	return nil
}
