package scheduler

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	authRepo "ftth_backend/internals/features/users/auth/repository"
	userRepo "ftth_backend/internals/features/users/user/repository"
)

const interval = 24 * time.Hour

// Report: hasil satu putaran cleanup.
type Report struct {
	Blacklist   int64
	Refresh     int64
	Deactivated int64
}

// RunOnce: hapus blacklist/refresh kadaluarsa, nonaktifkan akun yang lama tidak login.
// staleDays <= 0 mematikan deaktivasi.
func RunOnce(ctx context.Context, db *gorm.DB, now time.Time, staleDays int) (Report, error) {
	var rep Report
	var err error

	if rep.Blacklist, err = authRepo.CleanupExpiredBlacklist(ctx, db, now); err != nil {
		return rep, err
	}
	if rep.Refresh, err = authRepo.CleanupExpiredRefreshTokens(ctx, db, now); err != nil {
		return rep, err
	}
	if staleDays > 0 {
		cutoff := now.AddDate(0, 0, -staleDays)
		if rep.Deactivated, err = userRepo.NewUserRepository(db).DeactivateStale(ctx, cutoff); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

// StartCleanupScheduler jalan di goroutine sampai ctx dibatalkan.
func StartCleanupScheduler(ctx context.Context, db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			configs.Log.Info("[CLEANUP] Menjalankan pembersihan token & akun tidak aktif...")
			rep, err := RunOnce(ctx, db, time.Now().UTC(), configs.App.StaleAccountDays)
			if err != nil {
				configs.Log.Errorf("[CLEANUP ERROR] %v", err)
			} else {
				configs.Log.WithFields(configs.Fields{
					"blacklist":   rep.Blacklist,
					"refresh":     rep.Refresh,
					"deactivated": rep.Deactivated,
				}).Info("[CLEANUP] selesai")
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
