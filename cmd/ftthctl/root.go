package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	database "ftth_backend/internals/databases"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ftthctl",
		Short:         "Tools operasional FTTH tracker (migrasi, akun admin, cek file import)",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(
		newMigrateCmd(),
		newCreateAdminCmd(),
		newSeedCmd(),
		newValidateImportCmd(),
		newTemplateCmd(),
	)
	return cmd
}

// connectDB: ENV + koneksi, dipakai command yang butuh database.
func connectDB() *gorm.DB {
	configs.LoadEnv()
	database.ConnectDB()
	return database.DB
}
