package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ftth_backend/internals/constants"
	database "ftth_backend/internals/databases"
	"ftth_backend/internals/features/users/user/dto"
	userRepo "ftth_backend/internals/features/users/user/repository"
	userService "ftth_backend/internals/features/users/user/service"
	helper "ftth_backend/internals/helpers"
	"ftth_backend/internals/seeds"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "AutoMigrate tabel + generated column idle_port",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := connectDB()
			defer database.Close()
			return database.Migrate(db)
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	var (
		email    string
		username string
		password string
		fullName string
	)
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Buat akun admin (division ADMIN)",
		RunE: func(cmd *cobra.Command, args []string) error {
			division := constants.DivisionAdmin
			req := dto.CreateUserRequest{
				UserName: username,
				Email:    email,
				Password: password,
				Role:     constants.RoleAdmin,
				Division: &division,
			}
			if fullName = strings.TrimSpace(fullName); fullName != "" {
				req.FullName = &fullName
			}
			req.Normalize()
			if fe := helper.ValidateStruct(req); fe != nil {
				return fmt.Errorf("input tidak valid: %v", fe)
			}

			db := connectDB()
			defer database.Close()

			u, err := userService.NewUserService(userRepo.NewUserRepository(db)).Create(cmd.Context(), req)
			if err != nil {
				if helper.IsUniqueViolation(err) {
					return fmt.Errorf("email atau username sudah dipakai")
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ admin %s (%s) dibuat: %s\n", u.UserName, u.Email, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email admin (wajib)")
	cmd.Flags().StringVar(&username, "username", "", "Username admin (wajib)")
	cmd.Flags().StringVar(&password, "password", "", "Password, minimal 8 karakter (wajib)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Nama lengkap")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Isi akun awal dari file JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := connectDB()
			defer database.Close()
			return seeds.RunAllSeeds(cmd.Context(), db, file)
		},
	}
	cmd.Flags().StringVar(&file, "file", seeds.DefaultUsersFile, "File JSON user")
	return cmd
}
