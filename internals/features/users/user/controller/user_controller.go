package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	"ftth_backend/internals/features/users/user/dto"
	"ftth_backend/internals/features/users/user/repository"
	"ftth_backend/internals/features/users/user/service"
	helper "ftth_backend/internals/helpers"
)

type UserController struct {
	DB      *gorm.DB
	Service *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Service: service.NewUserService(repository.NewUserRepository(db))}
}

func writeError(c *fiber.Ctx, err error) error {
	var fiErr *fiber.Error
	switch {
	case errors.As(err, &fiErr):
		return helper.JsonError(c, fiErr.Code, fiErr.Message)
	case errors.Is(err, repository.ErrUserNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSelfDeactivate):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case helper.IsUniqueViolation(err):
		return helper.JsonError(c, fiber.StatusConflict, "Email atau username sudah dipakai")
	default:
		configs.Log.Errorf("[USER] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

// GET /api/users
func (uc *UserController) List(c *fiber.Ctx) error {
	var q dto.ListUserQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	users, total, err := uc.Service.Repo.List(c.UserContext(), repository.ListFilter{
		Role:     q.Role,
		Division: q.Division,
		Active:   q.Active,
		Search:   q.Search,
		Limit:    p.Limit(),
		Offset:   p.Offset(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, "Daftar user", dto.FromModelList(users), helper.BuildPagination(total, p, len(users)))
}

// POST /api/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	u, err := uc.Service.Create(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	configs.Log.WithField("user_id", u.ID).Info("✅ user dibuat")
	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModel(u))
}

// PUT /api/users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	actor, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req dto.UpdateUserRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	u, err := uc.Service.Update(c.UserContext(), actor, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromModel(u))
}

// POST /api/users/:id/reset-password
func (uc *UserController) ResetPassword(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req dto.ResetPasswordRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	if err := uc.Service.ResetPassword(c.UserContext(), id, req.NewPassword); err != nil {
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "Password berhasil direset", nil)
}

// DELETE /api/users/:id → nonaktifkan
func (uc *UserController) Deactivate(c *fiber.Ctx) error {
	actor, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	u, err := uc.Service.Deactivate(c.UserContext(), actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonDeleted(c, "User dinonaktifkan", dto.FromModel(u))
}
