package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/features/projects/logs/dto"
	"ftth_backend/internals/features/projects/logs/repository"
	helper "ftth_backend/internals/helpers"
)

type ProjectLogController struct {
	DB   *gorm.DB
	Repo *repository.ProjectLogRepository
}

func NewProjectLogController(db *gorm.DB) *ProjectLogController {
	return &ProjectLogController{DB: db, Repo: repository.NewProjectLogRepository(db)}
}

// GET /api/projects/:id/logs
func (ctrl *ProjectLogController) ListByProject(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	rows, total, err := ctrl.Repo.ListByProject(c.UserContext(), id, p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat project")
	}
	return helper.JsonList(c, "Riwayat project", dto.ToProjectLogDTOs(rows), helper.BuildPagination(total, p, len(rows)))
}
