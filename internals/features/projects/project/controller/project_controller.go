package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	"ftth_backend/internals/features/projects/importer"
	logRepo "ftth_backend/internals/features/projects/logs/repository"
	"ftth_backend/internals/features/projects/project/dto"
	"ftth_backend/internals/features/projects/project/repository"
	"ftth_backend/internals/features/projects/project/service"
	userRepo "ftth_backend/internals/features/users/user/repository"
	helper "ftth_backend/internals/helpers"
)

// kolom sort yang diizinkan (?sort_by=)
var sortColumns = map[string]string{
	"updated_at":   "updated_at",
	"created_at":   "created_at",
	"no_project":   "no_project",
	"nama_project": "nama_project",
	"regional":     "regional",
	"persentase":   "persentase",
	"occupancy":    "occupancy",
	"revenue":      "revenue",
}

type ProjectController struct {
	DB      *gorm.DB
	Repo    *repository.ProjectRepository
	Service *service.ProjectService
}

func NewProjectController(db *gorm.DB) *ProjectController {
	repo := repository.NewProjectRepository(db)
	svc := service.NewProjectService(repo, logRepo.NewProjectLogRepository(db), userRepo.NewUserRepository(db))
	return &ProjectController{DB: db, Repo: repo, Service: svc}
}

// ======================
// Error mapping
// ======================
func writeError(c *fiber.Ctx, err error) error {
	var (
		verr  *importer.ValidationError
		lerr  *importer.RowLimitError
		serr  *importer.StoreError
		fiErr *fiber.Error
	)
	switch {
	case errors.As(err, &fiErr):
		return helper.JsonError(c, fiErr.Code, fiErr.Message)
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success":      false,
			"message":      verr.Summary(),
			"error_code":   "VALIDATION_ERROR",
			"errors":       verr.Preview(),
			"total_errors": len(verr.Messages),
		})
	case errors.As(err, &lerr):
		return helper.JsonError(c, fiber.StatusBadRequest, lerr.Error())
	case errors.Is(err, importer.ErrUnreadableFile), errors.Is(err, importer.ErrNoSheet):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, importer.ErrEmptyBatch):
		return helper.JsonError(c, fiber.StatusBadRequest, "File kosong atau tidak ada data valid")
	case errors.As(err, &serr):
		return helper.FromStoreError(c, serr.Err)
	case service.IsNotFound(err):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	default:
		return helper.FromStoreError(c, err)
	}
}

// ======================
// List
// ======================
func (ctrl *ProjectController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ParseFiber(c, "updated_at", "desc", helper.DefaultOpts)

	rows, total, err := ctrl.Repo.List(c.UserContext(), ctrl.filter(q, p))
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, "Daftar project", dto.ToProjectDTOs(rows), helper.BuildPagination(total, p, len(rows)))
}

func (ctrl *ProjectController) filter(q dto.ListQuery, p helper.Params) repository.Filter {
	return repository.Filter{
		Regional:       q.Regional,
		Division:       q.Division,
		UIC:            q.UIC,
		Status:         q.Status,
		Progress:       q.Progress,
		CirculirStatus: q.CirculirStatus,
		Search:         q.Search,
		Archived:       q.ArchivedFilter(),
		Limit:          p.Limit(),
		Offset:         p.Offset(),
		OrderBy:        p.OrderBy(sortColumns, "updated_at"),
	}
}

// ======================
// Detail
// ======================
func (ctrl *ProjectController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	p, err := ctrl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "Detail project", dto.ToProjectDTO(*p))
}

// ======================
// Create / Update
// ======================
func (ctrl *ProjectController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return writeError(c, err)
	}
	var body dto.ProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	p, err := ctrl.Service.Create(c.UserContext(), userID, body)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonCreated(c, "Project berhasil dibuat", dto.ToProjectDTO(*p))
}

func (ctrl *ProjectController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var body dto.ProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	p, err := ctrl.Service.Update(c.UserContext(), userID, id, body)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "Project berhasil diperbarui", dto.ToProjectDTO(*p))
}

// ======================
// Archive / Restore
// ======================
func (ctrl *ProjectController) Archive(c *fiber.Ctx) error { return ctrl.setArchived(c, true) }
func (ctrl *ProjectController) Restore(c *fiber.Ctx) error { return ctrl.setArchived(c, false) }

func (ctrl *ProjectController) setArchived(c *fiber.Ctx, archived bool) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	p, err := ctrl.Service.SetArchived(c.UserContext(), userID, id, archived)
	if err != nil {
		return writeError(c, err)
	}
	msg := "Project dipulihkan"
	if archived {
		msg = "Project diarsipkan"
	}
	return helper.JsonUpdated(c, msg, dto.ToProjectDTO(*p))
}

// ======================
// Import
// ======================
func (ctrl *ProjectController) Import(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return writeError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File wajib diupload (field: file)")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, importer.ErrUnreadableFile.Error())
	}
	defer f.Close()

	// ?dry_run=true → hanya validasi
	if c.QueryBool("dry_run", false) {
		plan, err := ctrl.Service.Validate(c.UserContext(), userID, fh.Filename, f)
		if err != nil {
			return writeError(c, err)
		}
		return helper.JsonOK(c, "Validasi berhasil, file siap diimport", dto.ImportResponse{
			Sheet: plan.Sheet, Inserted: 0, Skipped: plan.Skipped, Total: plan.Total,
		})
	}

	res, err := ctrl.Service.Import(c.UserContext(), userID, fh.Filename, f)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonCreated(c, fmt.Sprintf("✅ %d project berhasil diimport", len(res.Inserted)), dto.ImportResponse{
		Sheet:    res.Sheet,
		Inserted: len(res.Inserted),
		Skipped:  res.Skipped,
		Total:    res.Total,
	})
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (ctrl *ProjectController) Template(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment("template_import_project.xlsx")
	if err := importer.WriteTemplate(c.Response().BodyWriter(), configs.App.ImportMaxRows); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat template")
	}
	return nil
}

// Export: filter sama dengan List, tanpa paging default.
func (ctrl *ProjectController) Export(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ParseFiber(c, "regional", "asc", helper.ExportOpts)

	rows, _, err := ctrl.Repo.List(c.UserContext(), ctrl.filter(q, p))
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment(fmt.Sprintf("projects_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := importer.WriteExport(c.Response().BodyWriter(), rows); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file export")
	}
	return nil
}

// ======================
// Lookup (?q=)
// ======================
func (ctrl *ProjectController) Lookup(c *fiber.Ctx) error {
	rows, err := ctrl.Repo.LookupCandidates(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "ok", service.RankLookup(c.Query("q"), rows, service.LookupLimit))
}
