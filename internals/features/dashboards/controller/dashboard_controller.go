package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	"ftth_backend/internals/features/dashboards/repository"
	"ftth_backend/internals/features/dashboards/service"
	helper "ftth_backend/internals/helpers"
)

type DashboardController struct {
	DB      *gorm.DB
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	var ai service.Summarizer
	if s := service.NewOpenAISummarizer(configs.App); s != nil {
		ai = s
	}
	return &DashboardController{
		DB:      db,
		Service: service.NewDashboardService(repository.NewDashboardRepository(db), ai),
	}
}

func (ctrl *DashboardController) snapshot(c *fiber.Ctx) (service.Snapshot, error) {
	var f repository.Filter
	if err := c.QueryParser(&f); err != nil {
		return service.Snapshot{}, fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	snap, err := ctrl.Service.Snapshot(c.UserContext(), f)
	if err != nil {
		configs.Log.Errorf("[DASHBOARD] %v", err)
		return service.Snapshot{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data dashboard")
	}
	return snap, nil
}

// GET /api/dashboards/summary
func (ctrl *DashboardController) Summary(c *fiber.Ctx) error {
	snap, err := ctrl.snapshot(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Ringkasan dashboard", snap.Summary)
}

// GET /api/dashboards/by-regional
func (ctrl *DashboardController) ByRegional(c *fiber.Ctx) error {
	snap, err := ctrl.snapshot(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Per regional", snap.ByRegional)
}

// GET /api/dashboards/by-progress
func (ctrl *DashboardController) ByProgress(c *fiber.Ctx) error {
	snap, err := ctrl.snapshot(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Per progress", snap.ByProgress)
}

// GET /api/dashboards/by-status
func (ctrl *DashboardController) ByStatus(c *fiber.Ctx) error {
	snap, err := ctrl.snapshot(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Per status", snap.ByStatus)
}

// GET /api/dashboards/by-uic
func (ctrl *DashboardController) ByUIC(c *fiber.Ctx) error {
	snap, err := ctrl.snapshot(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Per UIC", snap.ByUIC)
}

// GET /api/dashboards/ai-summary
func (ctrl *DashboardController) AISummary(c *fiber.Ctx) error {
	var f repository.Filter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	out, err := ctrl.Service.AISummary(c.UserContext(), f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat ringkasan")
	}
	return helper.JsonOK(c, "Ringkasan AI", out)
}
