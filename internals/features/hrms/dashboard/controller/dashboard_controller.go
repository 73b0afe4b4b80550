package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/hrms/dashboard/dto"
	"hrms_backend/internals/features/hrms/dashboard/service"
)

type DashboardController struct {
	DB      *gorm.DB
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, Service: service.NewDashboardService()}
}

/* GET /dashboard/present-days */
func (h *DashboardController) PresentDays(c *fiber.Ctx) error {
	var out []dto.PresentDaysResponse
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = h.Service.PresentDays(tx)
		return err
	}); err != nil {
		return err
	}
	return c.JSON(out)
}

/* GET /dashboard/summary */
func (h *DashboardController) Summary(c *fiber.Ctx) error {
	var out dto.SummaryResponse
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = h.Service.Summary(tx)
		return err
	}); err != nil {
		return err
	}
	return c.JSON(out)
}
