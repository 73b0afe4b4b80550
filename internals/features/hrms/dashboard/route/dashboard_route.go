package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/hrms/dashboard/controller"
)

// Read-only aggregates.
func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	dash := api.Group("/dashboard")
	dash.Get("/present-days", ctrl.PresentDays)
	dash.Get("/summary", ctrl.Summary)
}
