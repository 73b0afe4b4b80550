package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/hrms/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	// /attendance
	att := api.Group("/attendance")
	att.Post("/", ctrl.MarkAttendance)
	// static segment must be registered before /:employee_id
	att.Get("/filter", ctrl.FilterByDate)
	att.Get("/:employee_id", ctrl.ListForEmployee)
}
