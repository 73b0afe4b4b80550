package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoutes "hrms_backend/internals/features/hrms/attendance/route"
	dashboardRoutes "hrms_backend/internals/features/hrms/dashboard/route"
	employeeRoutes "hrms_backend/internals/features/hrms/employees/route"
)

// No auth: every group is mounted at the root.
func HrmsRoutes(app fiber.Router, db *gorm.DB) {
	employeeRoutes.EmployeeRoutes(app, db)
	attendanceRoutes.AttendanceRoutes(app, db)
	dashboardRoutes.DashboardRoutes(app, db)
}
