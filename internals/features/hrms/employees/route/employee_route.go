package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/hrms/employees/controller"
)

func EmployeeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEmployeeController(db)

	// /employees
	emp := api.Group("/employees")
	emp.Post("/", ctrl.CreateEmployee)                  // create
	emp.Get("/", ctrl.ListEmployees)                    // list
	emp.Delete("/:employee_db_id", ctrl.DeleteEmployee) // delete + attendance
}
