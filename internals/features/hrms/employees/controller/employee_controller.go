package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/hrms/employees/dto"
	"hrms_backend/internals/features/hrms/employees/model"
	"hrms_backend/internals/features/hrms/employees/service"
	helper "hrms_backend/internals/helpers"
)

type EmployeeController struct {
	DB      *gorm.DB
	Service *service.EmployeeService
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db, Service: service.NewEmployeeService()}
}

// ======================
// Create Employee
// POST /employees/
// ======================
func (h *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return h.Service.Create(tx, &m)
	}); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(m))
}

// ======================
// List Employees
// GET /employees/
// ======================
func (h *EmployeeController) ListEmployees(c *fiber.Ctx) error {
	var rows []model.EmployeeModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		rows, err = h.Service.List(tx)
		return err
	}); err != nil {
		return err
	}
	return c.JSON(dto.FromModels(rows))
}

// ======================
// Delete Employee (cascade ke attendance)
// DELETE /employees/:employee_db_id
// ======================
func (h *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "employee_db_id", "employee_db_id")
	if err != nil {
		return err
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return h.Service.Delete(tx, id)
	}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
