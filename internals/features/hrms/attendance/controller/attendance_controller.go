package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/hrms/attendance/dto"
	"hrms_backend/internals/features/hrms/attendance/service"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Service: service.NewAttendanceService()}
}

// =========================
// Mark Attendance
// POST /attendance/
// =========================
func (h *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.NewFieldError("attendance_date", "datetime")
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return h.Service.Mark(tx, &m)
	}); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(m))
}

// =========================
// Attendance per Employee
// GET /attendance/:employee_id
// =========================
func (h *AttendanceController) ListForEmployee(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "employee_id", "employee_id")
	if err != nil {
		return err
	}

	var out []dto.AttendanceWithEmployeeResponse
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = h.Service.ListForEmployee(tx, id)
		return err
	}); err != nil {
		return err
	}
	return c.JSON(out)
}

// =========================
// Filter by date range (summary per employee)
// GET /attendance/filter/?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
// =========================
func (h *AttendanceController) FilterByDate(c *fiber.Ctx) error {
	var q dto.FilterQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := helper.ValidateStruct(q); err != nil {
		return err
	}

	start, err := dbtime.ParseDate(q.StartDate)
	if err != nil {
		return helper.NewFieldError("start_date", "datetime")
	}
	end, err := dbtime.ParseDate(q.EndDate)
	if err != nil {
		return helper.NewFieldError("end_date", "datetime")
	}

	var out []dto.AttendanceFilterResponse
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = h.Service.Filter(tx, start, end)
		return err
	}); err != nil {
		return err
	}
	if out == nil {
		out = []dto.AttendanceFilterResponse{}
	}
	return c.JSON(out)
}
