package service

import (
	"errors"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/hrms/attendance/dto"
	"hrms_backend/internals/features/hrms/attendance/model"
	employeeModel "hrms_backend/internals/features/hrms/employees/model"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/dbtime"
)

type AttendanceService struct{}

func NewAttendanceService() *AttendanceService { return &AttendanceService{} }

func (s *AttendanceService) findEmployee(tx *gorm.DB, id uint) (*employeeModel.EmployeeModel, error) {
	var e employeeModel.EmployeeModel
	if err := tx.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, constants.ErrEmployeeNotFound)
		}
		return nil, err
	}
	return &e, nil
}

// Mark stores one attendance row. At most one row per (employee, day): the
// pre-check gives the common-case message, uq_attendance_employee_date
// settles concurrent marks.
func (s *AttendanceService) Mark(tx *gorm.DB, m *model.AttendanceModel) error {
	if _, err := s.findEmployee(tx, m.EmployeeDBID); err != nil {
		return err
	}

	day := dbtime.FormatDate(m.AttendanceDate)
	var cnt int64
	if err := tx.Model(&model.AttendanceModel{}).
		Where("employee_id = ? AND DATE(attendance_date) = ?", m.EmployeeDBID, day).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, constants.ErrAttendanceAlreadyMarked)
	}

	if err := tx.Omit("Employee").Create(m).Error; err != nil {
		switch {
		case helper.IsUniqueViolation(err):
			return fiber.NewError(fiber.StatusConflict, constants.ErrAttendanceAlreadyMarked)
		case helper.IsForeignKeyViolation(err):
			// employee deleted between the lookup and the insert
			return fiber.NewError(fiber.StatusNotFound, constants.ErrEmployeeNotFound)
		}
		return err
	}
	return nil
}

// ListForEmployee returns the employee's rows, most recent date first.
func (s *AttendanceService) ListForEmployee(tx *gorm.DB, employeeID uint) ([]dto.AttendanceWithEmployeeResponse, error) {
	emp, err := s.findEmployee(tx, employeeID)
	if err != nil {
		return nil, err
	}

	var rows []model.AttendanceModel
	if err := tx.Where("employee_id = ?", emp.ID).
		Order("attendance_date DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.AttendanceWithEmployeeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromModelWithEmployee(r, *emp))
	}
	return out, nil
}

// Filter summarises attendance in the inclusive range [start, end], one row
// per employee with at least one record, sorted by name. "present" is
// matched case-insensitively.
func (s *AttendanceService) Filter(tx *gorm.DB, start, end time.Time) ([]dto.AttendanceFilterResponse, error) {
	if start.After(end) {
		return nil, fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidDateRange)
	}

	rows := make([]dto.AttendanceFilterResponse, 0)
	if err := tx.Table("attendance AS a").
		Select(`
			e.id         AS employee_id,
			e.full_name  AS employee_name,
			e.email      AS employee_email,
			e.department AS department,
			COUNT(CASE WHEN LOWER(a.status) = 'present' THEN 1 END) AS total_present_days,
			COUNT(a.id)  AS total_records
		`).
		Joins("JOIN employees AS e ON e.id = a.employee_id").
		Where("DATE(a.attendance_date) BETWEEN ? AND ?",
			start.Format(dbtime.DateLayout), end.Format(dbtime.DateLayout)).
		Group("e.id, e.full_name, e.email, e.department").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	// byte-wise order; SQL ORDER BY would follow the database collation
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].EmployeeName != rows[j].EmployeeName {
			return rows[i].EmployeeName < rows[j].EmployeeName
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})
	return rows, nil
}
