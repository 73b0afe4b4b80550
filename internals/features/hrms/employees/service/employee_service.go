package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	attendanceModel "hrms_backend/internals/features/hrms/attendance/model"
	"hrms_backend/internals/features/hrms/employees/model"
	helper "hrms_backend/internals/helpers"
)

// EmployeeService holds the employee persistence steps. Every method runs on
// the tx it is given; the caller owns commit/rollback.
type EmployeeService struct{}

func NewEmployeeService() *EmployeeService { return &EmployeeService{} }

// Create inserts m after checking employee_id, then email, for duplicates.
// The unique indexes back both checks for concurrent creates.
func (s *EmployeeService) Create(tx *gorm.DB, m *model.EmployeeModel) error {
	var cnt int64
	if err := tx.Model(&model.EmployeeModel{}).
		Where("employee_id = ?", m.EmployeeID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, constants.ErrEmployeeIDExists)
	}

	if err := tx.Model(&model.EmployeeModel{}).
		Where("email = ?", m.Email).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, constants.ErrEmailExists)
	}

	if err := tx.SavePoint("employee_insert").Error; err != nil {
		return err
	}
	if err := tx.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// postgres aborts the tx on a failed insert; rewind before looking again
			if rbErr := tx.RollbackTo("employee_insert").Error; rbErr != nil {
				return fiber.NewError(fiber.StatusConflict, constants.ErrEmployeeIDExists)
			}
			return s.conflictFor(tx, m)
		}
		return err
	}
	return nil
}

// conflictFor re-runs the lookups after a lost race so the message names the right column.
func (s *EmployeeService) conflictFor(tx *gorm.DB, m *model.EmployeeModel) error {
	var cnt int64
	if err := tx.Model(&model.EmployeeModel{}).
		Where("employee_id = ?", m.EmployeeID).
		Count(&cnt).Error; err == nil && cnt == 0 {
		return fiber.NewError(fiber.StatusConflict, constants.ErrEmailExists)
	}
	return fiber.NewError(fiber.StatusConflict, constants.ErrEmployeeIDExists)
}

// List returns every employee in store order.
func (s *EmployeeService) List(tx *gorm.DB) ([]model.EmployeeModel, error) {
	var rows []model.EmployeeModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get loads one employee by surrogate id; 404 when absent.
func (s *EmployeeService) Get(tx *gorm.DB, id uint) (*model.EmployeeModel, error) {
	var m model.EmployeeModel
	if err := tx.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, constants.ErrEmployeeNotFound)
		}
		return nil, err
	}
	return &m, nil
}

// Delete removes the employee and its attendance rows, children first.
func (s *EmployeeService) Delete(tx *gorm.DB, id uint) error {
	if _, err := s.Get(tx, id); err != nil {
		return err
	}
	if err := tx.Where("employee_id = ?", id).
		Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
		return err
	}
	res := tx.Delete(&model.EmployeeModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, constants.ErrEmployeeNotFound)
	}
	return nil
}
