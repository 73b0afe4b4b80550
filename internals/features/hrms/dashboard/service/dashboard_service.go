package service

import (
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	attendanceModel "hrms_backend/internals/features/hrms/attendance/model"
	"hrms_backend/internals/features/hrms/dashboard/dto"
	employeeModel "hrms_backend/internals/features/hrms/employees/model"
)

type DashboardService struct{}

func NewDashboardService() *DashboardService { return &DashboardService{} }

// PresentDays counts exact "Present" rows per employee; the outer join keeps
// employees without attendance at 0.
func (s *DashboardService) PresentDays(tx *gorm.DB) ([]dto.PresentDaysResponse, error) {
	rows := make([]dto.PresentDaysResponse, 0)
	err := tx.Table("employees AS e").
		Select(`
			e.id        AS employee_db_id,
			e.full_name AS full_name,
			COUNT(CASE WHEN a.status = ? THEN 1 END) AS present_days
		`, constants.StatusPresent).
		Joins("LEFT JOIN attendance AS a ON a.employee_id = e.id").
		Group("e.id, e.full_name").
		Order("e.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Summary reads the totals and today's counts. "Today" is the store's
// CURRENT_DATE, not the service clock.
func (s *DashboardService) Summary(tx *gorm.DB) (dto.SummaryResponse, error) {
	var out dto.SummaryResponse

	if err := tx.Model(&employeeModel.EmployeeModel{}).Count(&out.TotalEmployees).Error; err != nil {
		return out, err
	}
	if err := tx.Model(&attendanceModel.AttendanceModel{}).Count(&out.TotalAttendanceRecords).Error; err != nil {
		return out, err
	}
	if err := s.countToday(tx, constants.StatusPresent, &out.PresentToday); err != nil {
		return out, err
	}
	if err := s.countToday(tx, constants.StatusAbsent, &out.AbsentToday); err != nil {
		return out, err
	}
	return out, nil
}

func (s *DashboardService) countToday(tx *gorm.DB, status string, dst *int64) error {
	return tx.Model(&attendanceModel.AttendanceModel{}).
		Where("DATE(attendance_date) = CURRENT_DATE AND status = ?", status).
		Count(dst).Error
}
