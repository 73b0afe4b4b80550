package dto

import (
	"strings"
	"time"

	"hrms_backend/internals/features/hrms/attendance/model"
	employeeModel "hrms_backend/internals/features/hrms/employees/model"
	"hrms_backend/internals/helpers/dbtime"
)

// ====================
// Request DTO
// ====================

type MarkAttendanceRequest struct {
	EmployeeDBID   *uint  `json:"employee_db_id" validate:"required"`
	AttendanceDate string `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Status         string `json:"status" validate:"required,max=10"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.AttendanceDate = strings.TrimSpace(r.AttendanceDate)
	r.Status = strings.TrimSpace(r.Status)
}

// ToModel expects a validated request.
func (r MarkAttendanceRequest) ToModel() (model.AttendanceModel, error) {
	day, err := dbtime.ParseDate(r.AttendanceDate)
	if err != nil {
		return model.AttendanceModel{}, err
	}
	return model.AttendanceModel{
		EmployeeDBID:   *r.EmployeeDBID,
		AttendanceDate: dbtime.ToDate(day),
		Status:         r.Status,
	}, nil
}

// FilterQuery binds ?start_date=&end_date=.
type FilterQuery struct {
	StartDate string `query:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
}

// ====================
// Response DTO
// ====================

type AttendanceResponse struct {
	ID             uint      `json:"id"`
	EmployeeDBID   uint      `json:"employee_db_id"`
	AttendanceDate string    `json:"attendance_date"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type AttendanceWithEmployeeResponse struct {
	ID                 uint      `json:"id"`
	EmployeeDBID       uint      `json:"employee_db_id"`
	EmployeeBusinessID string    `json:"employee_business_id"`
	EmployeeName       string    `json:"employee_name"`
	AttendanceDate     string    `json:"attendance_date"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// AttendanceFilterResponse is one per-employee row of a date-range summary.
// EmployeeID is the database id.
type AttendanceFilterResponse struct {
	EmployeeID       uint   `json:"employee_id" gorm:"column:employee_id"`
	EmployeeName     string `json:"employee_name" gorm:"column:employee_name"`
	EmployeeEmail    string `json:"employee_email" gorm:"column:employee_email"`
	Department       string `json:"department" gorm:"column:department"`
	TotalPresentDays int64  `json:"total_present_days" gorm:"column:total_present_days"`
	TotalRecords     int64  `json:"total_records" gorm:"column:total_records"`
}

// ====================
// Converter
// ====================

func FromModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:             m.ID,
		EmployeeDBID:   m.EmployeeDBID,
		AttendanceDate: dbtime.FormatDate(m.AttendanceDate),
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
	}
}

func FromModelWithEmployee(m model.AttendanceModel, e employeeModel.EmployeeModel) AttendanceWithEmployeeResponse {
	return AttendanceWithEmployeeResponse{
		ID:                 m.ID,
		EmployeeDBID:       e.ID,
		EmployeeBusinessID: e.EmployeeID,
		EmployeeName:       e.FullName,
		AttendanceDate:     dbtime.FormatDate(m.AttendanceDate),
		Status:             m.Status,
		CreatedAt:          m.CreatedAt,
	}
}
