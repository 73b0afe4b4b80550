package model

import (
	"time"

	"gorm.io/datatypes"

	employeeModel "hrms_backend/internals/features/hrms/employees/model"
)

/* ===========================
   ATTENDANCE (child of employees)
   =========================== */
type AttendanceModel struct {
	ID             uint           `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeDBID   uint           `gorm:"column:employee_id;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate datatypes.Date `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index:idx_attendance_date"`
	Status         string         `gorm:"column:status;type:varchar(10);not null"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Employee *employeeModel.EmployeeModel `gorm:"foreignKey:EmployeeDBID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (AttendanceModel) TableName() string { return "attendance" }
