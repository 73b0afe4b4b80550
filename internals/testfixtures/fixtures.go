package testfixtures

import (
	"testing"
	"time"

	"gorm.io/gorm"

	attendanceModel "hrms_backend/internals/features/hrms/attendance/model"
	employeeModel "hrms_backend/internals/features/hrms/employees/model"
	"hrms_backend/internals/helpers/dbtime"
)

// InsertEmployee stores an employee directly, bypassing the service checks.
func InsertEmployee(tb testing.TB, db *gorm.DB, employeeID, fullName, email, department string) employeeModel.EmployeeModel {
	tb.Helper()
	m := employeeModel.EmployeeModel{
		EmployeeID: employeeID,
		FullName:   fullName,
		Email:      email,
		Department: department,
	}
	if err := db.Create(&m).Error; err != nil {
		tb.Fatalf("insert employee %s: %v", employeeID, err)
	}
	return m
}

// InsertAttendance stores one attendance row for day ("YYYY-MM-DD").
func InsertAttendance(tb testing.TB, db *gorm.DB, employeeDBID uint, day, status string) attendanceModel.AttendanceModel {
	tb.Helper()
	t, err := dbtime.ParseDate(day)
	if err != nil {
		tb.Fatalf("parse %q: %v", day, err)
	}
	m := attendanceModel.AttendanceModel{
		EmployeeDBID:   employeeDBID,
		AttendanceDate: dbtime.ToDate(t),
		Status:         status,
	}
	if err := db.Omit("Employee").Create(&m).Error; err != nil {
		tb.Fatalf("insert attendance %d/%s: %v", employeeDBID, day, err)
	}
	return m
}

// Today is the UTC calendar day, matching SQLite's CURRENT_DATE.
func Today() string {
	return time.Now().UTC().Format(dbtime.DateLayout)
}
