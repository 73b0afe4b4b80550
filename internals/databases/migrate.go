package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	attendanceModel "hrms_backend/internals/features/hrms/attendance/model"
	employeeModel "hrms_backend/internals/features/hrms/employees/model"
)

// Migrate creates or updates the employees and attendance tables.
// Order matters: attendance carries the FK to employees.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employeeModel.EmployeeModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		return err
	}
	for _, stmt := range caseSensitiveDDL(db.Dialector.Name()) {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("collation: %w", err)
		}
	}
	log.Println("[INFO] Schema migrated")
	return nil
}

// caseSensitiveDDL returns the statements that make employee_id, email and
// status compare byte-wise. Only MySQL needs them: its utf8mb4 default
// collation folds case.
func caseSensitiveDDL(dialect string) []string {
	if dialect != configs.DriverMySQL {
		return nil
	}
	return []string{
		"ALTER TABLE employees" +
			" MODIFY employee_id varchar(20) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL," +
			" MODIFY email varchar(100) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
		"ALTER TABLE attendance" +
			" MODIFY status varchar(10) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
	}
}
