package dto

type PresentDaysResponse struct {
	EmployeeDBID uint   `json:"employee_db_id" gorm:"column:employee_db_id"`
	FullName     string `json:"full_name" gorm:"column:full_name"`
	PresentDays  int64  `json:"present_days" gorm:"column:present_days"`
}

type SummaryResponse struct {
	TotalEmployees         int64 `json:"total_employees"`
	TotalAttendanceRecords int64 `json:"total_attendance_records"`
	PresentToday           int64 `json:"present_today"`
	AbsentToday            int64 `json:"absent_today"`
}
