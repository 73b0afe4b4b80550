package constants

// Attendance status values. The column is free text; these are the two the
// dashboard counts.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Client-facing messages; the frontend matches on some of these verbatim.
const (
	ErrEmployeeIDExists        = "Employee ID already exists"
	ErrEmailExists             = "Email already exists"
	ErrEmployeeNotFound        = "Employee not found"
	ErrAttendanceAlreadyMarked = "Attendance already marked for this date"
	ErrInvalidDateRange        = "start_date cannot be after end_date"
	ErrInvalidBody             = "Invalid request body"
	ErrValidationFailed        = "validation failed"
	ErrInternal                = "Internal server error"
)
