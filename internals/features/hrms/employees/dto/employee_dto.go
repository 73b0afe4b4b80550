package dto

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"hrms_backend/internals/features/hrms/employees/model"
)

// ====================
// Request DTO
// ====================

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=20"`
	FullName   string `json:"full_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=100"`
	Department string `json:"department" validate:"required,max=50"`
}

// Normalize trims surrounding whitespace and folds text to NFC so visually
// equal input maps to the same stored bytes.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = cleanText(r.EmployeeID)
	r.FullName = cleanText(r.FullName)
	r.Email = cleanText(r.Email)
	r.Department = cleanText(r.Department)
}

func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ====================
// Response DTO
// ====================

type EmployeeResponse struct {
	ID         uint      `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// ====================
// Converter
// ====================

func (r CreateEmployeeRequest) ToModel() model.EmployeeModel {
	return model.EmployeeModel{
		EmployeeID: r.EmployeeID,
		FullName:   r.FullName,
		Email:      r.Email,
		Department: r.Department,
	}
}

func FromModel(m model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		FullName:   m.FullName,
		Email:      m.Email,
		Department: m.Department,
		CreatedAt:  m.CreatedAt,
	}
}

func FromModels(rows []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
