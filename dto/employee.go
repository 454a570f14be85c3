package dto

import "time"

// CreateEmployeeRequest định nghĩa request tạo nhân viên
type CreateEmployeeRequest struct {
	CenterID     uint    `json:"centerId" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required"`
	Password     string  `json:"password" validate:"required"`
	Phone        string  `json:"phone" validate:"required"`
	Position     string  `json:"position" validate:"required"`
	Department   string  `json:"department"`
	Salary       float64 `json:"salary" validate:"required,gt=0"`
	HireDate     string  `json:"hireDate"`
	Status       string  `json:"status"`
	ProfileImage string  `json:"profileImage" validate:"required"`
}

// UpdateEmployeeRequest định nghĩa request cập nhật nhân viên,
// trường bỏ trống sẽ giữ nguyên giá trị cũ
type UpdateEmployeeRequest struct {
	CenterID     uint    `json:"centerId"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Position     string  `json:"position"`
	Department   string  `json:"department"`
	Salary       float64 `json:"salary"`
	HireDate     string  `json:"hireDate"`
	Status       string  `json:"status"`
	ProfileImage string  `json:"profileImage"`
}

// EmployeeResponse định nghĩa response cho nhân viên
type EmployeeResponse struct {
	ID           uint      `json:"id"`
	CenterID     uint      `json:"centerId"`
	CenterName   string    `json:"centerName,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Position     string    `json:"position"`
	Department   string    `json:"department,omitempty"`
	Salary       float64   `json:"salary"`
	HireDate     time.Time `json:"hireDate"`
	ProfileImage string    `json:"profileImage"`
	Status       string    `json:"status"`
}
