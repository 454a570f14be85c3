package dto

import "time"

// GiveSalaryRequest định nghĩa request thanh toán lương
type GiveSalaryRequest struct {
	EmployeeID    uint    `json:"employeeId" validate:"required"`
	CenterID      uint    `json:"centerId" validate:"required"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount" validate:"required"`
	PaymentMethod string  `json:"paymentMethod"`
	StripeToken   string  `json:"stripeToken"`
	Email         string  `json:"email"`
}

// DueSalaryResponse định nghĩa response tra cứu lương còn nợ
type DueSalaryResponse struct {
	EmployeeName string  `json:"employeeName"`
	TotalSalary  float64 `json:"totalSalary"`
	PaidAmount   float64 `json:"paidAmount"`
	DueAmount    float64 `json:"dueAmount"`
}

// SalarySheetItem là một dòng trong bảng lương
type SalarySheetItem struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Position      string    `json:"position"`
	Image         string    `json:"image,omitempty"`
	PaidAmount    float64   `json:"paidAmount"`
	DueAmount     float64   `json:"dueAmount"`
	PaymentDate   time.Time `json:"paymentDate"`
	PaymentStatus string    `json:"paymentStatus"`
	Month         string    `json:"month"`
	Method        string    `json:"method"`
}

// SalarySheetCache là trang bảng lương được cache trong Redis
type SalarySheetCache struct {
	Sheet []SalarySheetItem `json:"sheet"`
	Total int               `json:"total"`
}
