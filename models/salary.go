package models

import "time"

// Salary là sổ lương của một nhân viên trong một tháng dương lịch.
// Ràng buộc unique (employee_id, month, year) đảm bảo mỗi nhân viên
// chỉ có một bản ghi cho mỗi kỳ lương; hai request thanh toán chạy
// song song sẽ biến race tạo bản ghi thành xung đột ghi phát hiện được.
type Salary struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	EmployeeID    uint      `gorm:"not null;uniqueIndex:idx_salary_period" json:"employeeId"`
	Employee      Employee  `json:"employee" gorm:"foreignKey:EmployeeID;references:ID"`
	EmployeeName  string    `json:"employeeName"`
	CenterID      uint      `gorm:"not null;index" json:"centerId"`
	Month         int       `gorm:"not null;uniqueIndex:idx_salary_period" json:"month"`
	Year          int       `gorm:"not null;uniqueIndex:idx_salary_period" json:"year"`
	TotalSalary   float64   `gorm:"not null" json:"totalSalary"`
	PaidAmount    float64   `gorm:"default:0" json:"paidAmount"`
	DueAmount     float64   `gorm:"default:0" json:"dueAmount"`
	PaymentStatus string    `gorm:"default:Unpaid" json:"paymentStatus"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentDate   time.Time `json:"paymentDate"`
}
