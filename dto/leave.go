package dto

import "clinichr/models"

// CreateLeaveRequest định nghĩa request xin nghỉ phép
type CreateLeaveRequest struct {
	EmployeeID uint   `json:"employeeId" validate:"required"`
	CenterID   uint   `json:"centerId" validate:"required"`
	LeaveType  string `json:"leaveType" validate:"required"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}

// UpdateLeaveStatusRequest định nghĩa request duyệt đơn nghỉ phép
type UpdateLeaveStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// LeaveWithDays kèm số ngày nghỉ tính từ khoảng ngày của đơn
type LeaveWithDays struct {
	models.EmployeeLeave
	Days int `json:"days"`
}
