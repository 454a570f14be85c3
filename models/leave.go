package models

import "time"

type EmployeeLeave struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employeeId"`
	Employee   Employee  `json:"employee" gorm:"foreignKey:EmployeeID;references:ID"`
	CenterID   uint      `gorm:"not null;index" json:"centerId"`
	LeaveType  string    `gorm:"not null" json:"leaveType"`
	Reason     string    `gorm:"not null" json:"reason"`
	StartDate  time.Time `gorm:"not null" json:"startDate"`
	EndDate    time.Time `gorm:"not null" json:"endDate"`
	Status     string    `gorm:"default:Pending" json:"status"`
	AppliedAt  time.Time `gorm:"autoCreateTime" json:"appliedAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
