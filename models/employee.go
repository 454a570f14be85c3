package models

import "time"

type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CenterID     uint      `gorm:"not null;index" json:"centerId"`
	Center       Center    `json:"center" gorm:"foreignKey:CenterID;references:ID"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Password     string    `json:"-"`
	Phone        string    `gorm:"not null" json:"phone"`
	Position     string    `gorm:"not null" json:"position"`
	Department   string    `json:"department"`
	Salary       float64   `gorm:"not null" json:"salary"`
	HireDate     time.Time `json:"hireDate"`
	ProfileImage string    `gorm:"not null" json:"profileImage"`
	Status       string    `gorm:"default:active" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
