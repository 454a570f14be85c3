package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string        `json:"name"`
	Email       string        `gorm:"unique" json:"email"`
	Password    string        `json:"-"`
	PhoneNumber string        `gorm:"type:varchar(15)" json:"phoneNumber"`
	Avatar      string        `json:"avatar"`
	Role        int           `gorm:"default:3" json:"role"`
	Status      int           `gorm:"default:1" json:"status"`
	EmployeeID  *uint         `gorm:"index" json:"employeeId,omitempty"`
	CenterIDs   pq.Int64Array `gorm:"type:integer[]" json:"centerIds"`
}
