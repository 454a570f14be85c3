package dto

import "time"

// LoginInput định nghĩa request đăng nhập
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// GoogleAuthInput định nghĩa request đăng nhập bằng Google
type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserLoginResponse định nghĩa response đăng nhập
type UserLoginResponse struct {
	UserID      uint      `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	UserPhone   string    `json:"userPhone"`
	UserRole    int       `json:"userRole"`
	UserAvatar  string    `json:"userAvatar,omitempty"`
	EmployeeID  *uint     `json:"employeeId,omitempty"`
	CenterIDs   []int64   `json:"centerIds,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
