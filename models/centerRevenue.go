package models

import "time"

// CenterRevenue gom doanh thu, chi phí và lợi nhuận của một trung tâm
// theo từng tháng. Unique (center_id, month, year) để tránh bản ghi trùng.
type CenterRevenue struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CenterID     uint      `gorm:"not null;uniqueIndex:idx_center_period" json:"centerId"`
	Center       Center    `json:"center" gorm:"foreignKey:CenterID;references:ID"`
	Month        int       `gorm:"not null;uniqueIndex:idx_center_period" json:"month"`
	Year         int       `gorm:"not null;uniqueIndex:idx_center_period" json:"year"`
	TotalRevenue float64   `gorm:"default:0" json:"totalRevenue"`
	TotalCost    float64   `gorm:"default:0" json:"totalCost"`
	NetProfit    float64   `gorm:"default:0" json:"netProfit"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
