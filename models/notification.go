package models

import "time"

type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"` // PAYMENT | CONTRACT | SYSTEM
	IsRead    bool      `json:"isRead" gorm:"default:false"`
	UserID    string    `json:"userId" gorm:"index;size:36"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
