package models

import "time"

type ChatHistory struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;size:36"`
	Sender      string    `json:"sender"` // "user" or "bot"
	MessageType string    `json:"message_type"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}
