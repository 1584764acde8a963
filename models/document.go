package models

import "time"

type Document struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	PropertyID string    `json:"propertyId" gorm:"index;size:36"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`     // PDF | IMAGE
	Category   string    `json:"category"` // CONTRACT | TENANT_ID | OWNER_DOCS | POA | TM30 | OTHER
	URL        string    `json:"url"`
	UploadDate string    `json:"uploadDate"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
