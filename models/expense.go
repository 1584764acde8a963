package models

import (
	"time"
)

// Expense khoản chi gắn với bất động sản. Là lịch sử tài chính: đã tạo
// thì không sửa, không xóa theo hạng mục kiểm tra đã sinh ra nó.
type Expense struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	PropertyID string    `json:"propertyId" gorm:"index;size:36"`
	Title      string    `json:"title"`
	Amount     float64   `json:"amount"`
	Category   string    `json:"category"` // COMMON_FEE | REPAIR | UTILITY | ...
	Date       string    `json:"date"`
	Status     string    `json:"status"` // UNPAID | PAID
	ReceiptURL string    `json:"receiptUrl,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
