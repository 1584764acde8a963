package models

import (
	"time"

	"propman/utils"
)

// PaymentStatus trạng thái của một kỳ thanh toán
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusVerifying PaymentStatus = "VERIFYING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusOverdue   PaymentStatus = "OVERDUE"
)

type PaymentRecord struct {
	ID         string  `json:"id" gorm:"primaryKey;size:36"`
	PropertyID string  `json:"propertyId" gorm:"index;size:36"`
	Month      string  `json:"month"` // kỳ thanh toán, format yyyy-MM
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"dueDate"`

	Status     PaymentStatus `json:"status"`
	ProofURL   string        `json:"proofUrl,omitempty"`
	PaidDate   string        `json:"paidDate,omitempty"`
	VerifiedBy string        `json:"verifiedBy,omitempty"` // tên người xác nhận (Admin/Agent/Owner)

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// EffectiveStatus trả về trạng thái hiển thị của kỳ thanh toán.
// OVERDUE là trạng thái dẫn xuất cho bản ghi PENDING đã quá hạn mà chưa
// có chứng từ, không phải transition được lưu; PAID/VERIFYING không bao
// giờ bị hạ xuống OVERDUE.
func (r *PaymentRecord) EffectiveStatus(today time.Time) PaymentStatus {
	if r.Status != PaymentStatusPending && r.Status != PaymentStatusOverdue {
		return r.Status
	}
	due, err := utils.ParseDay(r.DueDate)
	if err == nil && utils.Day(today).After(due) {
		return PaymentStatusOverdue
	}
	return PaymentStatusPending
}
