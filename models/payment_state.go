package models

import (
	"time"

	"propman/errors"
	"propman/utils"
)

// PaymentState định nghĩa interface cho các trạng thái kỳ thanh toán.
// Kiểm tra quyền của người gọi nằm ở tầng service, state machine chỉ
// quản transition.
type PaymentState interface {
	Upload(r *PaymentRecord, proofURL string) error
	Verify(r *PaymentRecord, verifierName string, today time.Time) error
}

// PendingPayment trạng thái chờ, chưa có chứng từ
type PendingPayment struct{}

func (s *PendingPayment) Upload(r *PaymentRecord, proofURL string) error {
	r.ProofURL = proofURL
	r.Status = PaymentStatusVerifying
	return nil
}

func (s *PendingPayment) Verify(r *PaymentRecord, verifierName string, today time.Time) error {
	return errors.NewAppError(errors.ErrCodeInvalidState, "Kỳ thanh toán chưa có chứng từ, không thể xác nhận", nil)
}

// VerifyingPayment trạng thái đã có chứng từ, chờ xác nhận
type VerifyingPayment struct{}

func (s *VerifyingPayment) Upload(r *PaymentRecord, proofURL string) error {
	// Upload lại sẽ thay thế chứng từ cũ
	r.ProofURL = proofURL
	return nil
}

func (s *VerifyingPayment) Verify(r *PaymentRecord, verifierName string, today time.Time) error {
	r.Status = PaymentStatusPaid
	r.PaidDate = utils.FormatDay(today)
	r.VerifiedBy = verifierName
	return nil
}

// PaidPayment trạng thái đã thanh toán xong
type PaidPayment struct{}

func (s *PaidPayment) Upload(r *PaymentRecord, proofURL string) error {
	return errors.NewAppError(errors.ErrCodeInvalidState, "Kỳ thanh toán đã hoàn tất, không thể upload chứng từ", nil)
}

func (s *PaidPayment) Verify(r *PaymentRecord, verifierName string, today time.Time) error {
	return errors.NewAppError(errors.ErrCodeAlreadySatisfied, "Kỳ thanh toán đã được xác nhận rồi", nil)
}

// GetPaymentState trả về state tương ứng với trạng thái kỳ thanh toán.
// OVERDUE chỉ là trạng thái hiển thị của PENDING nên dùng chung state.
func GetPaymentState(status PaymentStatus) PaymentState {
	switch status {
	case PaymentStatusVerifying:
		return &VerifyingPayment{}
	case PaymentStatusPaid:
		return &PaidPayment{}
	default:
		return &PendingPayment{}
	}
}
