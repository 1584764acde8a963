package dto

// PaymentDraft dữ liệu tạo kỳ thanh toán mới
type PaymentDraft struct {
	Month   string  `json:"month" binding:"required"` // yyyy-MM
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	DueDate string  `json:"dueDate" binding:"required"`
}

// CreatePaymentRequest request tạo kỳ thanh toán cho một bất động sản
type CreatePaymentRequest struct {
	PropertyID string       `json:"propertyId" binding:"required"`
	Payment    PaymentDraft `json:"payment" binding:"required"`
}

// UploadProofRequest request gắn chứng từ thanh toán
type UploadProofRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	PaymentID  string `json:"paymentId" binding:"required"`
	ProofURL   string `json:"proofUrl" binding:"required"`
}

// VerifyPaymentRequest request xác nhận kỳ thanh toán đã trả
type VerifyPaymentRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	PaymentID  string `json:"paymentId" binding:"required"`
}
