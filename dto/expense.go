package dto

// ExpenseDraft dữ liệu tạo khoản chi
type ExpenseDraft struct {
	Title      string  `json:"title" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Category   string  `json:"category" binding:"required"`
	Date       string  `json:"date"`
	Status     string  `json:"status" binding:"omitempty,oneof=UNPAID PAID"`
	ReceiptURL string  `json:"receiptUrl"`
}

// CreateExpenseRequest request tạo khoản chi cho một bất động sản
type CreateExpenseRequest struct {
	PropertyID string       `json:"propertyId" binding:"required"`
	Expense    ExpenseDraft `json:"expense" binding:"required"`
}
