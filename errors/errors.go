package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Permission errors: request hợp lệ nhưng role không được phép thực hiện
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// State errors: request không hợp lệ với trạng thái hiện tại của bản ghi
	ErrCodeInvalidState     ErrorCode = "INVALID_STATE"
	ErrCodeAlreadySatisfied ErrorCode = "ALREADY_SATISFIED"

	// Property errors
	ErrCodePropertyNotFound  ErrorCode = "PROPERTY_NOT_FOUND"
	ErrCodeInvalidRentalType ErrorCode = "INVALID_RENTAL_TYPE"

	// Booking errors
	ErrCodeBookingNotFound ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeInvalidDuration ErrorCode = "INVALID_DURATION"
	ErrCodeBookingConflict ErrorCode = "BOOKING_CONFLICT"

	// Payment errors
	ErrCodePaymentNotFound ErrorCode = "PAYMENT_NOT_FOUND"
	ErrCodeDuplicateMonth  ErrorCode = "DUPLICATE_MONTH"

	// Inspection errors
	ErrCodeInspectionNotFound ErrorCode = "INSPECTION_NOT_FOUND"
	ErrCodeInvalidCost        ErrorCode = "INVALID_COST"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField   ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat   ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount   ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsPermissionError kiểm tra lỗi phân quyền để controller trả 403 thay vì 400
func IsPermissionError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == ErrCodePermissionDenied
}

// IsStateError kiểm tra lỗi trạng thái (bao gồm cả no-op đã thỏa mãn)
func IsStateError(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	return appErr.Code == ErrCodeInvalidState || appErr.Code == ErrCodeAlreadySatisfied
}

var (
	// Property errors
	ErrPropertyNotFound  = errors.New("property not found")
	ErrPropertyCancelled = errors.New("property contract already cancelled")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotActive  = errors.New("booking is not checked in")
	ErrBookingCancelled  = errors.New("booking already cancelled")
	ErrBookingCheckedOut = errors.New("booking already checked out")

	// Payment errors
	ErrPaymentNotFound  = errors.New("payment record not found")
	ErrPaymentNotProven = errors.New("payment record has no proof to verify")
	ErrPaymentPaid      = errors.New("payment record already paid")

	// Inspection errors
	ErrInspectionNotFound = errors.New("inspection item not found")
	ErrRepairDone         = errors.New("repair already completed")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
