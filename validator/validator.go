package validator

import (
	"regexp"
	"time"

	"propman/dto"
	"propman/errors"
	"propman/models"
)

// ValidateUser validate thông tin tài khoản đăng ký
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Username không được để trống", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	return nil
}

// ValidateProperty validate dữ liệu tạo bất động sản
func ValidateProperty(p *models.Property) error {
	if p.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên bất động sản không được để trống", nil)
	}

	if p.RentalType != models.RentalMonthly && p.RentalType != models.RentalDaily {
		return errors.NewAppError(errors.ErrCodeInvalidRentalType, "Loại hình thuê phải là MONTHLY hoặc DAILY", nil)
	}

	if p.RentAmount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá thuê phải lớn hơn 0", nil)
	}

	if p.PaymentDueDate != 0 && (p.PaymentDueDate < 1 || p.PaymentDueDate > 31) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày chốt thanh toán phải từ 1 đến 31", nil)
	}

	if err := validateContractWindow(p.ContractStartDate, p.ContractEndDate); err != nil {
		return err
	}

	return nil
}

func validateContractWindow(startDate, endDate string) error {
	var start, end time.Time
	var err error

	if startDate != "" {
		start, err = time.Parse("2006-01-02", startDate)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu hợp đồng không hợp lệ", err)
		}
	}

	if endDate != "" {
		end, err = time.Parse("2006-01-02", endDate)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc hợp đồng không hợp lệ", err)
		}
	}

	if startDate != "" && endDate != "" && end.Before(start) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	return nil
}

// ValidateBookingDraft validate dữ liệu nhận phòng
func ValidateBookingDraft(draft *dto.BookingDraft) error {
	if draft.DurationNights < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidDuration, "Số đêm ở phải ít nhất là 1", nil)
	}

	if draft.CheckInDate != "" {
		if _, err := time.Parse("2006-01-02", draft.CheckInDate); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
		}
	}

	if draft.TotalPrice != nil && *draft.TotalPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Tổng tiền không được âm", nil)
	}

	if draft.Deposit < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Tiền cọc không được âm", nil)
	}

	if draft.GuestPhone != "" && !isValidPhone(draft.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
	}

	return nil
}

// ValidatePaymentDraft validate dữ liệu tạo kỳ thanh toán
func ValidatePaymentDraft(draft *dto.PaymentDraft) error {
	if draft.Month == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tháng thanh toán không được để trống", nil)
	}

	if !isValidMonthKey(draft.Month) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Tháng thanh toán phải theo định dạng yyyy-MM", nil)
	}

	if draft.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}

	if _, err := time.Parse("2006-01-02", draft.DueDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Hạn thanh toán không hợp lệ", err)
	}

	return nil
}

// ValidateInspectionDraft validate dữ liệu ghi nhận kiểm tra
func ValidateInspectionDraft(draft *dto.InspectionDraft) error {
	if draft.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mô tả hạng mục không được để trống", nil)
	}

	if draft.RepairNeeded && draft.IsOk {
		return errors.NewAppError(errors.ErrCodeValidation, "Hạng mục đạt thì không đánh dấu cần sửa chữa", nil)
	}

	return nil
}

// ValidateAmount validate số tiền
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{9,11}$`)
	return phoneRegex.MatchString(phone)
}

// isValidMonthKey kiểm tra khóa tháng dạng yyyy-MM
func isValidMonthKey(month string) bool {
	monthRegex := regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	return monthRegex.MatchString(month)
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePhone kiểm tra số điện thoại hợp lệ
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}
