package services

import (
	"regexp"
	"time"

	"propman/constants"
	"propman/dto"
	"propman/errors"
	"propman/models"
	"propman/utils"

	"github.com/google/uuid"
)

var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// verifierRoles các role được phép xác nhận kỳ thanh toán là đã trả
var verifierRoles = map[string]bool{
	constants.RoleAdmin: true,
	constants.RoleStaff: true,
	constants.RoleOwner: true,
}

// CanVerifyPayment kiểm tra role có quyền xác nhận thanh toán không
func CanVerifyPayment(role string) bool {
	return verifierRoles[role]
}

// CreatePaymentRecord tạo kỳ thanh toán mới ở trạng thái PENDING. Tạo thủ
// công theo từng kỳ; mỗi tháng chỉ một bản ghi trên một bất động sản.
func CreatePaymentRecord(p models.Property, draft dto.PaymentDraft) (models.Property, error) {
	if !monthKeyRegex.MatchString(draft.Month) {
		return p, errors.NewAppError(errors.ErrCodeInvalidFormat, "Kỳ thanh toán phải theo định dạng yyyy-MM", nil)
	}
	if draft.Amount <= 0 {
		return p, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}
	if _, err := utils.ParseDay(draft.DueDate); err != nil {
		return p, errors.NewAppError(errors.ErrCodeInvalidFormat, "Hạn thanh toán không hợp lệ", err)
	}
	for i := range p.PaymentHistory {
		if p.PaymentHistory[i].Month == draft.Month {
			return p, errors.NewAppError(errors.ErrCodeDuplicateMonth, "Kỳ "+draft.Month+" đã có bản ghi thanh toán", nil)
		}
	}

	record := models.PaymentRecord{
		ID:         uuid.NewString(),
		PropertyID: p.ID,
		Month:      draft.Month,
		Amount:     draft.Amount,
		DueDate:    draft.DueDate,
		Status:     models.PaymentStatusPending,
	}

	p.PaymentHistory = append(append([]models.PaymentRecord{}, p.PaymentHistory...), record)
	return p, nil
}

// RecordPayment gắn chứng từ thanh toán vào một kỳ: PENDING chuyển sang
// VERIFYING, upload lại sẽ thay chứng từ cũ. Ai có quyền ghi trên bất động
// sản cũng upload được.
func RecordPayment(p models.Property, paymentID, proofURL string) (models.Property, error) {
	if proofURL == "" {
		return p, errors.NewAppError(errors.ErrCodeRequiredField, "Phải có chứng từ thanh toán", nil)
	}

	history := append([]models.PaymentRecord{}, p.PaymentHistory...)
	record := findPayment(history, paymentID)
	if record == nil {
		return p, errors.NewAppError(errors.ErrCodePaymentNotFound, "Không tìm thấy kỳ thanh toán", nil)
	}

	state := models.GetPaymentState(record.Status)
	if err := state.Upload(record, proofURL); err != nil {
		return p, err
	}

	p.PaymentHistory = history
	return p, nil
}

// VerifyPayment xác nhận kỳ thanh toán VERIFYING là đã trả. Chỉ
// ADMIN/STAFF/OWNER được xác nhận; role khác bị chặn trước khi đụng tới
// bản ghi nên snapshot không đổi.
func VerifyPayment(p models.Property, paymentID, actorRole, actorName string, today time.Time) (models.Property, error) {
	if !CanVerifyPayment(actorRole) {
		return p, errors.NewAppError(errors.ErrCodePermissionDenied, "Role "+actorRole+" không có quyền xác nhận thanh toán", nil)
	}

	history := append([]models.PaymentRecord{}, p.PaymentHistory...)
	record := findPayment(history, paymentID)
	if record == nil {
		return p, errors.NewAppError(errors.ErrCodePaymentNotFound, "Không tìm thấy kỳ thanh toán", nil)
	}

	state := models.GetPaymentState(record.Status)
	if err := state.Verify(record, actorName, today); err != nil {
		return p, err
	}

	p.PaymentHistory = history
	return p, nil
}

// MarkOverduePayments chốt trạng thái OVERDUE cho các kỳ PENDING đã quá
// hạn (cron hàng ngày gọi để dashboard lọc nhanh không phải tính lại).
// PAID/VERIFYING không bao giờ bị hạ xuống OVERDUE.
func MarkOverduePayments(p *models.Property, today time.Time) int {
	changed := 0
	for i := range p.PaymentHistory {
		record := &p.PaymentHistory[i]
		effective := record.EffectiveStatus(today)
		if record.Status != effective {
			record.Status = effective
			changed++
		}
	}
	return changed
}

func findPayment(history []models.PaymentRecord, paymentID string) *models.PaymentRecord {
	for i := range history {
		if history[i].ID == paymentID {
			return &history[i]
		}
	}
	return nil
}
