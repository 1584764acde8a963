package services

import (
	"strings"
	"time"

	"propman/constants"
	"propman/errors"
	"propman/models"
	"propman/utils"
)

// RenewContract gia hạn hợp đồng thuê tháng. Chưa có ngày kết thúc thì mở
// khoảng mới [today, today + months], có rồi thì cộng thêm months tháng theo
// lịch. Nhận snapshot, trả snapshot mới, không đụng bản gốc.
func RenewContract(p models.Property, months int, today time.Time) (models.Property, error) {
	if p.Status == models.PropertyStatusCanceled {
		return p, errors.NewAppError(errors.ErrCodeInvalidState, "Hợp đồng đã hủy, không thể gia hạn", nil)
	}
	if p.RentalType != models.RentalMonthly {
		return p, errors.NewAppError(errors.ErrCodeInvalidRentalType, "Chỉ bất động sản cho thuê theo tháng mới có hợp đồng để gia hạn", nil)
	}
	if months < 1 {
		return p, errors.NewAppError(errors.ErrCodeValidation, "Số tháng gia hạn phải lớn hơn 0", nil)
	}
	// Gia hạn mà không có người thuê là lỗi phía gọi: trạng thái OCCUPIED
	// sau gia hạn chỉ nhất quán với hàm dẫn xuất khi có tên người thuê.
	if strings.TrimSpace(p.TenantName) == "" {
		return p, errors.NewAppError(errors.ErrCodeRequiredField, "Phải có tên người thuê trước khi gia hạn hợp đồng", nil)
	}

	day := utils.Day(today)
	if p.ContractEndDate == "" {
		p.ContractStartDate = utils.FormatDay(day)
		p.ContractEndDate = utils.FormatDay(utils.AddMonths(day, months))
	} else {
		end, err := utils.ParseDay(p.ContractEndDate)
		if err != nil {
			return p, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày kết thúc hợp đồng hiện tại không hợp lệ", err)
		}
		p.ContractEndDate = utils.FormatDay(utils.AddMonths(end, months))
	}

	// Gia hạn nghĩa là đang có người thuê
	p.Status = models.PropertyStatusOccupied
	return p, nil
}

// CancelContract hủy hợp đồng vĩnh viễn. Bắt buộc có lý do; hủy một bất
// động sản đã hủy là lỗi no-op chứ không ghi đè lặng lẽ.
func CancelContract(p models.Property, reason string, today time.Time) (models.Property, error) {
	if strings.TrimSpace(reason) == "" {
		return p, errors.NewAppError(errors.ErrCodeRequiredField, "Phải có lý do hủy hợp đồng", nil)
	}
	if p.Status == models.PropertyStatusCanceled {
		return p, errors.NewAppError(errors.ErrCodeAlreadySatisfied, "Hợp đồng đã bị hủy trước đó rồi", nil)
	}

	p.Status = models.PropertyStatusCanceled
	p.CancellationReason = reason
	p.CancellationDate = utils.FormatDay(today)
	return p, nil
}

// IsExpiringSoon kiểm tra hợp đồng có sắp hết hạn không: đang OCCUPIED,
// có ngày kết thúc và còn từ 0 tới 30 ngày.
func IsExpiringSoon(p *models.Property, today time.Time) bool {
	if p.Status != models.PropertyStatusOccupied || p.ContractEndDate == "" {
		return false
	}
	end, err := utils.ParseDay(p.ContractEndDate)
	if err != nil {
		return false
	}
	left := utils.DaysBetween(today, end)
	return left >= 0 && left <= constants.ExpiringSoonDays
}

// Trạng thái hợp đồng dùng cho màn hình chi tiết
const (
	ContractStateActive       = "ACTIVE"
	ContractStateExpiringSoon = "EXPIRING_SOON"
	ContractStateExpired      = "EXPIRED"
	ContractStateNoContract   = "NO_CONTRACT"
	ContractStateCanceled     = "CANCELED"
)

// ContractOverview tiến độ hợp đồng kèm trạng thái hiển thị
type ContractOverview struct {
	utils.ContractStats
	State string `json:"state"`
}

// ContractStats tính tiến độ hợp đồng của bất động sản tại ngày today
func ContractStats(p *models.Property, today time.Time) ContractOverview {
	if p.Status == models.PropertyStatusCanceled {
		return ContractOverview{State: ContractStateCanceled}
	}
	if p.ContractStartDate == "" || p.ContractEndDate == "" {
		return ContractOverview{State: ContractStateNoContract}
	}

	start, errStart := utils.ParseDay(p.ContractStartDate)
	end, errEnd := utils.ParseDay(p.ContractEndDate)
	if errStart != nil || errEnd != nil {
		return ContractOverview{State: ContractStateNoContract}
	}

	stats := utils.ContractProgress(start, end, today)
	state := ContractStateActive
	if stats.DaysLeft < 0 {
		state = ContractStateExpired
	} else if stats.DaysLeft <= constants.ExpiringSoonDays {
		state = ContractStateExpiringSoon
	}

	return ContractOverview{ContractStats: stats, State: state}
}
