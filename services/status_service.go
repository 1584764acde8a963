package services

import (
	"time"

	"propman/models"
	"propman/utils"
)

// DeriveStatus tính trạng thái chiếm dụng của bất động sản tại ngày today.
// Hàm thuần: không đọc clock, không side effect, gọi bao nhiêu lần cũng ra
// cùng kết quả trên cùng snapshot. Mọi mutation chạm vào hợp đồng, người
// thuê hay booking đều phải gọi lại hàm này và lưu kết quả vào Status.
func DeriveStatus(p *models.Property, today time.Time) models.PropertyStatus {
	// CANCELED là trạng thái chốt, không bao giờ tính lại
	if p.Status == models.PropertyStatusCanceled {
		return models.PropertyStatusCanceled
	}

	day := utils.Day(today)

	switch details := p.RentalDetails().(type) {
	case models.DailyBookingSet:
		return deriveDailyStatus(details, day)
	case models.RentalContract:
		return deriveMonthlyStatus(details, day)
	default:
		return models.PropertyStatusVacant
	}
}

func deriveDailyStatus(set models.DailyBookingSet, day time.Time) models.PropertyStatus {
	// Booking đang phủ ngày hôm nay (bỏ qua booking đã hủy/đã trả phòng)
	for _, b := range set.Bookings {
		if !b.Active() {
			continue
		}
		start, errStart := utils.ParseDay(b.CheckInDate)
		end, errEnd := utils.ParseDay(b.CheckOutDate)
		if errStart != nil || errEnd != nil {
			continue
		}
		if utils.DayOverlap(start, end, day) {
			if b.Status == models.BookingStatusCheckedIn {
				return models.PropertyStatusOccupied
			}
			return models.PropertyStatusBooked
		}
	}

	// Có booking CONFIRMED trong tương lai thì đánh dấu BOOKED
	for _, b := range set.Bookings {
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		start, err := utils.ParseDay(b.CheckInDate)
		if err != nil {
			continue
		}
		if start.After(day) {
			return models.PropertyStatusBooked
		}
	}

	return models.PropertyStatusVacant
}

func deriveMonthlyStatus(contract models.RentalContract, day time.Time) models.PropertyStatus {
	// Chưa đủ hợp đồng + người thuê thì coi như trống
	if !contract.HasWindow() {
		return models.PropertyStatusVacant
	}

	// Khoảng hợp đồng tính cả hai đầu [start, end]
	if !day.Before(*contract.StartDate) && !day.After(*contract.EndDate) {
		return models.PropertyStatusOccupied
	}

	// Hợp đồng có nhưng chưa tới ngày bắt đầu
	if day.Before(*contract.StartDate) {
		return models.PropertyStatusBooked
	}

	// Hết hạn hợp đồng không tự hủy: quay về VACANT, ngày hợp đồng cũ vẫn giữ
	return models.PropertyStatusVacant
}

// RefreshStatus tính lại Status và ghi vào snapshot. Trả về true nếu trạng
// thái thay đổi so với giá trị đang cache.
func RefreshStatus(p *models.Property, today time.Time) bool {
	derived := DeriveStatus(p, today)
	if p.Status == derived {
		return false
	}
	p.Status = derived
	return true
}
