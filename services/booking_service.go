package services

import (
	"time"

	"propman/builders"
	"propman/dto"
	"propman/errors"
	"propman/models"
	"propman/utils"
)

// BookingOnDay quét tuyến tính các booking chưa hủy, trả về booking đầu
// tiên có khoảng [checkIn, checkOut) chứa day. Dẫn xuất trạng thái hôm nay
// và vẽ lưới lịch tháng đều phải đi qua đúng hàm này, tránh hai nơi tính
// hai kiểu rồi lệch nhau.
func BookingOnDay(p *models.Property, day time.Time) *models.Booking {
	for i := range p.Bookings {
		b := &p.Bookings[i]
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		start, errStart := utils.ParseDay(b.CheckInDate)
		end, errEnd := utils.ParseDay(b.CheckOutDate)
		if errStart != nil || errEnd != nil {
			continue
		}
		if utils.DayOverlap(start, end, day) {
			return b
		}
	}
	return nil
}

// CheckIn tạo booking mới ở trạng thái CHECKED_IN (hệ thống không có bước
// đặt trước rồi mới tới, khách tới là ghi nhận luôn) và tính lại trạng
// thái bất động sản. Nhận snapshot, trả snapshot mới.
func CheckIn(p models.Property, draft dto.BookingDraft, today time.Time) (models.Property, error) {
	if p.Status == models.PropertyStatusCanceled {
		return p, errors.NewAppError(errors.ErrCodeInvalidState, "Bất động sản đã hủy hợp đồng, không thể nhận khách", nil)
	}
	if p.RentalType != models.RentalDaily {
		return p, errors.NewAppError(errors.ErrCodeInvalidRentalType, "Chỉ bất động sản cho thuê theo ngày mới nhận booking", nil)
	}
	if draft.DurationNights < 1 {
		return p, errors.NewAppError(errors.ErrCodeInvalidDuration, "Số đêm ở phải ít nhất là 1", nil)
	}

	checkIn := utils.Day(today)
	if draft.CheckInDate != "" {
		parsed, err := utils.ParseDay(draft.CheckInDate)
		if err != nil {
			return p, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
		}
		checkIn = parsed
	}
	checkOut := checkIn.AddDate(0, 0, draft.DurationNights)

	// Chặn double-book: khoảng mới không được giao với booking còn hiệu lực
	for i := range p.Bookings {
		b := &p.Bookings[i]
		if !b.Active() {
			continue
		}
		existStart, errStart := utils.ParseDay(b.CheckInDate)
		existEnd, errEnd := utils.ParseDay(b.CheckOutDate)
		if errStart != nil || errEnd != nil {
			continue
		}
		if checkIn.Before(existEnd) && existStart.Before(checkOut) {
			return p, errors.NewAppError(errors.ErrCodeBookingConflict, "Khoảng ngày bị trùng với booking của khách "+b.GuestName, nil)
		}
	}

	// Giá mặc định = giá thuê ngày x số đêm, cho phép ghi đè
	totalPrice := p.RentAmount * float64(draft.DurationNights)
	if draft.TotalPrice != nil {
		totalPrice = *draft.TotalPrice
	}

	guestName := draft.GuestName
	if guestName == "" {
		guestName = "Anonymous Guest"
	}

	paymentMethod := draft.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodTransfer
	}

	booking := builders.NewBookingBuilder().
		WithProperty(p.ID).
		WithGuestInfo(guestName, draft.GuestPhone).
		WithCheckIn(utils.FormatDay(checkIn)).
		WithCheckOut(utils.FormatDay(checkOut)).
		WithTotalPrice(totalPrice).
		WithDeposit(draft.Deposit, paymentMethod).
		WithStatus(models.BookingStatusCheckedIn).
		Build()

	p.Bookings = append(append([]models.Booking{}, p.Bookings...), *booking)
	RefreshStatus(&p, today)
	return p, nil
}

// CheckOut chuyển booking CHECKED_IN sang CHECKED_OUT rồi tính lại trạng
// thái. Kết quả phải là VACANT trừ khi còn booking khác phủ hôm nay
// (trả phòng và nhận phòng cùng ngày là hợp lệ, không được kẹt derivation).
func CheckOut(p models.Property, bookingID string, today time.Time) (models.Property, error) {
	bookings := append([]models.Booking{}, p.Bookings...)

	found := false
	for i := range bookings {
		if bookings[i].ID != bookingID {
			continue
		}
		found = true
		state := models.GetBookingState(bookings[i].Status)
		if err := state.CheckOut(&bookings[i]); err != nil {
			return p, err
		}
		break
	}
	if !found {
		return p, errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy booking", nil)
	}

	p.Bookings = bookings
	RefreshStatus(&p, today)
	return p, nil
}

// CancelBooking hủy một booking; booking đã hủy không còn tham gia tính
// chiếm dụng nữa
func CancelBooking(p models.Property, bookingID string, today time.Time) (models.Property, error) {
	bookings := append([]models.Booking{}, p.Bookings...)

	found := false
	for i := range bookings {
		if bookings[i].ID != bookingID {
			continue
		}
		found = true
		state := models.GetBookingState(bookings[i].Status)
		if err := state.Cancel(&bookings[i]); err != nil {
			return p, err
		}
		break
	}
	if !found {
		return p, errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy booking", nil)
	}

	p.Bookings = bookings
	RefreshStatus(&p, today)
	return p, nil
}
