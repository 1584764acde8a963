package builders

import (
	"propman/models"

	"github.com/google/uuid"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{ID: uuid.NewString()},
	}
}

// WithProperty gắn booking vào một bất động sản
func (b *BookingBuilder) WithProperty(propertyID string) *BookingBuilder {
	b.booking.PropertyID = propertyID
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	return b
}

// WithCheckIn thêm ngày nhận phòng
func (b *BookingBuilder) WithCheckIn(checkIn string) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	return b
}

// WithCheckOut thêm ngày trả phòng
func (b *BookingBuilder) WithCheckOut(checkOut string) *BookingBuilder {
	b.booking.CheckOutDate = checkOut
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status models.BookingStatus) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithTotalPrice thêm tổng giá
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// WithDeposit thêm tiền cọc và hình thức thanh toán
func (b *BookingBuilder) WithDeposit(deposit float64, method string) *BookingBuilder {
	b.booking.Deposit = deposit
	b.booking.PaymentMethod = method
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
