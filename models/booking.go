package models

import (
	"time"
)

// BookingStatus trạng thái của một booking theo ngày
type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn  BookingStatus = "CHECKED_IN"
	BookingStatusCheckedOut BookingStatus = "CHECKED_OUT"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// Payment method
const (
	PaymentMethodTransfer = "TRANSFER"
	PaymentMethodCash     = "CASH"
)

type Booking struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	PropertyID string `json:"propertyId" gorm:"index;size:36"`
	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`

	// Khoảng ở là nửa mở [CheckInDate, CheckOutDate): ngày trả phòng
	// không tính, hai booking nối đuôi nhau cùng ngày không đụng nhau.
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`

	TotalPrice    float64       `json:"totalPrice"`
	Deposit       float64       `json:"deposit"`
	PaymentMethod string        `json:"paymentMethod"` // TRANSFER | CASH
	Status        BookingStatus `json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Active booking còn tham gia tính chiếm dụng hay không
func (b *Booking) Active() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusCheckedOut
}
