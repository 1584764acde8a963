package dto

// BookingDraft dữ liệu tạo booking khi khách nhận phòng. CheckInDate rỗng
// thì lấy hôm nay; TotalPrice nil thì tính theo giá thuê ngày x số đêm.
type BookingDraft struct {
	GuestName      string   `json:"guestName"`
	GuestPhone     string   `json:"guestPhone"`
	CheckInDate    string   `json:"checkInDate"`
	DurationNights int      `json:"durationNights" binding:"required,min=1"`
	TotalPrice     *float64 `json:"totalPrice"`
	Deposit        float64  `json:"deposit"`
	PaymentMethod  string   `json:"paymentMethod" binding:"omitempty,oneof=TRANSFER CASH"`
}

// CheckInRequest request nhận phòng
type CheckInRequest struct {
	PropertyID string       `json:"propertyId" binding:"required"`
	Booking    BookingDraft `json:"booking" binding:"required"`
}

// CheckOutRequest request trả phòng
type CheckOutRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	BookingID  string `json:"bookingId" binding:"required"`
}

// CancelBookingRequest request hủy booking
type CancelBookingRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	BookingID  string `json:"bookingId" binding:"required"`
}

// CalendarCell một ô trong lưới lịch tháng của một bất động sản
type CalendarCell struct {
	Date       string `json:"date"`
	BookingID  string `json:"bookingId,omitempty"`
	GuestName  string `json:"guestName,omitempty"`
	Status     string `json:"status,omitempty"`
	IsOccupied bool   `json:"isOccupied"`
}
