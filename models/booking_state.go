package models

import "propman/errors"

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	CheckIn(b *Booking) error
	CheckOut(b *Booking) error
	Cancel(b *Booking) error
}

// ConfirmedBooking trạng thái đã đặt, chưa nhận phòng
type ConfirmedBooking struct{}

func (s *ConfirmedBooking) CheckIn(b *Booking) error {
	b.Status = BookingStatusCheckedIn
	return nil
}

func (s *ConfirmedBooking) CheckOut(b *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidState, "Booking chưa nhận phòng, không thể trả phòng", nil)
}

func (s *ConfirmedBooking) Cancel(b *Booking) error {
	b.Status = BookingStatusCancelled
	return nil
}

// CheckedInBooking trạng thái đang ở
type CheckedInBooking struct{}

func (s *CheckedInBooking) CheckIn(b *Booking) error {
	return errors.NewAppError(errors.ErrCodeAlreadySatisfied, "Booking đã nhận phòng rồi", nil)
}

func (s *CheckedInBooking) CheckOut(b *Booking) error {
	b.Status = BookingStatusCheckedOut
	return nil
}

func (s *CheckedInBooking) Cancel(b *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidState, "Khách đang ở, không thể hủy booking", nil)
}

// CheckedOutBooking trạng thái đã trả phòng
type CheckedOutBooking struct{}

func (s *CheckedOutBooking) CheckIn(b *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidState, "Booking đã trả phòng, không thể nhận phòng lại", nil)
}

func (s *CheckedOutBooking) CheckOut(b *Booking) error {
	return errors.NewAppError(errors.ErrCodeAlreadySatisfied, "Booking đã trả phòng rồi", nil)
}

func (s *CheckedOutBooking) Cancel(b *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidState, "Booking đã trả phòng, không thể hủy", nil)
}

// CancelledBooking trạng thái đã hủy, không tham gia tính chiếm dụng nữa
type CancelledBooking struct{}

func (s *CancelledBooking) CheckIn(b *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidState, "Booking đã hủy, không thể nhận phòng", nil)
}

func (s *CancelledBooking) CheckOut(b *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidState, "Booking đã hủy, không thể trả phòng", nil)
}

func (s *CancelledBooking) Cancel(b *Booking) error {
	return errors.NewAppError(errors.ErrCodeAlreadySatisfied, "Booking đã hủy rồi", nil)
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status BookingStatus) BookingState {
	switch status {
	case BookingStatusConfirmed:
		return &ConfirmedBooking{}
	case BookingStatusCheckedIn:
		return &CheckedInBooking{}
	case BookingStatusCheckedOut:
		return &CheckedOutBooking{}
	case BookingStatusCancelled:
		return &CancelledBooking{}
	default:
		return &ConfirmedBooking{}
	}
}
