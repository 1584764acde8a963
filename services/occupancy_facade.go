package services

import (
	"time"

	"propman/dto"
	"propman/models"
	"propman/services/notification"
)

// OccupancyFacade đơn giản hóa các thao tác nhận/trả phòng cho controller:
// mọi thay đổi đi qua PropertyService.Mutate, thông báo đẩy qua websocket.
type OccupancyFacade struct {
	propertyService *PropertyService
	notifier        notification.Service
}

// NewOccupancyFacade tạo instance mới của OccupancyFacade
func NewOccupancyFacade(propertyService *PropertyService, notifier notification.Service) *OccupancyFacade {
	return &OccupancyFacade{
		propertyService: propertyService,
		notifier:        notifier,
	}
}

// CheckInGuest nhận khách vào một bất động sản cho thuê theo ngày
func (f *OccupancyFacade) CheckInGuest(propertyID string, draft dto.BookingDraft, today time.Time) (*models.Property, error) {
	updated, err := f.propertyService.Mutate(propertyID, today, func(p models.Property) (models.Property, error) {
		return CheckIn(p, draft, today)
	})
	if err != nil {
		return nil, err
	}

	f.broadcastStatus(updated)
	return updated, nil
}

// CheckOutGuest trả phòng cho booking đang ở
func (f *OccupancyFacade) CheckOutGuest(propertyID, bookingID string, today time.Time) (*models.Property, error) {
	updated, err := f.propertyService.Mutate(propertyID, today, func(p models.Property) (models.Property, error) {
		return CheckOut(p, bookingID, today)
	})
	if err != nil {
		return nil, err
	}

	f.broadcastStatus(updated)
	return updated, nil
}

// CancelGuestBooking hủy một booking chưa trả phòng
func (f *OccupancyFacade) CancelGuestBooking(propertyID, bookingID string, today time.Time) (*models.Property, error) {
	updated, err := f.propertyService.Mutate(propertyID, today, func(p models.Property) (models.Property, error) {
		return CancelBooking(p, bookingID, today)
	})
	if err != nil {
		return nil, err
	}

	f.broadcastStatus(updated)
	return updated, nil
}

func (f *OccupancyFacade) broadcastStatus(p *models.Property) {
	if f.notifier == nil {
		return
	}
	message := notification.NewStatusChangeBuilder(p.Name, "", string(p.Status)).Build()
	// Thông báo thất bại không làm hỏng nghiệp vụ chính
	_ = f.notifier.SendMessage(message)
}
