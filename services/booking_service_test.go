package services

import (
	"testing"

	"propman/dto"
	apperr "propman/errors"
	"propman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInCreatesCheckedInBooking(t *testing.T) {
	p := dailyProperty()
	today := day(t, "2024-03-10")

	updated, err := CheckIn(p, dto.BookingDraft{
		GuestName:      "Malee",
		DurationNights: 3,
	}, today)
	require.NoError(t, err)
	require.Len(t, updated.Bookings, 1)

	booking := updated.Bookings[0]
	assert.Equal(t, models.BookingStatusCheckedIn, booking.Status)
	assert.Equal(t, "2024-03-10", booking.CheckInDate)
	assert.Equal(t, "2024-03-13", booking.CheckOutDate)
	assert.Equal(t, 1200.0*3, booking.TotalPrice)
	assert.Equal(t, models.PaymentMethodTransfer, booking.PaymentMethod)
	assert.Equal(t, models.PropertyStatusOccupied, updated.Status)

	// Snapshot gốc không đổi
	assert.Empty(t, p.Bookings)
}

func TestCheckInDefaults(t *testing.T) {
	p := dailyProperty()
	today := day(t, "2024-03-10")

	override := 5000.0
	updated, err := CheckIn(p, dto.BookingDraft{
		CheckInDate:    "2024-04-01",
		DurationNights: 2,
		TotalPrice:     &override,
		PaymentMethod:  models.PaymentMethodCash,
	}, today)
	require.NoError(t, err)

	booking := updated.Bookings[0]
	assert.Equal(t, "Anonymous Guest", booking.GuestName)
	assert.Equal(t, "2024-04-01", booking.CheckInDate)
	assert.Equal(t, 5000.0, booking.TotalPrice)
	assert.Equal(t, models.PaymentMethodCash, booking.PaymentMethod)
}

func TestCheckInRejectsDoubleBooking(t *testing.T) {
	existing := models.Booking{
		ID: "b1", GuestName: "Somchai",
		CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
		Status: models.BookingStatusCheckedIn,
	}
	today := day(t, "2024-03-09")

	t.Run("giao nhau thì chặn", func(t *testing.T) {
		p := dailyProperty(existing)
		_, err := CheckIn(p, dto.BookingDraft{
			CheckInDate:    "2024-03-12",
			DurationNights: 2,
		}, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeBookingConflict, apperr.GetAppError(err).Code)
	})

	t.Run("nhận phòng đúng ngày khách cũ trả phòng là hợp lệ", func(t *testing.T) {
		p := dailyProperty(existing)
		updated, err := CheckIn(p, dto.BookingDraft{
			CheckInDate:    "2024-03-13",
			DurationNights: 2,
		}, today)
		require.NoError(t, err)
		assert.Len(t, updated.Bookings, 2)
	})

	t.Run("booking đã hủy không chặn", func(t *testing.T) {
		cancelled := existing
		cancelled.Status = models.BookingStatusCancelled
		p := dailyProperty(cancelled)
		_, err := CheckIn(p, dto.BookingDraft{
			CheckInDate:    "2024-03-11",
			DurationNights: 1,
		}, today)
		require.NoError(t, err)
	})
}

func TestCheckInRejections(t *testing.T) {
	today := day(t, "2024-03-10")

	t.Run("loại hình theo tháng", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		_, err := CheckIn(p, dto.BookingDraft{DurationNights: 1}, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidRentalType, apperr.GetAppError(err).Code)
	})

	t.Run("số đêm bằng 0", func(t *testing.T) {
		p := dailyProperty()
		_, err := CheckIn(p, dto.BookingDraft{DurationNights: 0}, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidDuration, apperr.GetAppError(err).Code)
	})

	t.Run("đã hủy hợp đồng", func(t *testing.T) {
		p := dailyProperty()
		p.Status = models.PropertyStatusCanceled
		_, err := CheckIn(p, dto.BookingDraft{DurationNights: 1}, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidState, apperr.GetAppError(err).Code)
	})
}

func TestCheckOut(t *testing.T) {
	p := dailyProperty(models.Booking{
		ID: "b1", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
		Status: models.BookingStatusCheckedIn,
	})
	p.Status = models.PropertyStatusOccupied
	today := day(t, "2024-03-12")

	updated, err := CheckOut(p, "b1", today)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedOut, updated.Bookings[0].Status)
	assert.Equal(t, models.PropertyStatusVacant, updated.Status)

	t.Run("booking không tồn tại", func(t *testing.T) {
		_, err := CheckOut(p, "missing", today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeBookingNotFound, apperr.GetAppError(err).Code)
	})

	t.Run("trả phòng hai lần là lỗi", func(t *testing.T) {
		_, err := CheckOut(updated, "b1", today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeAlreadySatisfied, apperr.GetAppError(err).Code)
	})
}

func TestCheckOutKeepsOccupiedWhenAnotherGuestStays(t *testing.T) {
	p := dailyProperty(
		models.Booking{
			ID: "b1", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-12",
			Status: models.BookingStatusCheckedIn,
		},
		models.Booking{
			ID: "b2", CheckInDate: "2024-03-12", CheckOutDate: "2024-03-15",
			Status: models.BookingStatusCheckedIn,
		},
	)
	today := day(t, "2024-03-12")

	updated, err := CheckOut(p, "b1", today)
	require.NoError(t, err)
	// Khách b2 nhận phòng đúng ngày b1 trả, trạng thái phải giữ OCCUPIED
	assert.Equal(t, models.PropertyStatusOccupied, updated.Status)
}

func TestCancelBooking(t *testing.T) {
	today := day(t, "2024-03-09")

	t.Run("hủy booking đã xác nhận", func(t *testing.T) {
		p := dailyProperty(models.Booking{
			ID: "b1", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
			Status: models.BookingStatusConfirmed,
		})
		p.Status = models.PropertyStatusBooked

		updated, err := CancelBooking(p, "b1", today)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, updated.Bookings[0].Status)
		assert.Equal(t, models.PropertyStatusVacant, updated.Status)
	})

	t.Run("khách đang ở thì không hủy được", func(t *testing.T) {
		p := dailyProperty(models.Booking{
			ID: "b1", CheckInDate: "2024-03-08", CheckOutDate: "2024-03-13",
			Status: models.BookingStatusCheckedIn,
		})
		_, err := CancelBooking(p, "b1", today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidState, apperr.GetAppError(err).Code)
	})
}

func TestBookingOnDay(t *testing.T) {
	p := dailyProperty(
		models.Booking{
			ID: "b1", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
			Status: models.BookingStatusCancelled,
		},
		models.Booking{
			ID: "b2", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
			Status: models.BookingStatusCheckedIn,
		},
	)

	got := BookingOnDay(&p, day(t, "2024-03-11"))
	require.NotNil(t, got)
	// Booking đã hủy bị bỏ qua dù đứng trước trong danh sách
	assert.Equal(t, "b2", got.ID)

	assert.Nil(t, BookingOnDay(&p, day(t, "2024-03-13")))
}
