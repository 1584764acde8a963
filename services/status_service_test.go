package services

import (
	"testing"
	"time"

	"propman/models"
	"propman/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDay(s)
	require.NoError(t, err)
	return d
}

func monthlyProperty(start, end, tenant string) models.Property {
	return models.Property{
		ID:                "prop-1",
		Name:              "Phòng 101",
		RentalType:        models.RentalMonthly,
		RentAmount:        8000,
		ContractStartDate: start,
		ContractEndDate:   end,
		TenantName:        tenant,
	}
}

func dailyProperty(bookings ...models.Booking) models.Property {
	return models.Property{
		ID:         "prop-2",
		Name:       "Villa B",
		RentalType: models.RentalDaily,
		RentAmount: 1200,
		Bookings:   bookings,
	}
}

func TestDeriveStatusMonthly(t *testing.T) {
	tests := []struct {
		name     string
		property models.Property
		today    string
		want     models.PropertyStatus
	}{
		{
			name:     "trong khoảng hợp đồng",
			property: monthlyProperty("2024-01-01", "2024-12-31", "Somchai"),
			today:    "2024-06-15",
			want:     models.PropertyStatusOccupied,
		},
		{
			name:     "đúng ngày bắt đầu",
			property: monthlyProperty("2024-01-01", "2024-12-31", "Somchai"),
			today:    "2024-01-01",
			want:     models.PropertyStatusOccupied,
		},
		{
			name:     "đúng ngày kết thúc vẫn còn ở",
			property: monthlyProperty("2024-01-01", "2024-12-31", "Somchai"),
			today:    "2024-12-31",
			want:     models.PropertyStatusOccupied,
		},
		{
			name:     "chưa tới ngày bắt đầu",
			property: monthlyProperty("2024-06-01", "2025-05-31", "Somchai"),
			today:    "2024-05-01",
			want:     models.PropertyStatusBooked,
		},
		{
			name:     "hết hạn hợp đồng quay về trống",
			property: monthlyProperty("2023-01-01", "2023-12-31", "Somchai"),
			today:    "2024-02-01",
			want:     models.PropertyStatusVacant,
		},
		{
			name:     "có hợp đồng nhưng thiếu người thuê",
			property: monthlyProperty("2024-01-01", "2024-12-31", ""),
			today:    "2024-06-15",
			want:     models.PropertyStatusVacant,
		},
		{
			name:     "chưa có hợp đồng",
			property: monthlyProperty("", "", "Somchai"),
			today:    "2024-06-15",
			want:     models.PropertyStatusVacant,
		},
		{
			name:     "ngày hợp đồng không parse được coi như chưa có",
			property: monthlyProperty("01/01/2024", "2024-12-31", "Somchai"),
			today:    "2024-06-15",
			want:     models.PropertyStatusVacant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(&tt.property, day(t, tt.today))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveStatusDaily(t *testing.T) {
	tests := []struct {
		name     string
		property models.Property
		today    string
		want     models.PropertyStatus
	}{
		{
			name: "khách đang ở hôm nay",
			property: dailyProperty(models.Booking{
				ID: "b1", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
				Status: models.BookingStatusCheckedIn,
			}),
			today: "2024-03-11",
			want:  models.PropertyStatusOccupied,
		},
		{
			name: "booking xác nhận phủ hôm nay nhưng chưa nhận phòng",
			property: dailyProperty(models.Booking{
				ID: "b1", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
				Status: models.BookingStatusConfirmed,
			}),
			today: "2024-03-11",
			want:  models.PropertyStatusBooked,
		},
		{
			name: "ngày trả phòng không tính là ngày ở",
			property: dailyProperty(models.Booking{
				ID: "b1", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
				Status: models.BookingStatusCheckedIn,
			}),
			today: "2024-03-13",
			want:  models.PropertyStatusVacant,
		},
		{
			name: "booking tương lai đánh dấu BOOKED",
			property: dailyProperty(models.Booking{
				ID: "b1", CheckInDate: "2024-04-01", CheckOutDate: "2024-04-05",
				Status: models.BookingStatusConfirmed,
			}),
			today: "2024-03-11",
			want:  models.PropertyStatusBooked,
		},
		{
			name: "booking đã hủy không tham gia",
			property: dailyProperty(models.Booking{
				ID: "b1", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
				Status: models.BookingStatusCancelled,
			}),
			today: "2024-03-11",
			want:  models.PropertyStatusVacant,
		},
		{
			name: "booking đã trả phòng không tham gia",
			property: dailyProperty(models.Booking{
				ID: "b1", CheckInDate: "2024-03-10", CheckOutDate: "2024-03-13",
				Status: models.BookingStatusCheckedOut,
			}),
			today: "2024-03-11",
			want:  models.PropertyStatusVacant,
		},
		{
			name:     "không có booking nào",
			property: dailyProperty(),
			today:    "2024-03-11",
			want:     models.PropertyStatusVacant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(&tt.property, day(t, tt.today))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveStatusCanceledIsFinal(t *testing.T) {
	p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
	p.Status = models.PropertyStatusCanceled

	got := DeriveStatus(&p, day(t, "2024-06-15"))
	assert.Equal(t, models.PropertyStatusCanceled, got)
}

func TestRefreshStatus(t *testing.T) {
	p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
	p.Status = models.PropertyStatusVacant

	changed := RefreshStatus(&p, day(t, "2024-06-15"))
	assert.True(t, changed)
	assert.Equal(t, models.PropertyStatusOccupied, p.Status)

	changed = RefreshStatus(&p, day(t, "2024-06-15"))
	assert.False(t, changed)
}
