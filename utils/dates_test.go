package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := ParseDay(s)
	require.NoError(t, err)
	return day
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("15/03/2024")
	assert.Error(t, err)

	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestDayStripsTime(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	late := time.Date(2024, 3, 15, 23, 45, 12, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Day(late))
}

func TestDayOverlap(t *testing.T) {
	start := mustDay(t, "2024-03-10")
	end := mustDay(t, "2024-03-13")

	tests := []struct {
		name string
		day  string
		want bool
	}{
		{"trước ngày nhận phòng", "2024-03-09", false},
		{"đúng ngày nhận phòng", "2024-03-10", true},
		{"giữa khoảng ở", "2024-03-12", true},
		{"ngày trả phòng không tính", "2024-03-13", false},
		{"sau ngày trả phòng", "2024-03-14", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayOverlap(start, end, mustDay(t, tt.day)))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 3, DaysBetween(mustDay(t, "2024-03-10"), mustDay(t, "2024-03-13")))
	assert.Equal(t, 0, DaysBetween(mustDay(t, "2024-03-10"), mustDay(t, "2024-03-10")))
	assert.Equal(t, -2, DaysBetween(mustDay(t, "2024-03-10"), mustDay(t, "2024-03-08")))
}

func TestAddMonths(t *testing.T) {
	// 31/01 + 1 tháng nhảy sang đầu tháng 3 theo chuẩn lịch của time.AddDate
	got := AddMonths(mustDay(t, "2024-01-31"), 1)
	assert.Equal(t, "2024-03-02", FormatDay(got))

	got = AddMonths(mustDay(t, "2024-01-15"), 12)
	assert.Equal(t, "2025-01-15", FormatDay(got))
}

func TestContractProgress(t *testing.T) {
	start := mustDay(t, "2024-01-01")
	end := mustDay(t, "2024-12-31")

	t.Run("giữa hợp đồng", func(t *testing.T) {
		stats := ContractProgress(start, end, mustDay(t, "2024-07-01"))
		assert.Equal(t, 365, stats.TotalDays)
		assert.Equal(t, 183, stats.DaysLeft)
		assert.Equal(t, 50, stats.Progress)
	})

	t.Run("trước ngày bắt đầu", func(t *testing.T) {
		stats := ContractProgress(start, end, mustDay(t, "2023-12-01"))
		assert.Equal(t, 0, stats.Progress)
	})

	t.Run("đã hết hạn", func(t *testing.T) {
		stats := ContractProgress(start, end, mustDay(t, "2025-02-01"))
		assert.Equal(t, 100, stats.Progress)
		assert.Negative(t, stats.DaysLeft)
	})

	t.Run("khoảng rỗng không chia cho 0", func(t *testing.T) {
		stats := ContractProgress(start, start, mustDay(t, "2024-01-01"))
		assert.Equal(t, 1, stats.TotalDays)
	})
}
