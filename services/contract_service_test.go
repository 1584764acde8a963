package services

import (
	"testing"

	apperr "propman/errors"
	"propman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenewContractExtendsExistingWindow(t *testing.T) {
	p := monthlyProperty("2023-02-01", "2024-01-31", "Somchai")
	today := day(t, "2024-01-20")

	updated, err := RenewContract(p, 12, today)
	require.NoError(t, err)

	assert.Equal(t, "2023-02-01", updated.ContractStartDate)
	assert.Equal(t, "2025-01-31", updated.ContractEndDate)
	assert.Equal(t, models.PropertyStatusOccupied, updated.Status)

	// Snapshot gốc không bị đụng tới
	assert.Equal(t, "2024-01-31", p.ContractEndDate)
}

func TestRenewContractOpensNewWindow(t *testing.T) {
	p := monthlyProperty("", "", "Somchai")
	today := day(t, "2024-03-15")

	updated, err := RenewContract(p, 12, today)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", updated.ContractStartDate)
	assert.Equal(t, "2025-03-15", updated.ContractEndDate)
	assert.Equal(t, models.PropertyStatusOccupied, updated.Status)
}

func TestRenewContractRejections(t *testing.T) {
	today := day(t, "2024-03-15")

	t.Run("đã hủy", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		p.Status = models.PropertyStatusCanceled
		_, err := RenewContract(p, 12, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidState, apperr.GetAppError(err).Code)
	})

	t.Run("loại hình theo ngày", func(t *testing.T) {
		p := dailyProperty()
		_, err := RenewContract(p, 12, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidRentalType, apperr.GetAppError(err).Code)
	})

	t.Run("số tháng không hợp lệ", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		_, err := RenewContract(p, 0, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeValidation, apperr.GetAppError(err).Code)
	})

	t.Run("thiếu người thuê", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "")
		_, err := RenewContract(p, 12, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeRequiredField, apperr.GetAppError(err).Code)
	})
}

func TestCancelContract(t *testing.T) {
	today := day(t, "2024-03-15")

	p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
	p.Status = models.PropertyStatusOccupied

	updated, err := CancelContract(p, "Người thuê chuyển đi", today)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusCanceled, updated.Status)
	assert.Equal(t, "Người thuê chuyển đi", updated.CancellationReason)
	assert.Equal(t, "2024-03-15", updated.CancellationDate)
	// Ngày hợp đồng cũ giữ nguyên để xem lại lịch sử
	assert.Equal(t, "2024-12-31", updated.ContractEndDate)

	t.Run("thiếu lý do", func(t *testing.T) {
		_, err := CancelContract(p, "  ", today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeRequiredField, apperr.GetAppError(err).Code)
	})

	t.Run("hủy hai lần là lỗi", func(t *testing.T) {
		_, err := CancelContract(updated, "lại nữa", today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeAlreadySatisfied, apperr.GetAppError(err).Code)
	})
}

func TestIsExpiringSoon(t *testing.T) {
	tests := []struct {
		name   string
		end    string
		status models.PropertyStatus
		today  string
		want   bool
	}{
		{"còn 30 ngày", "2024-04-14", models.PropertyStatusOccupied, "2024-03-15", true},
		{"hết hạn hôm nay", "2024-03-15", models.PropertyStatusOccupied, "2024-03-15", true},
		{"còn 31 ngày", "2024-04-15", models.PropertyStatusOccupied, "2024-03-15", false},
		{"đã quá hạn", "2024-03-01", models.PropertyStatusOccupied, "2024-03-15", false},
		{"không ở trạng thái OCCUPIED", "2024-04-01", models.PropertyStatusVacant, "2024-03-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := monthlyProperty("2023-04-15", tt.end, "Somchai")
			p.Status = tt.status
			assert.Equal(t, tt.want, IsExpiringSoon(&p, day(t, tt.today)))
		})
	}
}

func TestContractStats(t *testing.T) {
	t.Run("đang hiệu lực", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		p.Status = models.PropertyStatusOccupied
		overview := ContractStats(&p, day(t, "2024-03-15"))
		assert.Equal(t, ContractStateActive, overview.State)
		assert.Positive(t, overview.DaysLeft)
	})

	t.Run("sắp hết hạn", func(t *testing.T) {
		p := monthlyProperty("2023-04-01", "2024-03-31", "Somchai")
		p.Status = models.PropertyStatusOccupied
		overview := ContractStats(&p, day(t, "2024-03-15"))
		assert.Equal(t, ContractStateExpiringSoon, overview.State)
	})

	t.Run("đã hết hạn", func(t *testing.T) {
		p := monthlyProperty("2023-01-01", "2023-12-31", "Somchai")
		overview := ContractStats(&p, day(t, "2024-03-15"))
		assert.Equal(t, ContractStateExpired, overview.State)
		assert.Negative(t, overview.DaysLeft)
	})

	t.Run("chưa có hợp đồng", func(t *testing.T) {
		p := monthlyProperty("", "", "")
		overview := ContractStats(&p, day(t, "2024-03-15"))
		assert.Equal(t, ContractStateNoContract, overview.State)
	})

	t.Run("đã hủy", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		p.Status = models.PropertyStatusCanceled
		overview := ContractStats(&p, day(t, "2024-03-15"))
		assert.Equal(t, ContractStateCanceled, overview.State)
	})
}
