package services

import (
	"testing"

	"propman/constants"
	"propman/dto"
	apperr "propman/errors"
	"propman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inspectionDraft(repairNeeded bool) dto.InspectionDraft {
	return dto.InspectionDraft{
		Category:      "ELECTRICAL",
		Description:   "Máy lạnh không chạy",
		IsOk:          false,
		RepairNeeded:  repairNeeded,
		InspectorName: "Anan",
	}
}

func TestAddInspection(t *testing.T) {
	today := day(t, "2024-03-15")

	t.Run("hạng mục cần sửa kéo trạng thái tổng", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		p.RepairStatus = models.RepairNormal

		updated, err := AddInspection(p, inspectionDraft(true), today)
		require.NoError(t, err)
		require.Len(t, updated.Inspections, 1)

		item := updated.Inspections[0]
		assert.Equal(t, models.InspectionRepairPending, item.RepairStatus)
		assert.Equal(t, "2024-03-15", item.Date)
		assert.Equal(t, models.RepairPendingRepair, updated.RepairStatus)

		// Snapshot gốc không đổi
		assert.Equal(t, models.RepairNormal, p.RepairStatus)
	})

	t.Run("hạng mục đạt không đổi trạng thái tổng", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		draft := inspectionDraft(false)
		draft.IsOk = true

		updated, err := AddInspection(p, draft, today)
		require.NoError(t, err)
		assert.Equal(t, models.RepairStatus(""), updated.RepairStatus)
		assert.Empty(t, updated.Inspections[0].RepairStatus)
	})

	t.Run("thiếu mô tả", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		draft := inspectionDraft(true)
		draft.Description = "   "
		_, err := AddInspection(p, draft, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeRequiredField, apperr.GetAppError(err).Code)
	})

	t.Run("đạt mà vẫn đánh dấu cần sửa là mâu thuẫn", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		draft := inspectionDraft(true)
		draft.IsOk = true
		_, err := AddInspection(p, draft, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeValidation, apperr.GetAppError(err).Code)
	})
}

func TestQuoteRepair(t *testing.T) {
	p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
	p.Inspections = []models.InspectionItem{{
		ID: "ins-1", Description: "Máy lạnh không chạy",
		RepairNeeded: true, RepairStatus: models.InspectionRepairPending,
	}}

	updated, err := QuoteRepair(p, "ins-1", 1800)
	require.NoError(t, err)
	item := updated.Inspections[0]
	assert.Equal(t, models.InspectionRepairQuoted, item.RepairStatus)
	assert.Equal(t, 1800.0, item.RepairEstimatedCost)

	t.Run("chi phí không dương", func(t *testing.T) {
		_, err := QuoteRepair(p, "ins-1", 0)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidCost, apperr.GetAppError(err).Code)
	})

	t.Run("hạng mục không cần sửa", func(t *testing.T) {
		ok := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		ok.Inspections = []models.InspectionItem{{ID: "ins-2", IsOk: true}}
		_, err := QuoteRepair(ok, "ins-2", 1800)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidState, apperr.GetAppError(err).Code)
	})
}

func TestConfirmRepairGeneratesExpense(t *testing.T) {
	p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
	p.RepairStatus = models.RepairPendingRepair
	p.Inspections = []models.InspectionItem{{
		ID: "ins-1", Description: "Máy lạnh không chạy",
		RepairNeeded: true, RepairStatus: models.InspectionRepairQuoted,
		RepairEstimatedCost: 1800,
	}}
	today := day(t, "2024-03-20")

	updated, err := ConfirmRepair(p, "ins-1", 1500, today)
	require.NoError(t, err)

	item := updated.Inspections[0]
	assert.Equal(t, models.InspectionRepairDone, item.RepairStatus)
	assert.Equal(t, 1500.0, item.RepairActualCost)
	assert.Equal(t, models.RepairCompleted, updated.RepairStatus)

	// Sinh đúng một khoản chi REPAIR đã thanh toán, gắn ngược vào hạng mục
	require.Len(t, updated.Expenses, 1)
	expense := updated.Expenses[0]
	assert.Equal(t, constants.ExpenseRepair, expense.Category)
	assert.Equal(t, constants.ExpensePaid, expense.Status)
	assert.Equal(t, 1500.0, expense.Amount)
	assert.Equal(t, "2024-03-20", expense.Date)
	assert.Equal(t, expense.ID, item.LinkedExpenseID)

	t.Run("chốt hai lần là lỗi", func(t *testing.T) {
		_, err := ConfirmRepair(updated, "ins-1", 1500, today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeAlreadySatisfied, apperr.GetAppError(err).Code)
		// Không sinh thêm khoản chi
		assert.Len(t, updated.Expenses, 1)
	})
}

func TestDeleteInspection(t *testing.T) {
	p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
	p.Inspections = []models.InspectionItem{
		{ID: "ins-1", LinkedExpenseID: "exp-1"},
		{ID: "ins-2"},
	}
	p.Expenses = []models.Expense{{ID: "exp-1", Category: constants.ExpenseRepair, Amount: 1500}}

	updated, err := DeleteInspection(p, "ins-1")
	require.NoError(t, err)
	require.Len(t, updated.Inspections, 1)
	assert.Equal(t, "ins-2", updated.Inspections[0].ID)

	// Khoản chi đã sinh ra vẫn giữ: lịch sử tài chính không thu hồi
	assert.Len(t, updated.Expenses, 1)

	t.Run("không tìm thấy hạng mục", func(t *testing.T) {
		_, err := DeleteInspection(p, "missing")
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInspectionNotFound, apperr.GetAppError(err).Code)
	})
}
