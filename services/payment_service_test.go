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

func paymentDraft() dto.PaymentDraft {
	return dto.PaymentDraft{
		Month:   "2024-03",
		Amount:  8000,
		DueDate: "2024-03-05",
	}
}

func TestCreatePaymentRecord(t *testing.T) {
	p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")

	updated, err := CreatePaymentRecord(p, paymentDraft())
	require.NoError(t, err)
	require.Len(t, updated.PaymentHistory, 1)

	record := updated.PaymentHistory[0]
	assert.Equal(t, models.PaymentStatusPending, record.Status)
	assert.Equal(t, "2024-03", record.Month)
	assert.NotEmpty(t, record.ID)

	// Snapshot gốc không đổi
	assert.Empty(t, p.PaymentHistory)
}

func TestCreatePaymentRecordRejections(t *testing.T) {
	t.Run("format kỳ sai", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		draft := paymentDraft()
		draft.Month = "03-2024"
		_, err := CreatePaymentRecord(p, draft)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidFormat, apperr.GetAppError(err).Code)
	})

	t.Run("số tiền không dương", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		draft := paymentDraft()
		draft.Amount = 0
		_, err := CreatePaymentRecord(p, draft)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidAmount, apperr.GetAppError(err).Code)
	})

	t.Run("trùng kỳ", func(t *testing.T) {
		p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		p.PaymentHistory = []models.PaymentRecord{{ID: "pay-1", Month: "2024-03"}}
		_, err := CreatePaymentRecord(p, paymentDraft())
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeDuplicateMonth, apperr.GetAppError(err).Code)
	})
}

func TestRecordPayment(t *testing.T) {
	p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
	p.PaymentHistory = []models.PaymentRecord{{
		ID: "pay-1", Month: "2024-03", Amount: 8000,
		DueDate: "2024-03-05", Status: models.PaymentStatusPending,
	}}

	updated, err := RecordPayment(p, "pay-1", "https://cdn.example.com/proof.jpg")
	require.NoError(t, err)
	record := updated.PaymentHistory[0]
	assert.Equal(t, models.PaymentStatusVerifying, record.Status)
	assert.Equal(t, "https://cdn.example.com/proof.jpg", record.ProofURL)

	t.Run("upload lại thay chứng từ cũ", func(t *testing.T) {
		again, err := RecordPayment(updated, "pay-1", "https://cdn.example.com/proof2.jpg")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusVerifying, again.PaymentHistory[0].Status)
		assert.Equal(t, "https://cdn.example.com/proof2.jpg", again.PaymentHistory[0].ProofURL)
	})

	t.Run("thiếu chứng từ", func(t *testing.T) {
		_, err := RecordPayment(p, "pay-1", "")
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeRequiredField, apperr.GetAppError(err).Code)
	})

	t.Run("không tìm thấy kỳ", func(t *testing.T) {
		_, err := RecordPayment(p, "missing", "https://cdn.example.com/proof.jpg")
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodePaymentNotFound, apperr.GetAppError(err).Code)
	})
}

func TestVerifyPayment(t *testing.T) {
	base := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
	base.PaymentHistory = []models.PaymentRecord{{
		ID: "pay-1", Month: "2024-03", Amount: 8000,
		DueDate: "2024-03-05", Status: models.PaymentStatusVerifying,
		ProofURL: "https://cdn.example.com/proof.jpg",
	}}
	today := day(t, "2024-03-06")

	t.Run("owner xác nhận được", func(t *testing.T) {
		updated, err := VerifyPayment(base, "pay-1", constants.RoleOwner, "Anan Owner", today)
		require.NoError(t, err)
		record := updated.PaymentHistory[0]
		assert.Equal(t, models.PaymentStatusPaid, record.Status)
		assert.Equal(t, "2024-03-06", record.PaidDate)
		assert.Equal(t, "Anan Owner", record.VerifiedBy)
	})

	t.Run("tenant không có quyền, snapshot giữ VERIFYING", func(t *testing.T) {
		_, err := VerifyPayment(base, "pay-1", constants.RoleTenant, "Somchai", today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodePermissionDenied, apperr.GetAppError(err).Code)
		assert.Equal(t, models.PaymentStatusVerifying, base.PaymentHistory[0].Status)
	})

	t.Run("chưa có chứng từ thì không xác nhận được", func(t *testing.T) {
		pending := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
		pending.PaymentHistory = []models.PaymentRecord{{
			ID: "pay-2", Month: "2024-04", Amount: 8000,
			DueDate: "2024-04-05", Status: models.PaymentStatusPending,
		}}
		_, err := VerifyPayment(pending, "pay-2", constants.RoleAdmin, "Admin", today)
		require.Error(t, err)
		assert.Equal(t, apperr.ErrCodeInvalidState, apperr.GetAppError(err).Code)
	})
}

func TestEffectiveStatusAndMarkOverdue(t *testing.T) {
	p := monthlyProperty("2024-01-01", "2024-12-31", "Somchai")
	p.PaymentHistory = []models.PaymentRecord{
		{ID: "pay-1", Month: "2024-02", DueDate: "2024-02-05", Status: models.PaymentStatusPending},
		{ID: "pay-2", Month: "2024-03", DueDate: "2024-03-05", Status: models.PaymentStatusPending},
		{ID: "pay-3", Month: "2024-01", DueDate: "2024-01-05", Status: models.PaymentStatusPaid},
	}
	today := day(t, "2024-03-01")

	changed := MarkOverduePayments(&p, today)
	assert.Equal(t, 1, changed)
	assert.Equal(t, models.PaymentStatusOverdue, p.PaymentHistory[0].Status)
	assert.Equal(t, models.PaymentStatusPending, p.PaymentHistory[1].Status)
	// PAID không bao giờ bị hạ xuống OVERDUE
	assert.Equal(t, models.PaymentStatusPaid, p.PaymentHistory[2].Status)

	t.Run("đúng hạn chưa tính quá hạn", func(t *testing.T) {
		record := models.PaymentRecord{DueDate: "2024-03-05", Status: models.PaymentStatusPending}
		assert.Equal(t, models.PaymentStatusPending, record.EffectiveStatus(day(t, "2024-03-05")))
		assert.Equal(t, models.PaymentStatusOverdue, record.EffectiveStatus(day(t, "2024-03-06")))
	})
}
