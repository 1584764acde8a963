package services

import (
	"strings"
	"time"

	"propman/constants"
	"propman/dto"
	"propman/errors"
	"propman/models"
	"propman/utils"

	"github.com/google/uuid"
)

// AddInspection ghi nhận một hạng mục kiểm tra. Hạng mục hỏng được đánh
// dấu cần sửa sẽ kéo trạng thái sửa chữa của cả bất động sản sang
// PENDING_REPAIR ngay lập tức.
func AddInspection(p models.Property, draft dto.InspectionDraft, today time.Time) (models.Property, error) {
	if strings.TrimSpace(draft.Description) == "" {
		return p, errors.NewAppError(errors.ErrCodeRequiredField, "Phải có mô tả hạng mục kiểm tra", nil)
	}
	if draft.RepairNeeded && draft.IsOk {
		return p, errors.NewAppError(errors.ErrCodeValidation, "Hạng mục đạt thì không đánh dấu cần sửa chữa", nil)
	}

	item := models.InspectionItem{
		ID:            uuid.NewString(),
		PropertyID:    p.ID,
		Category:      draft.Category,
		Description:   draft.Description,
		IsOk:          draft.IsOk,
		DamageDetails: draft.DamageDetails,
		Images:        draft.Images,
		Date:          utils.FormatDay(today),
		InspectorName: draft.InspectorName,
		RepairNeeded:  draft.RepairNeeded,
	}
	if draft.RepairNeeded {
		item.RepairStatus = models.InspectionRepairPending
		p.RepairStatus = models.RepairPendingRepair
	}

	p.Inspections = append(append([]models.InspectionItem{}, p.Inspections...), item)
	return p, nil
}

// QuoteRepair ghi báo giá sửa chữa dự kiến cho một hạng mục cần sửa
func QuoteRepair(p models.Property, itemID string, estimatedCost float64) (models.Property, error) {
	if estimatedCost <= 0 {
		return p, errors.NewAppError(errors.ErrCodeInvalidCost, "Chi phí báo giá phải lớn hơn 0", nil)
	}

	items := append([]models.InspectionItem{}, p.Inspections...)
	item := findInspection(items, itemID)
	if item == nil {
		return p, errors.NewAppError(errors.ErrCodeInspectionNotFound, "Không tìm thấy hạng mục kiểm tra", nil)
	}
	if !item.RepairNeeded {
		return p, errors.NewAppError(errors.ErrCodeInvalidState, "Hạng mục không được đánh dấu cần sửa chữa", nil)
	}
	if item.RepairStatus == models.InspectionRepairDone {
		return p, errors.NewAppError(errors.ErrCodeAlreadySatisfied, "Hạng mục đã sửa xong rồi", nil)
	}

	item.RepairEstimatedCost = estimatedCost
	item.RepairStatus = models.InspectionRepairQuoted

	p.Inspections = items
	return p, nil
}

// ConfirmRepair xác nhận báo giá và chốt sửa chữa trong một bước: hạng mục
// sang DONE kèm chi phí thực tế, sinh một khoản chi REPAIR đã thanh toán
// và gắn id của nó vào hạng mục, trạng thái sửa chữa tổng sang COMPLETED.
func ConfirmRepair(p models.Property, itemID string, cost float64, today time.Time) (models.Property, error) {
	if cost <= 0 {
		return p, errors.NewAppError(errors.ErrCodeInvalidCost, "Chi phí sửa chữa phải lớn hơn 0", nil)
	}

	items := append([]models.InspectionItem{}, p.Inspections...)
	item := findInspection(items, itemID)
	if item == nil {
		return p, errors.NewAppError(errors.ErrCodeInspectionNotFound, "Không tìm thấy hạng mục kiểm tra", nil)
	}
	if !item.RepairNeeded {
		return p, errors.NewAppError(errors.ErrCodeInvalidState, "Hạng mục không được đánh dấu cần sửa chữa", nil)
	}
	if item.RepairStatus == models.InspectionRepairDone {
		return p, errors.NewAppError(errors.ErrCodeAlreadySatisfied, "Hạng mục đã sửa xong rồi", nil)
	}

	expense := models.Expense{
		ID:         uuid.NewString(),
		PropertyID: p.ID,
		Title:      "ค่าซ่อม: " + item.Description,
		Amount:     cost,
		Category:   constants.ExpenseRepair,
		Date:       utils.FormatDay(today),
		Status:     constants.ExpensePaid,
	}

	item.RepairActualCost = cost
	item.RepairStatus = models.InspectionRepairDone
	item.LinkedExpenseID = expense.ID

	p.Inspections = items
	p.Expenses = append(append([]models.Expense{}, p.Expenses...), expense)
	p.RepairStatus = models.RepairCompleted
	return p, nil
}

// DeleteInspection xóa một hạng mục kiểm tra. Khoản chi đã sinh ra từ
// hạng mục vẫn giữ nguyên: lịch sử tài chính không thu hồi.
func DeleteInspection(p models.Property, itemID string) (models.Property, error) {
	items := make([]models.InspectionItem, 0, len(p.Inspections))
	found := false
	for _, item := range p.Inspections {
		if item.ID == itemID {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return p, errors.NewAppError(errors.ErrCodeInspectionNotFound, "Không tìm thấy hạng mục kiểm tra", nil)
	}

	p.Inspections = items
	return p, nil
}

func findInspection(items []models.InspectionItem, itemID string) *models.InspectionItem {
	for i := range items {
		if items[i].ID == itemID {
			return &items[i]
		}
	}
	return nil
}
