package dto

import "github.com/lib/pq"

// InspectionDraft dữ liệu tạo hạng mục kiểm tra
type InspectionDraft struct {
	Category      string         `json:"category" binding:"required"`
	Description   string         `json:"description" binding:"required"`
	IsOk          bool           `json:"isOk"`
	DamageDetails string         `json:"damageDetails"`
	Images        pq.StringArray `json:"images"`
	InspectorName string         `json:"inspectorName"`
	RepairNeeded  bool           `json:"repairNeeded"`
}

// CreateInspectionRequest request ghi nhận kiểm tra cho một bất động sản
type CreateInspectionRequest struct {
	PropertyID string          `json:"propertyId" binding:"required"`
	Inspection InspectionDraft `json:"inspection" binding:"required"`
}

// QuoteRepairRequest request báo giá sửa chữa
type QuoteRepairRequest struct {
	PropertyID    string  `json:"propertyId" binding:"required"`
	InspectionID  string  `json:"inspectionId" binding:"required"`
	EstimatedCost float64 `json:"estimatedCost" binding:"required,gt=0"`
}

// ConfirmRepairRequest request xác nhận báo giá và chốt sửa chữa
type ConfirmRepairRequest struct {
	PropertyID   string  `json:"propertyId" binding:"required"`
	InspectionID string  `json:"inspectionId" binding:"required"`
	Cost         float64 `json:"cost" binding:"required,gt=0"`
}
