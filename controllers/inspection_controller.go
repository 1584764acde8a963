package controllers

import (
	"sort"
	"time"

	"propman/dto"
	"propman/models"
	"propman/response"
	"propman/services"
	"propman/validator"

	"github.com/gin-gonic/gin"
)

// CreateInspection ghi nhận một hạng mục kiểm tra hiện trạng.
// Hạng mục cần sửa chữa sẽ đưa bất động sản vào PENDING_REPAIR.
func CreateInspection(c *gin.Context) {
	var request dto.CreateInspectionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateInspectionDraft(&request.Inspection); err != nil {
		response.FromAppError(c, err)
		return
	}

	updated, err := propertyService().Mutate(request.PropertyID, time.Now(), func(p models.Property) (models.Property, error) {
		return services.AddInspection(p, request.Inspection, time.Now())
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// GetInspections trả danh sách hạng mục kiểm tra của một bất động sản
func GetInspections(c *gin.Context) {
	id := c.Param("id")

	property, err := propertyService().GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	items := make([]models.InspectionItem, len(property.Inspections))
	copy(items, property.Inspections)
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	response.Success(c, items)
}

// QuoteRepair ghi báo giá sửa chữa cho một hạng mục
func QuoteRepair(c *gin.Context) {
	var request dto.QuoteRepairRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updated, err := propertyService().Mutate(request.PropertyID, time.Now(), func(p models.Property) (models.Property, error) {
		return services.QuoteRepair(p, request.InspectionID, request.EstimatedCost)
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// ConfirmRepair chốt chi phí sửa chữa: hạng mục DONE, sinh khoản chi
// REPAIR đã trả và bất động sản chuyển sang COMPLETED
func ConfirmRepair(c *gin.Context) {
	var request dto.ConfirmRepairRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	today := time.Now()
	updated, err := propertyService().Mutate(request.PropertyID, today, func(p models.Property) (models.Property, error) {
		return services.ConfirmRepair(p, request.InspectionID, request.Cost, today)
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// DeleteInspection xóa một hạng mục kiểm tra. Khoản chi đã sinh ra từ
// hạng mục này được giữ nguyên vì là lịch sử tài chính.
func DeleteInspection(c *gin.Context) {
	propertyID := c.Query("propertyId")
	inspectionID := c.Query("inspectionId")
	if propertyID == "" || inspectionID == "" {
		response.BadRequest(c, "Thiếu propertyId hoặc inspectionId")
		return
	}

	updated, err := propertyService().RemoveInspection(propertyID, inspectionID, time.Now())
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}
