package controllers

import (
	"sort"
	"strings"
	"time"

	"propman/config"
	"propman/dto"
	"propman/models"
	"propman/response"
	"propman/services"
	"propman/validator"

	"github.com/gin-gonic/gin"
)

// CreatePayment tạo kỳ thanh toán mới cho một bất động sản,
// mỗi tháng chỉ được một kỳ
func CreatePayment(c *gin.Context) {
	var request dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidatePaymentDraft(&request.Payment); err != nil {
		response.FromAppError(c, err)
		return
	}

	updated, err := propertyService().Mutate(request.PropertyID, time.Now(), func(p models.Property) (models.Property, error) {
		return services.CreatePaymentRecord(p, request.Payment)
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// UploadPaymentProof gắn chứng từ chuyển khoản, kỳ thanh toán sang VERIFYING
func UploadPaymentProof(c *gin.Context) {
	var request dto.UploadProofRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updated, err := propertyService().Mutate(request.PropertyID, time.Now(), func(p models.Property) (models.Property, error) {
		return services.RecordPayment(p, request.PaymentID, request.ProofURL)
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// VerifyPayment xác nhận kỳ thanh toán đã trả. Chỉ ADMIN/STAFF/OWNER
// được xác nhận, người thuê gắn chứng từ nhưng không tự xác nhận được.
func VerifyPayment(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	actorID, actorRole, err := GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	actorName := actorID
	var account models.User
	if dbErr := config.DB.Where("id = ?", actorID).First(&account).Error; dbErr == nil {
		actorName = account.FullName()
	}

	today := time.Now()
	updated, err := propertyService().Mutate(request.PropertyID, today, func(p models.Property) (models.Property, error) {
		return services.VerifyPayment(p, request.PaymentID, actorRole, actorName, today)
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// GetPaymentHistory trả các kỳ thanh toán của một bất động sản,
// trạng thái quá hạn được dẫn xuất tại thời điểm đọc
func GetPaymentHistory(c *gin.Context) {
	id := c.Param("id")

	property, err := propertyService().GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	today := time.Now()
	history := make([]models.PaymentRecord, len(property.PaymentHistory))
	copy(history, property.PaymentHistory)
	for i := range history {
		history[i].Status = history[i].EffectiveStatus(today)
	}

	// Kỳ mới nhất lên đầu
	sort.Slice(history, func(i, j int) bool {
		return history[i].Month > history[j].Month
	})

	response.Success(c, history)
}
