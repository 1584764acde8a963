package controllers

import (
	"log"
	"net/url"
	"strconv"
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

func propertyService() *services.PropertyService {
	return services.NewPropertyService(services.PropertyServiceOptions{
		DB:    config.DB,
		Redis: config.RedisClient,
	})
}

func convertToPropertyResponse(p models.Property, today time.Time) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:             p.ID,
		Name:           p.Name,
		Address:        p.Address,
		Building:       p.Building,
		Floor:          p.Floor,
		RoomNumber:     p.RoomNumber,
		UnitNumber:     p.UnitNumber,
		RentalType:     p.RentalType,
		Status:         p.Status,
		RepairStatus:   p.RepairStatus,
		RentAmount:     p.RentAmount,
		PaymentDueDate: p.PaymentDueDate,
		TenantName:     p.TenantName,
		ExpiringSoon:   services.IsExpiringSoon(&p, today),
	}
}

// GetProperties trả danh sách có lọc và phân trang. Danh sách đầy đủ
// được cache trong Redis, lọc và phân trang chạy trên bản cache.
func GetProperties(c *gin.Context) {
	today := time.Now()

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")
	typeFilter := c.Query("rentalType")
	buildingFilter := c.Query("building")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var allProperties []models.Property
	cacheKey := services.PropertyListCacheKey(0, 0)

	// Lấy dữ liệu từ Redis Cache, không có thì truy vấn DB
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &allProperties); err != nil || len(allProperties) == 0 {
		var dbErr error
		allProperties, dbErr = propertyService().ListAll(today)
		if dbErr != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, allProperties, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách bất động sản vào Redis: %v", err)
		}
	}

	// Áp dụng bộ lọc
	filtered := make([]models.Property, 0)
	for _, p := range allProperties {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		if statusFilter != "" {
			// ACTIVE gom mọi trạng thái chưa hủy
			if strings.EqualFold(statusFilter, "ACTIVE") {
				if p.Status == models.PropertyStatusCanceled {
					continue
				}
			} else if !strings.EqualFold(statusFilter, string(p.Status)) {
				continue
			}
		}
		if typeFilter != "" && !strings.EqualFold(typeFilter, string(p.RentalType)) {
			continue
		}
		if buildingFilter != "" && !strings.EqualFold(buildingFilter, p.Building) {
			continue
		}
		filtered = append(filtered, p)
	}

	totalFiltered := len(filtered)

	// Áp dụng phân trang
	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filtered = []models.Property{}
	} else if end > totalFiltered {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(filtered))
	for _, p := range filtered {
		propertyResponses = append(propertyResponses, convertToPropertyResponse(p, today))
	}

	response.SuccessWithPagination(c, propertyResponses, page, limit, totalFiltered)
}

// GetPropertyDetail trả chi tiết một bất động sản kèm toàn bộ dữ liệu con
func GetPropertyDetail(c *gin.Context) {
	id := c.Param("id")

	property, err := propertyService().GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	// Trạng thái trả về luôn là trạng thái dẫn xuất tại thời điểm đọc
	services.RefreshStatus(property, time.Now())

	response.Success(c, property)
}

func CreateProperty(c *gin.Context) {
	var request dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	property := models.Property{
		Name:              request.Name,
		Address:           request.Address,
		Building:          request.Building,
		Floor:             request.Floor,
		RoomNumber:        request.RoomNumber,
		UnitNumber:        request.UnitNumber,
		RentalType:        models.RentalType(request.RentalType),
		RentAmount:        request.RentAmount,
		PaymentDueDate:    request.PaymentDueDate,
		ContractStartDate: request.ContractStartDate,
		ContractEndDate:   request.ContractEndDate,
		TenantName:        request.TenantName,
		TenantPhone:       request.TenantPhone,
	}

	if err := validator.ValidateProperty(&property); err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := propertyService().Create(&property, time.Now()); err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, property)
}

func UpdateProperty(c *gin.Context) {
	var request dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updated, err := propertyService().Mutate(request.ID, time.Now(), func(p models.Property) (models.Property, error) {
		if request.Name != nil {
			p.Name = *request.Name
		}
		if request.Address != nil {
			p.Address = *request.Address
		}
		if request.Building != nil {
			p.Building = *request.Building
		}
		if request.Floor != nil {
			p.Floor = *request.Floor
		}
		if request.RoomNumber != nil {
			p.RoomNumber = *request.RoomNumber
		}
		if request.UnitNumber != nil {
			p.UnitNumber = *request.UnitNumber
		}
		if request.RentAmount != nil {
			p.RentAmount = *request.RentAmount
		}
		if request.PaymentDueDate != nil {
			p.PaymentDueDate = *request.PaymentDueDate
		}
		if request.ContractStartDate != nil {
			p.ContractStartDate = *request.ContractStartDate
		}
		if request.ContractEndDate != nil {
			p.ContractEndDate = *request.ContractEndDate
		}
		if request.TenantName != nil {
			p.TenantName = *request.TenantName
		}
		if request.TenantPhone != nil {
			p.TenantPhone = *request.TenantPhone
		}

		if err := validator.ValidateProperty(&p); err != nil {
			return p, err
		}
		return p, nil
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

func DeleteProperty(c *gin.Context) {
	id := c.Param("id")

	if err := propertyService().Delete(id); err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, nil)
}

// RenewContract gia hạn hợp đồng thuê theo tháng
func RenewContract(c *gin.Context) {
	var request dto.RenewContractRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	today := time.Now()
	updated, err := propertyService().Mutate(request.ID, today, func(p models.Property) (models.Property, error) {
		return services.RenewContract(p, request.Months, today)
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// CancelContract hủy hợp đồng vĩnh viễn
func CancelContract(c *gin.Context) {
	var request dto.CancelContractRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	today := time.Now()
	updated, err := propertyService().Mutate(request.ID, today, func(p models.Property) (models.Property, error) {
		return services.CancelContract(p, request.Reason, today)
	})
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// GetContractStats trả tiến độ hợp đồng của một bất động sản
func GetContractStats(c *gin.Context) {
	id := c.Param("id")

	property, err := propertyService().GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, services.ContractStats(property, time.Now()))
}
