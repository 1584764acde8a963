package controllers

import (
	"time"

	"propman/config"
	"propman/dto"
	"propman/models"
	"propman/response"
	"propman/services"
	"propman/utils"

	"github.com/gin-gonic/gin"
)

func sessionKey(c *gin.Context) string {
	if sessionId, exists := c.Get("sessionId"); exists {
		if key, ok := sessionId.(string); ok {
			return key
		}
	}
	return c.GetHeader("X-Session-ID")
}

// SearchPropertiesAI tìm kiếm bằng ngôn ngữ tự nhiên: có API key thì nhờ
// model chọn ID phù hợp, không thì rơi về chấm điểm fuzzy nội bộ. Bộ lọc
// rút từ câu truy vấn được gộp với bộ lọc cũ của phiên và nhớ trong Redis.
func SearchPropertiesAI(c *gin.Context) {
	var request dto.SearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	today := time.Now()
	properties, err := propertyService().ListAll(today)
	if err != nil {
		utils.LogError("Lỗi tải danh mục khi tìm kiếm: %v", err)
		response.ServerError(c)
		return
	}

	// Gộp bộ lọc của phiên
	filters := services.ExtractSearchFilters(request.Query)
	key := sessionKey(c)
	if key != "" {
		if prevFilters, err := services.GetLastFilters(config.Ctx, config.RedisClient, key); err == nil && prevFilters != nil {
			filters = services.MergeFilters(prevFilters, filters)
		}
		_ = services.SaveLastFilters(config.Ctx, config.RedisClient, key, filters)
	}

	candidates := services.ApplyFilters(properties, filters)

	var results []models.Property
	ai := services.NewAIClient()
	if ai.Available() {
		ids, err := ai.QueryPropertyIDs(candidates, request.Query)
		if err != nil {
			utils.LogError("Tìm kiếm AI thất bại, chuyển sang fuzzy: %v", err)
		} else {
			results = pickProperties(candidates, ids)
		}
	}
	if results == nil {
		results = services.FuzzySearchProperties(candidates, request.Query)
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(results))
	for _, p := range results {
		propertyResponses = append(propertyResponses, convertToPropertyResponse(p, today))
	}

	response.Success(c, propertyResponses)
}

// SearchProperties tìm kiếm fuzzy nội bộ, không cần API key
func SearchProperties(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu tham số q")
		return
	}

	today := time.Now()
	properties, err := propertyService().ListAll(today)
	if err != nil {
		response.ServerError(c)
		return
	}

	results := services.FuzzySearchProperties(properties, query)

	propertyResponses := make([]dto.PropertyResponse, 0, len(results))
	for _, p := range results {
		propertyResponses = append(propertyResponses, convertToPropertyResponse(p, today))
	}

	response.Success(c, propertyResponses)
}

// ResetSearchFilters xóa bộ lọc đã nhớ của phiên
func ResetSearchFilters(c *gin.Context) {
	key := sessionKey(c)
	if key == "" {
		response.BadRequest(c, "Thiếu session")
		return
	}

	if err := services.ClearLastFilters(config.Ctx, config.RedisClient, key); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// ScanReceipt trích thông tin hóa đơn từ ảnh base64 để prefill khoản chi
func ScanReceipt(c *gin.Context) {
	var request dto.ScanReceiptRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	ai := services.NewAIClient()
	if !ai.Available() {
		response.BadRequest(c, "Chức năng quét hóa đơn cần API key")
		return
	}

	result, err := ai.ScanReceipt(request.Image)
	if err != nil {
		utils.LogError("Quét hóa đơn thất bại: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, result)
}

func pickProperties(properties []models.Property, ids []string) []models.Property {
	index := make(map[string]models.Property, len(properties))
	for _, p := range properties {
		index[p.ID] = p
	}
	var picked []models.Property
	for _, id := range ids {
		if p, ok := index[id]; ok {
			picked = append(picked, p)
		}
	}
	return picked
}
