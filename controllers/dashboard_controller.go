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

// GetDashboardSummary tổng hợp số liệu toàn danh mục, cache 5 phút trên Redis
func GetDashboardSummary(c *gin.Context) {
	var summary dto.DashboardSummary

	// Thử lấy từ cache trước
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, services.DashboardCacheKey, &summary); err == nil && summary.StatusCounts != nil {
		response.Success(c, summary)
		return
	}

	today := time.Now()
	properties, err := propertyService().ListAll(today)
	if err != nil {
		utils.LogError("Lỗi tải danh mục cho dashboard: %v", err)
		response.ServerError(c)
		return
	}

	summary = buildDashboardSummary(properties, today)

	_ = services.SetToRedis(config.Ctx, config.RedisClient, services.DashboardCacheKey, summary, 5*time.Minute)

	response.Success(c, summary)
}

func buildDashboardSummary(properties []models.Property, today time.Time) dto.DashboardSummary {
	summary := dto.DashboardSummary{
		TotalProperties: len(properties),
		StatusCounts:    map[string]int{},
		ExpiringSoon:    []dto.PropertyResponse{},
	}

	for _, p := range properties {
		summary.StatusCounts[string(p.Status)]++

		if p.Status != models.PropertyStatusCanceled {
			summary.RevenuePotential += p.RentAmount
		}

		if services.IsExpiringSoon(&p, today) {
			summary.ExpiringSoon = append(summary.ExpiringSoon, convertToPropertyResponse(p, today))
		}

		if p.RepairStatus == models.RepairPendingRepair || p.RepairStatus == models.RepairUnderRepair {
			summary.PendingRepairs++
		}

		for i := range p.PaymentHistory {
			if p.PaymentHistory[i].EffectiveStatus(today) == models.PaymentStatusOverdue {
				summary.OverduePayments++
			}
		}
	}

	return summary
}

// GetPortfolioInsight nhờ model nhận xét tổng quan danh mục (cần API key)
func GetPortfolioInsight(c *gin.Context) {
	ai := services.NewAIClient()
	if !ai.Available() {
		response.BadRequest(c, "Chức năng phân tích cần API key")
		return
	}

	today := time.Now()
	properties, err := propertyService().ListAll(today)
	if err != nil {
		response.ServerError(c)
		return
	}

	insight, err := ai.PortfolioInsight(properties)
	if err != nil {
		utils.LogError("Phân tích danh mục thất bại: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"insight": insight})
}
