package controllers

import (
	"sort"
	"strings"
	"time"

	"propman/config"
	"propman/constants"
	"propman/dto"
	"propman/models"
	"propman/response"
	"propman/services"
	"propman/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var expenseCategories = map[string]bool{
	constants.ExpenseCommonFee:     true,
	constants.ExpenseRepair:        true,
	constants.ExpenseUtility:       true,
	constants.ExpenseCommission:    true,
	constants.ExpenseManagementFee: true,
	constants.ExpenseLandTax:       true,
	constants.ExpenseOtherService:  true,
	constants.ExpenseOther:         true,
}

// CreateExpense thêm khoản chi cho một bất động sản. Khoản chi là lịch
// sử tài chính: tạo xong thì không sửa.
func CreateExpense(c *gin.Context) {
	var request dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if !expenseCategories[request.Expense.Category] {
		response.BadRequest(c, "Loại khoản chi không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.Where("id = ?", request.PropertyID).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	date := request.Expense.Date
	if date == "" {
		date = utils.FormatDay(time.Now())
	}
	status := request.Expense.Status
	if status == "" {
		status = constants.ExpenseUnpaid
	}

	expense := models.Expense{
		ID:         uuid.NewString(),
		PropertyID: property.ID,
		Title:      request.Expense.Title,
		Amount:     request.Expense.Amount,
		Category:   request.Expense.Category,
		Date:       date,
		Status:     status,
		ReceiptURL: request.Expense.ReceiptURL,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if actorID, err := GetIDFromToken(tokenString); err == nil {
		utils.LogInfo("Khoản chi %s được tạo bởi %s", expense.ID, actorID)
	}

	services.InvalidatePropertyCache(config.Ctx, config.RedisClient, property.ID)
	response.Success(c, expense)
}

// GetExpenses trả danh sách khoản chi của một bất động sản
func GetExpenses(c *gin.Context) {
	id := c.Param("id")

	var expenses []models.Expense
	if err := config.DB.Where("property_id = ?", id).Find(&expenses).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Khoản chi mới nhất lên đầu
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})

	response.Success(c, expenses)
}
