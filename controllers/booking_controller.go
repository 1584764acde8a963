package controllers

import (
	"time"

	"propman/config"
	"propman/dto"
	"propman/models"
	"propman/response"
	"propman/services"
	"propman/services/notification"
	"propman/utils"
	"propman/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BookingController xử lý nhận/trả phòng cho bất động sản cho thuê theo ngày
type BookingController struct {
	facade *services.OccupancyFacade
	svc    *services.PropertyService
}

func NewBookingController(db *gorm.DB, rdb *redis.Client, m *melody.Melody) *BookingController {
	svc := services.NewPropertyService(services.PropertyServiceOptions{
		DB:    db,
		Redis: rdb,
	})
	return &BookingController{
		facade: services.NewOccupancyFacade(svc, notification.NewMelodyService(m)),
		svc:    svc,
	}
}

// CheckIn nhận khách, booking được tạo ở trạng thái CHECKED_IN
func (bc *BookingController) CheckIn(c *gin.Context) {
	var request dto.CheckInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBookingDraft(&request.Booking); err != nil {
		response.FromAppError(c, err)
		return
	}

	updated, err := bc.facade.CheckInGuest(request.PropertyID, request.Booking, time.Now())
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// CheckOut trả phòng cho booking đang ở
func (bc *BookingController) CheckOut(c *gin.Context) {
	var request dto.CheckOutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updated, err := bc.facade.CheckOutGuest(request.PropertyID, request.BookingID, time.Now())
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// CancelBooking hủy một booking chưa trả phòng
func (bc *BookingController) CancelBooking(c *gin.Context) {
	var request dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updated, err := bc.facade.CancelGuestBooking(request.PropertyID, request.BookingID, time.Now())
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, updated)
}

// GetCalendar trả lưới lịch tháng: mỗi ngày một ô, ô nào có booking
// còn hiệu lực thì kèm thông tin khách. Tháng theo định dạng yyyy-MM.
func GetCalendar(c *gin.Context) {
	propertyID := c.Query("propertyId")
	monthStr := c.Query("month")
	if propertyID == "" || monthStr == "" {
		response.BadRequest(c, "Thiếu propertyId hoặc month")
		return
	}

	monthStart, err := time.Parse("2006-01", monthStr)
	if err != nil {
		response.BadRequest(c, "Tháng phải theo định dạng yyyy-MM")
		return
	}

	var property models.Property
	if err := config.DB.Preload("Bookings").Where("id = ?", propertyID).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	if property.RentalType != models.RentalDaily {
		response.BadRequest(c, "Lịch theo ngày chỉ áp dụng cho loại hình DAILY")
		return
	}

	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	cells := make([]dto.CalendarCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(monthStart.Year(), monthStart.Month(), day, 0, 0, 0, 0, time.UTC)
		cell := dto.CalendarCell{Date: utils.FormatDay(date)}

		if booking := services.BookingOnDay(&property, date); booking != nil {
			cell.BookingID = booking.ID
			cell.GuestName = booking.GuestName
			cell.Status = string(booking.Status)
			cell.IsOccupied = booking.Status == models.BookingStatusCheckedIn
		}
		cells = append(cells, cell)
	}

	response.Success(c, cells)
}
