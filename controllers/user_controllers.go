package controllers

import (
	"errors"
	"strings"
	"time"

	"propman/dto"
	"propman/models"
	"propman/response"
	"propman/services"
	"propman/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	service *services.UserService
}

func NewUserController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) UserController {
	return UserController{
		DB:    db,
		Redis: redisCli,
		service: services.NewUserService(services.UserServiceOptions{
			DB: db,
		}, m),
	}
}

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             user.ID,
		MemberCode:     user.MemberCode,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		PhoneNumber:    user.PhoneNumber,
		Username:       user.Username,
		Role:           user.Role,
		ApprovalStatus: user.ApprovalStatus,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// GetPendingMembers danh sách tài khoản đang chờ duyệt, chỉ ADMIN/STAFF
func (u UserController) GetPendingMembers(c *gin.Context) {
	users, err := u.service.ListPendingMembers(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, convertToUserResponse(user))
	}

	response.Success(c, userResponses)
}

// ApproveMember duyệt tài khoản thành viên
func (u UserController) ApproveMember(c *gin.Context) {
	u.reviewMember(c, true)
}

// RejectMember từ chối tài khoản thành viên
func (u UserController) RejectMember(c *gin.Context) {
	u.reviewMember(c, false)
}

func (u UserController) reviewMember(c *gin.Context, approve bool) {
	userID := c.Param("id")

	var (
		user models.User
		err  error
	)
	if approve {
		user, err = u.service.ApproveMember(c.Request.Context(), userID)
	} else {
		user, err = u.service.RejectMember(c.Request.Context(), userID)
	}
	if err != nil {
		var svcErr *services.ServiceError
		if errors.As(err, &svcErr) {
			switch svcErr.Code {
			case services.ErrCodeInvalidUserID:
				response.NotFound(c)
			case services.ErrCodeInvalidState:
				response.Conflict(c, svcErr.Message)
			default:
				response.ServerError(c)
			}
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// GetProfile lấy thông tin người dùng hiện tại từ token
func (u UserController) GetProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := u.DB.Where("id = ?", currentUserID).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// UpdateProfile người dùng tự cập nhật thông tin cá nhân
func (u UserController) UpdateProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.PhoneNumber != "" {
		if err := validator.ValidatePhone(req.PhoneNumber); err != nil {
			response.BadRequest(c, "Số điện thoại không hợp lệ")
			return
		}
	}

	var user models.User
	if err := u.DB.Where("id = ?", currentUserID).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := u.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// ChangePassword đổi mật khẩu, yêu cầu mật khẩu cũ đúng
func (u UserController) ChangePassword(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := u.DB.Where("id = ?", currentUserID).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		response.BadRequest(c, "Mật khẩu cũ không đúng")
		return
	}

	if err := services.ChangePassword(user, req.NewPassword); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetNotifications các thông báo đã lưu của người dùng hiện tại
func (u UserController) GetNotifications(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var notifications []models.Notification
	if err := u.DB.Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, notifications)
}

// MarkNotificationRead đánh dấu một thông báo đã đọc
func (u UserController) MarkNotificationRead(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	result := u.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, currentUserID).
		Updates(map[string]interface{}{"is_read": true})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{"updatedAt": time.Now()})
}

// NotifyAll broadcast thông báo tới mọi phiên WebSocket đang mở
func (u UserController) NotifyAll(c *gin.Context) {
	u.service.NotifyAll(c)
}

// NotifyUser gửi thông báo cho một thành viên cụ thể
func (u UserController) NotifyUser(c *gin.Context) {
	u.service.NotifyUser(c)
}
