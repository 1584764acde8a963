package services

import (
	"context"
	"errors"
	"fmt"

	"propman/constants"
	"propman/models"
	"propman/services/logger"
	"propman/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

const (
	ErrCodeUpdateFailed  = "UPDATE_FAILED"
	ErrCodeInvalidUserID = "INVALID_USER_ID"
	ErrCodeInvalidState  = "INVALID_STATE"
)

type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

type NotificationObserver interface {
	Notify(message string) error
}

type MelodyObserver struct {
	session *melody.Session
	userID  string
}

func NewMelodyObserver(session *melody.Session, userID string) *MelodyObserver {
	return &MelodyObserver{
		session: session,
		userID:  userID,
	}
}

func (o *MelodyObserver) Notify(message string) error {
	return o.session.Write([]byte(message))
}

// UserService xử lý duyệt tài khoản thành viên và đẩy thông báo realtime
type UserService struct {
	db        *gorm.DB
	logger    logger.Logger
	melody    *melody.Melody
	observers map[string][]NotificationObserver
}

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions, m *melody.Melody) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{
		db:        opts.DB,
		logger:    opts.Logger,
		melody:    m,
		observers: make(map[string][]NotificationObserver),
	}
}

func validateUserID(userID string) error {
	if userID == "" {
		return &ServiceError{
			Code:    ErrCodeInvalidUserID,
			Message: "user ID không hợp lệ",
		}
	}
	return nil
}

// ApproveMember duyệt tài khoản thành viên đang chờ
func (s *UserService) ApproveMember(ctx context.Context, userID string) (models.User, error) {
	return s.reviewMember(ctx, userID, constants.ApprovalApproved)
}

// RejectMember từ chối tài khoản thành viên đang chờ
func (s *UserService) RejectMember(ctx context.Context, userID string) (models.User, error) {
	return s.reviewMember(ctx, userID, constants.ApprovalRejected)
}

func (s *UserService) reviewMember(ctx context.Context, userID string, verdict string) (models.User, error) {
	var user models.User
	if err := validateUserID(userID); err != nil {
		return user, err
	}

	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, &ServiceError{
			Code:    ErrCodeInvalidUserID,
			Message: fmt.Sprintf("không tìm thấy thành viên %s", userID),
		}
	}
	if err != nil {
		return user, err
	}

	if user.ApprovalStatus != constants.ApprovalPending {
		return user, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: "tài khoản đã được xử lý trước đó",
		}
	}

	user.ApprovalStatus = verdict
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return user, &ServiceError{
			Code:    ErrCodeUpdateFailed,
			Message: fmt.Sprintf("lỗi cập nhật trạng thái duyệt cho thành viên %s", userID),
			Err:     err,
		}
	}

	s.logger.Info("✅ Thành viên %s chuyển sang %s", user.MemberCode, verdict)
	s.notifyObservers(userID, fmt.Sprintf("Tài khoản của bạn đã được cập nhật: %s", verdict))
	return user, nil
}

// ListPendingMembers lấy danh sách tài khoản đang chờ duyệt
func (s *UserService) ListPendingMembers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("approval_status = ?", constants.ApprovalPending).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (s *UserService) notifyObservers(userID string, message string) {
	for _, observer := range s.observers[userID] {
		if err := observer.Notify(message); err != nil {
			s.logger.Error("❌ Không thông báo được userID %s: %v", userID, err)
		}
	}
}

// đăng ký observer cho user
func (s *UserService) RegisterObserver(session *melody.Session, userID string) {
	observer := NewMelodyObserver(session, userID)
	s.observers[userID] = append(s.observers[userID], observer)
	s.logger.Info("Người quan sát đã đăng ký cho userID: %s", userID)
}

// xóa observer cho user
func (s *UserService) RemoveObserver(session *melody.Session, userID string) {
	observers := s.observers[userID]
	for i, obs := range observers {
		if obs.(*MelodyObserver).session == session {
			s.observers[userID] = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	s.logger.Info("Đã xóa người quan sát cho userID: %s", userID)
}

func (s *UserService) NotifyAll(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "tin nhắn là bắt buộc"})
		return
	}
	notificationService := notification.NewMelodyService(s.melody)
	err := notificationService.SendMessage(req.Message)
	if err != nil {
		s.logger.Error("❌ Lỗi gửi thông báo tổng: %v", err)
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	s.logger.Info("✅ Đã gửi thông báo tổng: %s", req.Message)
	c.JSON(200, gin.H{"message": "Broadcast sent"})
}

// NotifyUser gửi thông báo trực tiếp cho một thành viên qua WebSocket,
// đồng thời lưu lại vào bảng notification để xem lại sau
func (s *UserService) NotifyUser(c *gin.Context) {
	userID := c.Param("userID")
	if err := validateUserID(userID); err != nil {
		c.JSON(400, gin.H{"error": "invalid userID"})
		return
	}

	var req struct {
		Title   string `json:"title"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "message is required"})
		return
	}

	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "không tìm thấy người dùng"})
			return
		}
		c.JSON(500, gin.H{"error": "không thể lấy được người dùng"})
		return
	}

	record := models.Notification{
		Title:   req.Title,
		Message: req.Message,
		Type:    "SYSTEM",
		UserID:  userID,
	}
	if err := s.db.Create(&record).Error; err != nil {
		s.logger.Error("❌ Không lưu được thông báo cho userID %s: %v", userID, err)
	}

	s.notifyObservers(userID, req.Message)
	c.JSON(200, gin.H{"message": "Thông báo được gửi đến người dùng"})
}
