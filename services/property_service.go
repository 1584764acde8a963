package services

import (
	"errors"
	"time"

	"propman/commands"
	"propman/config"
	apperr "propman/errors"
	"propman/models"
	"propman/services/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// PropertyService gom toàn bộ thao tác đọc/ghi bất động sản:
// load kèm association, chạy nghiệp vụ trên snapshot, tính lại
// trạng thái rồi mới lưu, cuối cùng xóa cache liên quan.
type PropertyService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type PropertyServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewPropertyService(opts PropertyServiceOptions) *PropertyService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PropertyService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// GetByID load bất động sản kèm toàn bộ association
func (s *PropertyService) GetByID(id string) (*models.Property, error) {
	var property models.Property
	err := s.db.
		Preload("Bookings").
		Preload("PaymentHistory").
		Preload("Inspections").
		Preload("Expenses").
		Preload("Documents").
		Preload("LinkedMembers").
		Where("id = ?", id).
		First(&property).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NewAppError(apperr.ErrCodePropertyNotFound, "Không tìm thấy bất động sản", err)
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// List lấy danh sách có phân trang, trạng thái trong kết quả luôn
// là trạng thái dẫn xuất tại thời điểm gọi
func (s *PropertyService) List(page, limit int, today time.Time) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	if err := s.db.Model(&models.Property{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := s.db.Preload("Bookings").Order("created_at DESC")
	if limit > 0 {
		offset := (page - 1) * limit
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&properties).Error; err != nil {
		return nil, 0, err
	}

	// Trạng thái lưu trong DB chỉ là cache, đọc ra vẫn dẫn xuất lại
	for i := range properties {
		RefreshStatus(&properties[i], today)
	}
	return properties, total, nil
}

// ListAll load toàn bộ danh mục kèm association, dùng cho tìm kiếm và dashboard
func (s *PropertyService) ListAll(today time.Time) ([]models.Property, error) {
	var properties []models.Property
	err := s.db.
		Preload("Bookings").
		Preload("PaymentHistory").
		Preload("Inspections").
		Preload("Expenses").
		Preload("Documents").
		Preload("LinkedMembers").
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	for i := range properties {
		RefreshStatus(&properties[i], today)
	}
	return properties, nil
}

// Create tạo bất động sản mới, trạng thái được dẫn xuất trước khi ghi
func (s *PropertyService) Create(property *models.Property, today time.Time) error {
	if property.ID == "" {
		property.ID = uuid.NewString()
	}
	if err := property.ValidateRentalType(); err != nil {
		return apperr.NewAppError(apperr.ErrCodeValidation, "Loại hình thuê không hợp lệ", err)
	}
	if property.RepairStatus == "" {
		property.RepairStatus = models.RepairNormal
	}

	cmd := commands.NewCreatePropertyCommand(property, s.db, today, RefreshStatus)
	if err := cmd.Execute(); err != nil {
		return err
	}
	s.invalidate(property.ID)
	return nil
}

// Mutate là đường ghi duy nhất cho mọi thay đổi nghiệp vụ: load bản ghi,
// chạy hàm biến đổi trên snapshot, dẫn xuất lại trạng thái rồi lưu.
// Hàm biến đổi trả lỗi thì không có gì được ghi xuống DB.
func (s *PropertyService) Mutate(id string, today time.Time, fn func(models.Property) (models.Property, error)) (*models.Property, error) {
	property, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	next, err := fn(*property)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return commands.NewUpdatePropertyCommand(&next, tx, today, RefreshStatus).Execute()
	})
	if err != nil {
		s.logger.Error("Lưu bất động sản %s thất bại: %v", id, err)
		return nil, err
	}

	s.invalidate(id)
	return &next, nil
}

// Delete xóa bất động sản cùng dữ liệu con
func (s *PropertyService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PaymentRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.InspectionItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.LinkedMember{}).Error; err != nil {
			return err
		}
		return commands.NewDeletePropertyCommand(id, tx).Execute()
	})
	if err != nil {
		return err
	}

	s.invalidate(id)
	return nil
}

// RefreshAllStatuses quét toàn bộ danh mục, dẫn xuất lại trạng thái
// và đánh dấu quá hạn thanh toán. Trả về số bản ghi có thay đổi.
func (s *PropertyService) RefreshAllStatuses(today time.Time) (int, error) {
	var properties []models.Property
	if err := s.db.Preload("Bookings").Preload("PaymentHistory").Find(&properties).Error; err != nil {
		return 0, err
	}

	changed := 0
	for i := range properties {
		p := &properties[i]
		statusChanged := RefreshStatus(p, today)
		overdueCount := MarkOverduePayments(p, today)

		if !statusChanged && overdueCount == 0 {
			continue
		}

		if err := s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error; err != nil {
			s.logger.Error("Cập nhật trạng thái %s thất bại: %v", p.ID, err)
			continue
		}
		changed++
		s.invalidate(p.ID)
	}
	return changed, nil
}

func (s *PropertyService) invalidate(propertyID string) {
	if s.rdb == nil {
		return
	}
	InvalidatePropertyCache(config.Ctx, s.rdb, propertyID)
}

// RemoveInspection xóa một hạng mục kiểm tra. Save không tự xóa bản ghi
// con đã rút khỏi slice nên phải xóa row tường minh trong transaction.
func (s *PropertyService) RemoveInspection(propertyID, inspectionID string, today time.Time) (*models.Property, error) {
	property, err := s.GetByID(propertyID)
	if err != nil {
		return nil, err
	}

	next, err := DeleteInspection(*property, inspectionID)
	if err != nil {
		return nil, err
	}

	RefreshStatus(&next, today)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND property_id = ?", inspectionID, propertyID).
			Delete(&models.InspectionItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&next).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(propertyID)
	return &next, nil
}
