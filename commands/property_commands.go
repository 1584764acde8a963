package commands

import (
	"time"

	"propman/models"

	"gorm.io/gorm"
)

// RefreshFunc tính lại trạng thái chiếm dụng trước khi ghi. Truyền từ
// tầng service xuống để package này không phải biết logic dẫn xuất.
type RefreshFunc func(p *models.Property, today time.Time) bool

// PropertyCommand định nghĩa interface cho các command ghi
type PropertyCommand interface {
	Execute() error
}

// CreatePropertyCommand command để tạo bất động sản mới,
// trạng thái được tính lại ngay trước khi ghi
type CreatePropertyCommand struct {
	property *models.Property
	db       *gorm.DB
	today    time.Time
	refresh  RefreshFunc
}

func NewCreatePropertyCommand(property *models.Property, db *gorm.DB, today time.Time, refresh RefreshFunc) *CreatePropertyCommand {
	return &CreatePropertyCommand{
		property: property,
		db:       db,
		today:    today,
		refresh:  refresh,
	}
}

func (c *CreatePropertyCommand) Execute() error {
	if c.refresh != nil {
		c.refresh(c.property, c.today)
	}
	return c.db.Create(c.property).Error
}

// UpdatePropertyCommand command để cập nhật bất động sản,
// luôn tính lại trạng thái từ dữ liệu mới rồi mới lưu
type UpdatePropertyCommand struct {
	property *models.Property
	db       *gorm.DB
	today    time.Time
	refresh  RefreshFunc
}

func NewUpdatePropertyCommand(property *models.Property, db *gorm.DB, today time.Time, refresh RefreshFunc) *UpdatePropertyCommand {
	return &UpdatePropertyCommand{
		property: property,
		db:       db,
		today:    today,
		refresh:  refresh,
	}
}

func (c *UpdatePropertyCommand) Execute() error {
	if c.refresh != nil {
		c.refresh(c.property, c.today)
	}
	return c.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(c.property).Error
}

// DeletePropertyCommand command để xóa bất động sản
type DeletePropertyCommand struct {
	propertyID string
	db         *gorm.DB
}

func NewDeletePropertyCommand(propertyID string, db *gorm.DB) *DeletePropertyCommand {
	return &DeletePropertyCommand{
		propertyID: propertyID,
		db:         db,
	}
}

func (c *DeletePropertyCommand) Execute() error {
	return c.db.Where("id = ?", c.propertyID).Delete(&models.Property{}).Error
}
