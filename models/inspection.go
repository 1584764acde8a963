package models

import (
	"time"

	"github.com/lib/pq"
)

// InspectionRepairStatus trạng thái báo giá sửa chữa trên từng hạng mục
type InspectionRepairStatus string

const (
	InspectionRepairPending   InspectionRepairStatus = "PENDING"
	InspectionRepairQuoted    InspectionRepairStatus = "QUOTED"
	InspectionRepairConfirmed InspectionRepairStatus = "CONFIRMED"
	InspectionRepairDone      InspectionRepairStatus = "DONE"
)

// Hạng mục kiểm tra (giữ nhãn tiếng Thái theo biểu mẫu nghiệm thu của khách hàng)
const (
	InspectionCategoryArchitectural = "งานสถาปัตย์"
	InspectionCategoryPlumbing      = "งานระบบปะปา"
	InspectionCategoryElectrical    = "งานระบบไฟฟ้า"
	InspectionCategoryFurniture     = "งานเฟอร์นิเจอร์"
	InspectionCategoryCurtains      = "งานผ้าม่าน"
	InspectionCategoryDecor         = "ของตกแต่ง"
	InspectionCategoryOther         = "อื่นๆ"
)

type InspectionItem struct {
	ID            string         `json:"id" gorm:"primaryKey;size:36"`
	PropertyID    string         `json:"propertyId" gorm:"index;size:36"`
	Category      string         `json:"category"`
	Description   string         `json:"description"`
	IsOk          bool           `json:"isOk"`
	DamageDetails string         `json:"damageDetails,omitempty"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]"`
	Date          string         `json:"date"`
	InspectorName string         `json:"inspectorName,omitempty"`

	RepairNeeded        bool                   `json:"repairNeeded"`
	RepairEstimatedCost float64                `json:"repairEstimatedCost,omitempty"`
	RepairActualCost    float64                `json:"repairActualCost,omitempty"`
	RepairStatus        InspectionRepairStatus `json:"repairStatus,omitempty"`

	// Chỉ set khi xác nhận báo giá: khoản chi REPAIR được sinh ra cùng lúc
	// và không bị thu hồi kể cả khi xóa hạng mục kiểm tra.
	LinkedExpenseID string `json:"linkedExpenseId,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
