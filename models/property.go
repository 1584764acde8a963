package models

import (
	"fmt"
	"time"

	"propman/utils"
)

// PropertyStatus trạng thái chiếm dụng của bất động sản
type PropertyStatus string

const (
	PropertyStatusVacant   PropertyStatus = "VACANT"
	PropertyStatusBooked   PropertyStatus = "BOOKED"
	PropertyStatusOccupied PropertyStatus = "OCCUPIED"
	PropertyStatusCanceled PropertyStatus = "CANCELED"
)

// RentalType loại hình cho thuê
type RentalType string

const (
	RentalMonthly RentalType = "MONTHLY"
	RentalDaily   RentalType = "DAILY"
)

// RepairStatus trạng thái sửa chữa tổng của bất động sản
// (khác với trạng thái báo giá trên từng hạng mục kiểm tra)
type RepairStatus string

const (
	RepairNormal        RepairStatus = "NORMAL"
	RepairPendingRepair RepairStatus = "PENDING_REPAIR"
	RepairUnderRepair   RepairStatus = "UNDER_REPAIR"
	RepairCompleted     RepairStatus = "COMPLETED"
)

type Property struct {
	ID         string     `json:"id" gorm:"primaryKey;size:36"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	Building   string     `json:"building,omitempty"`
	Floor      string     `json:"floor,omitempty"`
	RoomNumber string     `json:"roomNumber,omitempty"`
	UnitNumber string     `json:"unitNumber,omitempty"`
	RentalType RentalType `json:"rentalType"` // MONTHLY | DAILY, không đổi sau khi tạo

	// Status là cache của hàm dẫn xuất trạng thái: mọi mutation chạm vào
	// hợp đồng, tên người thuê hoặc booking đều phải tính lại trước khi lưu.
	// Ngoại lệ duy nhất là CANCELED: đã hủy là hủy vĩnh viễn.
	Status PropertyStatus `json:"status"`

	RentAmount     float64 `json:"rentAmount"`
	PaymentDueDate int     `json:"paymentDueDate"` // ngày chốt thanh toán hàng tháng (1-31)

	// Thông tin hợp đồng, chỉ có ý nghĩa với loại MONTHLY
	ContractStartDate string `json:"contractStartDate,omitempty"`
	ContractEndDate   string `json:"contractEndDate,omitempty"`
	TenantName        string `json:"tenantName,omitempty"`
	TenantPhone       string `json:"tenantPhone,omitempty"`

	// Thông tin hủy hợp đồng, chỉ set khi chuyển sang CANCELED
	CancellationReason string `json:"cancellationReason,omitempty"`
	CancellationDate   string `json:"cancellationDate,omitempty"`

	RepairStatus RepairStatus `json:"repairStatus" gorm:"default:NORMAL"`

	Bookings       []Booking        `json:"bookings" gorm:"foreignKey:PropertyID"`
	PaymentHistory []PaymentRecord  `json:"paymentHistory" gorm:"foreignKey:PropertyID"`
	Inspections    []InspectionItem `json:"inspections" gorm:"foreignKey:PropertyID"`
	Expenses       []Expense        `json:"expenses" gorm:"foreignKey:PropertyID"`
	Documents      []Document       `json:"documents" gorm:"foreignKey:PropertyID"`
	LinkedMembers  []LinkedMember   `json:"linkedMembers" gorm:"foreignKey:PropertyID"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Property) ValidateRentalType() error {
	if p.RentalType != RentalMonthly && p.RentalType != RentalDaily {
		return fmt.Errorf("invalid RentalType: %s", p.RentalType)
	}
	return nil
}

// RentalDetails là tagged union cho phần dữ liệu phụ thuộc loại hình thuê:
// logic MONTHLY chỉ nhìn thấy hợp đồng, logic DAILY chỉ nhìn thấy booking.
type RentalDetails interface {
	isRentalDetails()
}

// RentalContract dữ liệu hợp đồng của bất động sản cho thuê theo tháng
type RentalContract struct {
	StartDate  *time.Time
	EndDate    *time.Time
	TenantName string
}

func (RentalContract) isRentalDetails() {}

// HasWindow kiểm tra hợp đồng có đủ khoảng thời gian và người thuê chưa
func (c RentalContract) HasWindow() bool {
	return c.StartDate != nil && c.EndDate != nil && c.TenantName != ""
}

// DailyBookingSet danh sách booking của bất động sản cho thuê theo ngày
type DailyBookingSet struct {
	Bookings []Booking
}

func (DailyBookingSet) isRentalDetails() {}

// RentalDetails dựng variant theo loại hình thuê. Ngày hợp đồng không parse
// được coi như chưa có (dữ liệu nhập tay từ form có thể rỗng).
func (p *Property) RentalDetails() RentalDetails {
	if p.RentalType == RentalDaily {
		return DailyBookingSet{Bookings: p.Bookings}
	}

	contract := RentalContract{TenantName: p.TenantName}
	if p.ContractStartDate != "" {
		if t, err := utils.ParseDay(p.ContractStartDate); err == nil {
			contract.StartDate = &t
		}
	}
	if p.ContractEndDate != "" {
		if t, err := utils.ParseDay(p.ContractEndDate); err == nil {
			contract.EndDate = &t
		}
	}
	return contract
}
