package dto

import "propman/models"

// CreatePropertyRequest request tạo bất động sản mới
type CreatePropertyRequest struct {
	Name              string  `json:"name" binding:"required"`
	Address           string  `json:"address"`
	Building          string  `json:"building"`
	Floor             string  `json:"floor"`
	RoomNumber        string  `json:"roomNumber"`
	UnitNumber        string  `json:"unitNumber"`
	RentalType        string  `json:"rentalType" binding:"required,oneof=MONTHLY DAILY"`
	RentAmount        float64 `json:"rentAmount" binding:"required,gt=0"`
	PaymentDueDate    int     `json:"paymentDueDate" binding:"omitempty,min=1,max=31"`
	ContractStartDate string  `json:"contractStartDate"`
	ContractEndDate   string  `json:"contractEndDate"`
	TenantName        string  `json:"tenantName"`
	TenantPhone       string  `json:"tenantPhone"`
}

// UpdatePropertyRequest request cập nhật thông tin bất động sản
type UpdatePropertyRequest struct {
	ID                string   `json:"id" binding:"required"`
	Name              *string  `json:"name"`
	Address           *string  `json:"address"`
	Building          *string  `json:"building"`
	Floor             *string  `json:"floor"`
	RoomNumber        *string  `json:"roomNumber"`
	UnitNumber        *string  `json:"unitNumber"`
	RentAmount        *float64 `json:"rentAmount"`
	PaymentDueDate    *int     `json:"paymentDueDate"`
	ContractStartDate *string  `json:"contractStartDate"`
	ContractEndDate   *string  `json:"contractEndDate"`
	TenantName        *string  `json:"tenantName"`
	TenantPhone       *string  `json:"tenantPhone"`
}

// RenewContractRequest request gia hạn hợp đồng
type RenewContractRequest struct {
	ID     string `json:"id" binding:"required"`
	Months int    `json:"months" binding:"required,min=1"`
}

// CancelContractRequest request hủy hợp đồng
type CancelContractRequest struct {
	ID     string `json:"id" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// PropertyResponse thông tin bất động sản trả về ở danh sách
type PropertyResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Address        string                `json:"address"`
	Building       string                `json:"building,omitempty"`
	Floor          string                `json:"floor,omitempty"`
	RoomNumber     string                `json:"roomNumber,omitempty"`
	UnitNumber     string                `json:"unitNumber,omitempty"`
	RentalType     models.RentalType     `json:"rentalType"`
	Status         models.PropertyStatus `json:"status"`
	RepairStatus   models.RepairStatus   `json:"repairStatus"`
	RentAmount     float64               `json:"rentAmount"`
	PaymentDueDate int                   `json:"paymentDueDate"`
	TenantName     string                `json:"tenantName,omitempty"`
	ExpiringSoon   bool                  `json:"expiringSoon"`
}
