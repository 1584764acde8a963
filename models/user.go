package models

import (
	"time"
)

// User tài khoản thành viên hệ thống (Admin/Agent/Owner/Tenant)
type User struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	MemberCode     string    `gorm:"unique" json:"memberCode"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `gorm:"unique" json:"email"`
	Password       string    `json:"-"`
	PhoneNumber    string    `gorm:"type:varchar(11)" json:"phoneNumber"`
	Username       string    `gorm:"unique" json:"username"`
	Role           string    `gorm:"default:TENANT" json:"role"`
	ApprovalStatus string    `gorm:"default:PENDING" json:"approvalStatus"`
	IDCardNumber   string    `json:"idCardNumber,omitempty"`
	IDCardPhoto    string    `json:"idCardPhoto,omitempty"`
	DeedPhoto      string    `json:"deedPhoto,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// FullName tên hiển thị dùng khi ghi nhận người xác nhận thanh toán
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
