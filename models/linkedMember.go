package models

import "time"

// LinkedMember thành viên được gắn vào bất động sản (chủ nhà, người thuê,
// đồng đại lý...). Quyền xác nhận thanh toán dựa trên role của thành viên.
type LinkedMember struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PropertyID string    `json:"propertyId" gorm:"index;size:36"`
	MemberID   string    `json:"memberId" gorm:"size:36"`
	MemberCode string    `json:"memberCode"`
	Name       string    `json:"name"`
	Role       string    `json:"role"` // ADMIN | STAFF | OWNER | TENANT
	JoinedDate string    `json:"joinedDate"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
