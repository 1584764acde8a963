package dto

import "time"

// UserResponse thông tin thành viên trả về cho client, không lộ mật khẩu
type UserResponse struct {
	ID             string    `json:"id"`
	MemberCode     string    `json:"memberCode"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	ApprovalStatus string    `json:"approvalStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UpdateProfileRequest các trường cho phép người dùng tự sửa
type UpdateProfileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// ChangePasswordRequest đổi mật khẩu, cần mật khẩu cũ để xác thực
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
