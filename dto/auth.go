package dto

// RegisterRequest request đăng ký tài khoản thành viên
type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=ADMIN STAFF OWNER TENANT"`
}

// LoginRequest request đăng nhập
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse token kèm thông tin người dùng
type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
