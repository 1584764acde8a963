package constants

// User role
const (
	RoleAdmin  = "ADMIN"
	RoleStaff  = "STAFF" // Agent
	RoleOwner  = "OWNER"
	RoleTenant = "TENANT"
)

// Approval status cho tài khoản thành viên
const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

// Expense category
const (
	ExpenseCommonFee     = "COMMON_FEE"
	ExpenseRepair        = "REPAIR"
	ExpenseUtility       = "UTILITY"
	ExpenseCommission    = "COMMISSION"
	ExpenseManagementFee = "MANAGEMENT_FEE"
	ExpenseLandTax       = "LAND_TAX"
	ExpenseOtherService  = "OTHER_SERVICE"
	ExpenseOther         = "OTHER"
)

// Expense status
const (
	ExpenseUnpaid = "UNPAID"
	ExpensePaid   = "PAID"
)

// Số ngày trước khi hết hạn hợp đồng để cảnh báo "sắp hết hạn"
const ExpiringSoonDays = 30
