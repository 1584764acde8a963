package dto

// SearchRequest request tìm kiếm bất động sản bằng ngôn ngữ tự nhiên
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchFilters bộ lọc tìm kiếm trích xuất từ câu truy vấn
type SearchFilters struct {
	Status       string `json:"status,omitempty"`
	RentalType   string `json:"rentalType,omitempty"`
	Building     string `json:"building,omitempty"`
	Floor        string `json:"floor,omitempty"`
	RoomNumber   string `json:"roomNumber,omitempty"`
	TenantName   string `json:"tenantName,omitempty"`
	RepairStatus string `json:"repairStatus,omitempty"`
	MaxRent      *int   `json:"maxRent,omitempty"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

// ReceiptScanResult kết quả trích xuất thông tin hóa đơn từ ảnh
type ReceiptScanResult struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

// ScanReceiptRequest request quét hóa đơn (ảnh base64)
type ScanReceiptRequest struct {
	Image string `json:"image" binding:"required"`
}

// ScoredProperty bất động sản kèm điểm phù hợp khi tìm kiếm fuzzy
type ScoredProperty struct {
	PropertyID string `json:"propertyId"`
	Score      int    `json:"score"`
}
