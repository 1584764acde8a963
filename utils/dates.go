package utils

import (
	"math"
	"time"
)

// DateLayout định dạng ngày lưu trong hệ thống (yyyy-MM-dd)
const DateLayout = "2006-01-02"

// ParseDay parse chuỗi ngày theo DateLayout, chuẩn hóa về 00:00 UTC
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// Day cắt bỏ phần giờ, chỉ giữ lại ngày (tránh lệch ngày do timezone)
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDay format ngày về chuỗi theo DateLayout
func FormatDay(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// DayOverlap kiểm tra day có nằm trong khoảng [start, end) không.
// Ngày trả phòng không tính là ngày ở, nên khách mới có thể nhận phòng cùng ngày.
func DayOverlap(start, end, day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(start)) && d.Before(Day(end))
}

// DaysBetween tính số ngày giữa hai mốc, làm tròn lên, chỉ so sánh phần ngày
func DaysBetween(a, b time.Time) int {
	diff := Day(b).Sub(Day(a)).Hours() / 24
	return int(math.Ceil(diff))
}

// AddMonths cộng thêm n tháng theo lịch (31/01 + 1 tháng sẽ tự nhảy sang ngày hợp lệ)
func AddMonths(t time.Time, months int) time.Time {
	return Day(t).AddDate(0, months, 0)
}

// ContractStats kết quả tính tiến độ hợp đồng
type ContractStats struct {
	TotalDays int `json:"totalDays"`
	DaysLeft  int `json:"daysLeft"`
	Progress  int `json:"progress"`
}

// ContractProgress tính tiến độ hợp đồng theo phần trăm.
// TotalDays tối thiểu là 1 để tránh chia cho 0, Progress luôn nằm trong [0, 100].
// DaysLeft có thể âm nếu hợp đồng đã hết hạn.
func ContractProgress(start, end, now time.Time) ContractStats {
	totalDays := DaysBetween(start, end)
	if totalDays < 1 {
		totalDays = 1
	}

	passed := DaysBetween(start, now)
	if passed < 0 {
		passed = 0
	}

	progress := int(math.Round(float64(passed) / float64(totalDays) * 100))
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return ContractStats{
		TotalDays: totalDays,
		DaysLeft:  DaysBetween(now, end),
		Progress:  progress,
	}
}
