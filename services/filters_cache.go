package services

import (
	"context"
	"encoding/json"
	"time"

	"propman/dto"

	"github.com/redis/go-redis/v9"
)

// Lưu bộ lọc tìm kiếm gần nhất của phiên làm việc
func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// Merge yêu cầu cũ với yêu cầu mới: truy vấn tiếp theo chỉ cần nêu phần thay đổi
func MergeFilters(old *dto.SearchFilters, new *dto.SearchFilters) *dto.SearchFilters {
	new.Status = orString(new.Status, old.Status)
	new.RentalType = orString(new.RentalType, old.RentalType)
	new.Building = orString(new.Building, old.Building)
	new.Floor = orString(new.Floor, old.Floor)
	new.RoomNumber = orString(new.RoomNumber, old.RoomNumber)
	new.TenantName = orString(new.TenantName, old.TenantName)
	new.RepairStatus = orString(new.RepairStatus, old.RepairStatus)

	// Trần giá mới thay thế trần giá cũ, chỉ giữ lại khi người dùng không nhập
	if new.MaxRent == nil {
		new.MaxRent = old.MaxRent
	}
	if new.Page == 0 {
		new.Page = old.Page
	}
	if new.Limit == 0 {
		new.Limit = old.Limit
	}
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}
