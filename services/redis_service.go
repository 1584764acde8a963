package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Khóa cache cho danh sách và chi tiết bất động sản
func PropertyListCacheKey(page, limit int) string {
	return fmt.Sprintf("properties:all:%d:%d", page, limit)
}

func PropertyDetailCacheKey(id string) string {
	return "properties:detail:" + id
}

const DashboardCacheKey = "dashboard:summary"

// Hàm lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	// Parse JSON thành object
	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

// Xóa toàn bộ cache liên quan tới một bất động sản sau khi ghi
func InvalidatePropertyCache(ctx context.Context, rdb *redis.Client, propertyID string) {
	if rdb == nil {
		return
	}
	iter := rdb.Scan(ctx, 0, "properties:all:*", 0).Iterator()
	for iter.Next(ctx) {
		rdb.Del(ctx, iter.Val())
	}
	rdb.Del(ctx, PropertyDetailCacheKey(propertyID))
	rdb.Del(ctx, DashboardCacheKey)
}
