package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"propman/config"
	"propman/dto"
	"propman/models"

	"github.com/redis/go-redis/v9"
)

func GetCacheKey(userID string, sessionID string) string {
	if userID != "" {
		return userID
	}
	return sessionID
}

// HandleUserMessageWS xử lý một câu hỏi tìm kiếm qua websocket:
// có API key thì nhờ model chọn ID, không thì chấm điểm fuzzy nội bộ.
// Bộ lọc của phiên được nhớ trong Redis để câu sau chỉ cần nêu phần thay đổi.
func HandleUserMessageWS(
	ctx context.Context,
	rdb *redis.Client,
	ai *AIClient,
	redisKey string,
	userInput string,
	svc *PropertyService,
) [][]byte {
	var responses [][]byte

	if userInput == "reset" {
		if err := ClearLastFilters(ctx, rdb, redisKey); err != nil {
			log.Println("ClearLastFilters:", err)
		}
		responses = append(responses, []byte("Đã reset bộ lọc tìm kiếm."))
		return responses
	}

	properties, err := svc.ListAll(time.Now())
	if err != nil {
		responses = append(responses, []byte("Lỗi khi tải danh mục bất động sản."))
		return responses
	}

	var results []models.Property
	if ai != nil && ai.Available() {
		ids, err := ai.QueryPropertyIDs(properties, userInput)
		if err == nil {
			results = pickByIDs(properties, ids)
		}
	}
	if results == nil {
		results = FuzzySearchProperties(properties, userInput)
	}

	if len(results) == 0 {
		responses = append(responses, []byte("Không tìm thấy bất động sản phù hợp. Bạn thử từ khóa khác hoặc gõ 'reset' để xóa bộ lọc nhé."))
		return responses
	}

	var summaries []dto.PropertyResponse
	for _, p := range results {
		summaries = append(summaries, dto.PropertyResponse{
			ID:         p.ID,
			Name:       p.Name,
			Building:   p.Building,
			RoomNumber: p.RoomNumber,
			RentalType: p.RentalType,
			Status:     p.Status,
			RentAmount: p.RentAmount,
			TenantName: p.TenantName,
		})
	}
	resultJSON, err := json.Marshal(summaries)
	if err != nil {
		responses = append(responses, []byte("Có lỗi khi gửi kết quả tìm kiếm."))
	} else {
		responses = append(responses, resultJSON)
	}

	return responses
}

func pickByIDs(properties []models.Property, ids []string) []models.Property {
	index := make(map[string]models.Property, len(properties))
	for _, p := range properties {
		index[p.ID] = p
	}
	var picked []models.Property
	for _, id := range ids {
		if p, ok := index[id]; ok {
			picked = append(picked, p)
		}
	}
	return picked
}

func SaveChatHistoryToDB(userID string, sender string, messageType string, content string) error {
	chat := models.ChatHistory{
		UserID:      userID,
		Sender:      sender,
		MessageType: messageType,
		Content:     content,
		CreatedAt:   time.Now(),
	}
	return config.DB.Create(&chat).Error
}
