package controllers

import (
	"propman/config"
	"propman/services"
	"propman/utils"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupChatSocket gắn trợ lý tìm kiếm vào kênh WebSocket: mỗi tin nhắn là
// một câu truy vấn, lịch sử hội thoại được lưu lại theo người dùng
func SetupChatSocket(m *melody.Melody, db *gorm.DB, rdb *redis.Client) {
	ai := services.NewAIClient()

	m.HandleConnect(func(s *melody.Session) {
		userID := s.Request.URL.Query().Get("userId")
		sessionID := s.Request.URL.Query().Get("sessionId")
		s.Set("userId", userID)
		s.Set("sessionId", sessionID)
		utils.LogInfo("WS kết nối: user=%s session=%s", userID, sessionID)
	})

	m.HandleMessage(func(s *melody.Session, msg []byte) {
		userID, _ := s.Get("userId")
		sessionID, _ := s.Get("sessionId")
		userIDStr, _ := userID.(string)
		sessionIDStr, _ := sessionID.(string)

		redisKey := services.GetCacheKey(userIDStr, sessionIDStr)
		userInput := string(msg)

		if userIDStr != "" {
			if err := services.SaveChatHistoryToDB(userIDStr, "user", "text", userInput); err != nil {
				utils.LogError("Không lưu được lịch sử chat: %v", err)
			}
		}

		svc := services.NewPropertyService(services.PropertyServiceOptions{
			DB:    db,
			Redis: rdb,
		})

		responses := services.HandleUserMessageWS(config.Ctx, rdb, ai, redisKey, userInput, svc)
		for _, resp := range responses {
			if err := s.Write(resp); err != nil {
				utils.LogError("Không gửi được phản hồi WS: %v", err)
			}
			if userIDStr != "" {
				_ = services.SaveChatHistoryToDB(userIDStr, "bot", "text", string(resp))
			}
		}
	})
}
