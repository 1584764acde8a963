package services

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"propman/models"
	"propman/services/notification"

	"github.com/olahol/melody"
)

// RunDailySweep chạy quét trạng thái đầu ngày: dẫn xuất lại trạng thái
// toàn danh mục, đánh dấu quá hạn thanh toán rồi báo cho client đang mở.
func RunDailySweep(m *melody.Melody, svc *PropertyService) error {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return fmt.Errorf("❌ Lỗi khi tải múi giờ: %w", err)
	}

	today := time.Now().In(loc)

	changed, err := svc.RefreshAllStatuses(today)
	if err != nil {
		log.Println("❌ Lỗi quét trạng thái:", err)
		return err
	}

	notifier := notification.NewMelodyService(m)

	if changed == 0 {
		log.Println("ℹ️ Không có bất động sản nào thay đổi trạng thái hôm nay.")
	} else {
		log.Printf("✅ Đã cập nhật trạng thái cho %d bất động sản.\n", changed)
		message := fmt.Sprintf("🔔 Trạng thái danh mục đã được cập nhật (%d thay đổi).", changed)
		if err := notifier.SendMessage(message); err != nil {
			log.Println("❌ Lỗi gửi thông báo websocket:", err)
		}
	}

	sendOverdueReminders(notifier, svc, today)
	return nil
}

// sendOverdueReminders nhắc các kỳ thuê đã quá hạn sau khi quét xong
func sendOverdueReminders(notifier notification.Service, svc *PropertyService, today time.Time) {
	properties, err := svc.ListAll(today)
	if err != nil {
		log.Println("❌ Lỗi tải danh mục để nhắc quá hạn:", err)
		return
	}

	for i := range properties {
		p := &properties[i]
		for _, record := range p.PaymentHistory {
			if record.EffectiveStatus(today) != models.PaymentStatusOverdue {
				continue
			}
			message := notification.NewOverdueBuilder(p.Name, record.Month).Build()
			if err := notifier.SendMessage(message); err != nil {
				log.Println("❌ Lỗi gửi nhắc quá hạn:", err)
				return
			}
		}
	}
}

// DailySweepAdapter cho phép jobs gọi quét trạng thái mà không import services
type DailySweepAdapter struct {
	svc *PropertyService
}

func NewDailySweepAdapter(svc *PropertyService) *DailySweepAdapter {
	return &DailySweepAdapter{svc: svc}
}

func (a *DailySweepAdapter) RunDailySweep(m *melody.Melody) error {
	return RunDailySweep(m, a.svc)
}
