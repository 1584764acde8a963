package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// StatusSweeper định nghĩa interface cho việc quét trạng thái đầu ngày
type StatusSweeper interface {
	RunDailySweep(m *melody.Melody) error
}

var statusSweeper StatusSweeper

// SetStatusSweeper thiết lập implementation cho StatusSweeper
func SetStatusSweeper(sweeper StatusSweeper) {
	statusSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Quét trạng thái và đánh dấu quá hạn lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy quét trạng thái bất động sản lúc: %v", now)
		if statusSweeper == nil {
			log.Printf("Lỗi: StatusSweeper chưa được thiết lập")
			return
		}
		if err := statusSweeper.RunDailySweep(m); err != nil {
			log.Printf("Lỗi khi quét trạng thái: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
