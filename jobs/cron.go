package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// DueSalaryNotifier định nghĩa interface cho việc nhắc lương còn nợ
type DueSalaryNotifier interface {
	NotifyDueSalaries() error
}

var dueSalaryNotifier DueSalaryNotifier

// SetDueSalaryNotifier thiết lập implementation cho DueSalaryNotifier
func SetDueSalaryNotifier(notifier DueSalaryNotifier) {
	dueSalaryNotifier = notifier
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Chạy 8h sáng ngày đầu mỗi tháng: quét sổ lương tháng trước
	_, err := c.AddFunc("0 8 1 * *", func() {
		now := time.Now()
		log.Printf("Đang quét các khoản lương còn nợ lúc: %v", now)
		if dueSalaryNotifier == nil {
			log.Printf("Lỗi: DueSalaryNotifier chưa được thiết lập")
			return
		}
		if err := dueSalaryNotifier.NotifyDueSalaries(); err != nil {
			log.Printf("Lỗi khi quét lương còn nợ: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
