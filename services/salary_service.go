package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"clinichr/constants"
	errs "clinichr/errors"
	"clinichr/models"
	"clinichr/services/logger"
	"clinichr/services/notification"

	"gorm.io/gorm"
)

// SalaryServiceOptions chứa các dependency được inject vào SalaryService.
// Gateway, Receipts, Mailer, Notifier có thể thay bằng fake khi test.
type SalaryServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Gateway  PaymentGateway
	Receipts ReceiptBuilder
	Mailer   Mailer
	Notifier notification.Service
	Now      func() time.Time
}

type SalaryService struct {
	opts SalaryServiceOptions
}

func NewSalaryService(opts SalaryServiceOptions) *SalaryService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SalaryService{opts: opts}
}

// PaySalaryInput là yêu cầu thanh toán lương cho một nhân viên
type PaySalaryInput struct {
	EmployeeID    uint
	CenterID      uint
	Amount        float64
	PaymentMethod string
	StripeToken   string
	Email         string
}

// PaySalaryResult gồm sổ lương và doanh thu sau khi thanh toán.
// Notified = false nghĩa là tiền đã ghi sổ nhưng gửi biên nhận thất bại.
type PaySalaryResult struct {
	Salary      *models.Salary
	Revenue     *models.CenterRevenue
	Notified    bool
	NotifyError string
}

// PaySalary thực hiện một lần trả lương:
// kiểm tra đã trả đủ chưa, kiểm tra lợi nhuận trung tâm, trừ tiền qua
// cổng thanh toán, rồi cộng dồn vào sổ lương của tháng hiện tại và
// cập nhật doanh thu trung tâm. Biên nhận và email chỉ là best-effort,
// thất bại không làm hủy các bước đã ghi sổ.
func (s *SalaryService) PaySalary(ctx context.Context, input PaySalaryInput) (*PaySalaryResult, error) {
	if input.Amount <= 0 {
		return nil, errs.NewAppError(errs.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}

	db := s.opts.DB

	var employee models.Employee
	if err := db.First(&employee, input.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewAppError(errs.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return nil, errs.NewAppError(errs.ErrCodeDBError, "Lỗi truy vấn nhân viên", err)
	}

	now := s.opts.Now()
	month := int(now.Month())
	year := now.Year()
	totalSalary := employee.Salary

	var entry models.Salary
	entryFound := true
	if err := db.Where("employee_id = ? AND month = ? AND year = ?", input.EmployeeID, month, year).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entryFound = false
		} else {
			return nil, errs.NewAppError(errs.ErrCodeDBError, "Lỗi truy vấn sổ lương", err)
		}
	}

	if entryFound && entry.PaidAmount >= entry.TotalSalary {
		return nil, errs.NewAppError(errs.ErrCodeAlreadyPaid, "Lương tháng này đã được thanh toán đủ", nil)
	}

	var revenue models.CenterRevenue
	revenueFound := true
	if err := db.Where("center_id = ? AND month = ? AND year = ?", input.CenterID, month, year).
		First(&revenue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			revenueFound = false
		} else {
			return nil, errs.NewAppError(errs.ErrCodeDBError, "Lỗi truy vấn doanh thu", err)
		}
	}

	if revenueFound && revenue.NetProfit < input.Amount {
		return nil, errs.NewAppError(errs.ErrCodeInsufficientProfit, "Lợi nhuận không đủ để trả lương", nil)
	}

	if s.opts.Gateway != nil {
		description := fmt.Sprintf("Thanh toán lương cho %s (#%d)", employee.Name, employee.ID)
		amountCents := int64(math.Round(input.Amount * 100))
		if err := s.opts.Gateway.Charge(ctx, amountCents, "usd", description, input.StripeToken); err != nil {
			return nil, errs.NewAppError(errs.ErrCodePaymentFailed, "Thanh toán thất bại", err)
		}
	}

	if entryFound {
		entry.PaidAmount += input.Amount
		entry.DueAmount = math.Max(entry.TotalSalary-entry.PaidAmount, 0)
		entry.PaymentStatus = paymentStatusFor(entry.PaidAmount, entry.TotalSalary)
		entry.PaymentDate = now
		if input.PaymentMethod != "" {
			entry.PaymentMethod = input.PaymentMethod
		}
		if err := db.Save(&entry).Error; err != nil {
			return nil, errs.NewAppError(errs.ErrCodeDBError, "Lỗi cập nhật sổ lương", err)
		}
	} else {
		entry = models.Salary{
			EmployeeID:    employee.ID,
			EmployeeName:  employee.Name,
			CenterID:      input.CenterID,
			Month:         month,
			Year:          year,
			TotalSalary:   totalSalary,
			PaidAmount:    input.Amount,
			DueAmount:     math.Max(totalSalary-input.Amount, 0),
			PaymentStatus: paymentStatusFor(input.Amount, totalSalary),
			PaymentMethod: input.PaymentMethod,
			PaymentDate:   now,
		}
		if err := db.Create(&entry).Error; err != nil {
			// Ràng buộc unique (employee, month, year): request song song
			// đã tạo bản ghi trước, trả về xung đột thay vì ghi đè
			return nil, errs.NewAppError(errs.ErrCodeDBDuplicate, "Sổ lương của kỳ này vừa được cập nhật, vui lòng thử lại", err)
		}
	}

	if err := s.bumpRevenue(&revenue, revenueFound, input, month, year); err != nil {
		return nil, err
	}

	result := &PaySalaryResult{Salary: &entry, Revenue: &revenue, Notified: true}

	if err := s.sendReceipt(employee, entry, input, now); err != nil {
		s.opts.Logger.Error("Gửi biên nhận lương cho nhân viên %d thất bại: %v", employee.ID, err)
		result.Notified = false
		result.NotifyError = string(errs.ErrCodeNotificationFailed)
	}

	if s.opts.Notifier != nil {
		msg := notification.NewSalaryPaidMessage(employee.Name, input.Amount, entry.DueAmount).Build()
		if err := s.opts.Notifier.SendMessage(msg); err != nil {
			s.opts.Logger.Error("Broadcast thông báo lương thất bại: %v", err)
		}
	}

	return result, nil
}

// bumpRevenue cộng chi phí và trừ lợi nhuận của trung tâm trong kỳ,
// tạo bản ghi mới nếu kỳ này chưa có
func (s *SalaryService) bumpRevenue(revenue *models.CenterRevenue, found bool, input PaySalaryInput, month, year int) error {
	db := s.opts.DB

	if !found {
		*revenue = models.CenterRevenue{
			CenterID:  input.CenterID,
			Month:     month,
			Year:      year,
			TotalCost: input.Amount,
			NetProfit: -input.Amount,
		}
		if err := db.Create(revenue).Error; err == nil {
			return nil
		}
		// Bản ghi vừa được tạo bởi request khác, rơi xuống nhánh cộng dồn
	}

	updates := map[string]interface{}{
		"total_cost": gorm.Expr("total_cost + ?", input.Amount),
		"net_profit": gorm.Expr("net_profit - ?", input.Amount),
	}
	if err := db.Model(&models.CenterRevenue{}).
		Where("center_id = ? AND month = ? AND year = ?", input.CenterID, month, year).
		Updates(updates).Error; err != nil {
		return errs.NewAppError(errs.ErrCodeDBError, "Lỗi cập nhật doanh thu", err)
	}

	if err := db.Where("center_id = ? AND month = ? AND year = ?", input.CenterID, month, year).
		First(revenue).Error; err != nil {
		return errs.NewAppError(errs.ErrCodeDBError, "Lỗi đọc lại doanh thu", err)
	}
	return nil
}

func (s *SalaryService) sendReceipt(employee models.Employee, entry models.Salary, input PaySalaryInput, now time.Time) error {
	if s.opts.Receipts == nil || s.opts.Mailer == nil {
		return nil
	}

	path, err := s.opts.Receipts.Build(ReceiptData{
		EmployeeName: employee.Name,
		EmployeeID:   employee.ID,
		Month:        entry.Month,
		Year:         entry.Year,
		Amount:       input.Amount,
		DueAmount:    entry.DueAmount,
		Date:         now,
	})
	if err != nil {
		return err
	}

	to := input.Email
	if to == "" {
		to = employee.Email
	}

	monthName := time.Month(entry.Month).String()
	body := fmt.Sprintf(`
		<h2>Xin chào %s,</h2>
		<p>Lương tháng %s %d của bạn đã được thanh toán.</p>
		<p>Số tiền: <strong>$%.2f</strong></p>
		<p>Còn nợ: <strong>$%.2f</strong></p>
		<p>Cảm ơn bạn đã đồng hành cùng trung tâm.</p>
	`, employee.Name, monthName, entry.Year, input.Amount, entry.DueAmount)

	return s.opts.Mailer.Send(to, "Thanh toán lương của bạn", body, path)
}

// paymentStatusFor suy ra trạng thái thanh toán từ số đã trả và tổng lương
func paymentStatusFor(paid, total float64) string {
	if paid >= total {
		return constants.PaymentStatusPaid
	}
	return constants.PaymentStatusPartial
}

// DueSalary tra cứu số lương còn nợ của một nhân viên trong một kỳ.
// Chưa có sổ lương của kỳ đó thì coi như chưa trả đồng nào.
func (s *SalaryService) DueSalary(employeeID uint, month, year int) (*models.Employee, float64, error) {
	var employee models.Employee
	if err := s.opts.DB.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, errs.NewAppError(errs.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return nil, 0, errs.NewAppError(errs.ErrCodeDBError, "Lỗi truy vấn nhân viên", err)
	}

	var entry models.Salary
	paid := 0.0
	if err := s.opts.DB.Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		First(&entry).Error; err == nil {
		paid = entry.PaidAmount
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, errs.NewAppError(errs.ErrCodeDBError, "Lỗi truy vấn sổ lương", err)
	}

	return &employee, paid, nil
}

// NotifyDueSalaries quét sổ lương của tháng trước và broadcast nhắc
// các khoản còn nợ. Được gọi từ cron job đầu tháng.
func (s *SalaryService) NotifyDueSalaries() error {
	prev := s.opts.Now().AddDate(0, -1, 0)
	month := int(prev.Month())
	year := prev.Year()

	var count int64
	if err := s.opts.DB.Model(&models.Salary{}).
		Where("month = ? AND year = ? AND due_amount > 0", month, year).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		s.opts.Logger.Info("Không còn khoản lương nào nợ của tháng %d/%d", month, year)
		return nil
	}

	s.opts.Logger.Info("Còn %d nhân viên chưa nhận đủ lương tháng %d/%d", count, month, year)
	if s.opts.Notifier != nil {
		msg := notification.NewDueSalaryMessage(month, year, int(count)).Build()
		return s.opts.Notifier.SendMessage(msg)
	}
	return nil
}
