package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// SalaryPaidMessage thông báo khi một khoản lương được thanh toán
type SalaryPaidMessage struct {
	employeeName string
	amount       float64
	dueAmount    float64
}

func NewSalaryPaidMessage(employeeName string, amount, dueAmount float64) *SalaryPaidMessage {
	return &SalaryPaidMessage{
		employeeName: employeeName,
		amount:       amount,
		dueAmount:    dueAmount,
	}
}

func (b *SalaryPaidMessage) Build() string {
	return fmt.Sprintf("🔔 Đã thanh toán %.2f lương cho %s, còn nợ %.2f.", b.amount, b.employeeName, b.dueAmount)
}

// LeaveRequestMessage thông báo khi có đơn nghỉ phép mới
type LeaveRequestMessage struct {
	leaveID   uint
	leaveType string
}

func NewLeaveRequestMessage(leaveID uint, leaveType string) *LeaveRequestMessage {
	return &LeaveRequestMessage{leaveID: leaveID, leaveType: leaveType}
}

func (b *LeaveRequestMessage) Build() string {
	return fmt.Sprintf("🔔 Đơn nghỉ phép #%d (%s) vừa được gửi, đang chờ duyệt.", b.leaveID, b.leaveType)
}

// LeaveStatusMessage thông báo khi đơn nghỉ phép được duyệt hoặc từ chối
type LeaveStatusMessage struct {
	leaveID uint
	status  string
}

func NewLeaveStatusMessage(leaveID uint, status string) *LeaveStatusMessage {
	return &LeaveStatusMessage{leaveID: leaveID, status: status}
}

func (b *LeaveStatusMessage) Build() string {
	return fmt.Sprintf("🔔 Đơn nghỉ phép #%d đã chuyển sang trạng thái %s.", b.leaveID, b.status)
}

// DueSalaryMessage nhắc các khoản lương còn nợ của kỳ trước
type DueSalaryMessage struct {
	month int
	year  int
	count int
}

func NewDueSalaryMessage(month, year, count int) *DueSalaryMessage {
	return &DueSalaryMessage{month: month, year: year, count: count}
}

func (b *DueSalaryMessage) Build() string {
	return fmt.Sprintf("🔔 Còn %d nhân viên chưa được trả đủ lương tháng %d/%d.", b.count, b.month, b.year)
}
