package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinichr/constants"
	errs "clinichr/errors"
	"clinichr/models"
	"clinichr/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGateway struct {
	err        error
	calls      int
	lastAmount int64
}

func (g *fakeGateway) Charge(ctx context.Context, amountCents int64, currency, description, token string) error {
	g.calls++
	g.lastAmount = amountCents
	return g.err
}

type fakeReceipts struct {
	err error
}

func (r *fakeReceipts) Build(data services.ReceiptData) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "receipt.pdf", nil
}

type fakeMailer struct {
	err  error
	sent []string
}

func (m *fakeMailer) Send(to, subject, htmlBody, attachmentPath string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) SendMessage(message string) error {
	n.messages = append(n.messages, message)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Center{},
		&models.Employee{},
		&models.User{},
		&models.EmployeeLeave{},
		&models.Salary{},
		&models.CenterRevenue{},
	))
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, salary float64) models.Employee {
	t.Helper()
	center := models.Center{Name: "Trung tâm Q1"}
	require.NoError(t, db.Create(&center).Error)
	employee := models.Employee{
		CenterID:     center.ID,
		Name:         "Nguyễn Văn An",
		Email:        "an.nguyen@clinic.vn",
		Phone:        "0901234567",
		Position:     "Kỹ thuật viên",
		Salary:       salary,
		ProfileImage: "https://example.com/an.jpg",
		Status:       constants.EmployeeStatusActive,
	}
	require.NoError(t, db.Create(&employee).Error)
	return employee
}

func fixedNow() time.Time {
	return time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func newService(db *gorm.DB, opts services.SalaryServiceOptions) *services.SalaryService {
	opts.DB = db
	if opts.Now == nil {
		opts.Now = fixedNow
	}
	return services.NewSalaryService(opts)
}

func TestPaySalaryFirstPayment(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	gateway := &fakeGateway{}
	notifier := &fakeNotifier{}
	svc := newService(db, services.SalaryServiceOptions{Gateway: gateway, Notifier: notifier})

	result, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID:    employee.ID,
		CenterID:      employee.CenterID,
		Amount:        400,
		PaymentMethod: "Stripe",
	})
	require.NoError(t, err)

	assert.Equal(t, 400.0, result.Salary.PaidAmount)
	assert.Equal(t, 600.0, result.Salary.DueAmount)
	assert.Equal(t, constants.PaymentStatusPartial, result.Salary.PaymentStatus)
	assert.Equal(t, 3, result.Salary.Month)
	assert.Equal(t, 2025, result.Salary.Year)

	assert.Equal(t, 400.0, result.Revenue.TotalCost)
	assert.Equal(t, -400.0, result.Revenue.NetProfit)

	assert.Equal(t, 1, gateway.calls)
	assert.Equal(t, int64(40000), gateway.lastAmount)

	assert.True(t, result.Notified)
	assert.Len(t, notifier.messages, 1)
}

func TestPaySalarySecondPaymentAccumulates(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	// Trung tâm có lãi đủ để cả hai lần trả đều qua được chốt lợi nhuận
	require.NoError(t, db.Create(&models.CenterRevenue{
		CenterID: employee.CenterID, Month: 3, Year: 2025,
		TotalRevenue: 5000, NetProfit: 5000,
	}).Error)
	svc := newService(db, services.SalaryServiceOptions{})

	_, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 400,
	})
	require.NoError(t, err)

	result, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 700,
	})
	require.NoError(t, err)

	assert.Equal(t, 1100.0, result.Salary.PaidAmount)
	assert.Equal(t, 0.0, result.Salary.DueAmount)
	assert.Equal(t, constants.PaymentStatusPaid, result.Salary.PaymentStatus)

	// Hai lần trả cộng dồn vào cùng một bản ghi
	var count int64
	require.NoError(t, db.Model(&models.Salary{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, 1100.0, result.Revenue.TotalCost)
	assert.Equal(t, 3900.0, result.Revenue.NetProfit)
}

func TestPaySalaryAlreadyPaid(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	gateway := &fakeGateway{}
	svc := newService(db, services.SalaryServiceOptions{Gateway: gateway})

	_, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 1000,
	})
	require.NoError(t, err)

	_, err = svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 100,
	})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeAlreadyPaid))

	// Không trừ thêm tiền khi đã trả đủ
	assert.Equal(t, 1, gateway.calls)

	var entry models.Salary
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, 1000.0, entry.PaidAmount)
}

func TestPaySalaryInsufficientProfit(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	require.NoError(t, db.Create(&models.CenterRevenue{
		CenterID: employee.CenterID, Month: 3, Year: 2025,
		TotalRevenue: 100, NetProfit: 100,
	}).Error)
	svc := newService(db, services.SalaryServiceOptions{})

	_, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 200,
	})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInsufficientProfit))

	var count int64
	require.NoError(t, db.Model(&models.Salary{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPaySalaryGatewayFailure(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	gateway := &fakeGateway{err: errors.New("card declined")}
	svc := newService(db, services.SalaryServiceOptions{Gateway: gateway})

	_, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 400,
	})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodePaymentFailed))

	// Thanh toán hỏng thì không được ghi sổ
	var salaries, revenues int64
	require.NoError(t, db.Model(&models.Salary{}).Count(&salaries).Error)
	require.NoError(t, db.Model(&models.CenterRevenue{}).Count(&revenues).Error)
	assert.Equal(t, int64(0), salaries)
	assert.Equal(t, int64(0), revenues)
}

func TestPaySalaryEmployeeNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db, services.SalaryServiceOptions{})

	_, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: 999, CenterID: 1, Amount: 400,
	})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeEmployeeNotFound))
}

func TestPaySalaryInvalidAmount(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db, services.SalaryServiceOptions{})

	_, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: 1, CenterID: 1, Amount: 0,
	})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidAmount))
}

func TestPaySalaryOverpayment(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	svc := newService(db, services.SalaryServiceOptions{})

	result, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 1500,
	})
	require.NoError(t, err)

	// Trả dư thì nợ chặn ở 0, không âm
	assert.Equal(t, 1500.0, result.Salary.PaidAmount)
	assert.Equal(t, 0.0, result.Salary.DueAmount)
	assert.Equal(t, constants.PaymentStatusPaid, result.Salary.PaymentStatus)
}

func TestPaySalaryReceiptFailureStillPersists(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	svc := newService(db, services.SalaryServiceOptions{
		Receipts: &fakeReceipts{},
		Mailer:   &fakeMailer{err: errors.New("smtp down")},
	})

	result, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 400,
	})
	require.NoError(t, err)

	assert.False(t, result.Notified)
	assert.Equal(t, string(errs.ErrCodeNotificationFailed), result.NotifyError)

	// Tiền vẫn được ghi sổ dù gửi biên nhận thất bại
	var entry models.Salary
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, 400.0, entry.PaidAmount)
}

func TestPaySalaryReceiptSent(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	mailer := &fakeMailer{}
	svc := newService(db, services.SalaryServiceOptions{
		Receipts: &fakeReceipts{},
		Mailer:   mailer,
	})

	result, err := svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 400,
		Email: "ke-toan@clinic.vn",
	})
	require.NoError(t, err)

	assert.True(t, result.Notified)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ke-toan@clinic.vn", mailer.sent[0])
}

func TestDueSalary(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	svc := newService(db, services.SalaryServiceOptions{})

	// Chưa có sổ lương thì coi như chưa trả đồng nào
	emp, paid, err := svc.DueSalary(employee.ID, 3, 2025)
	require.NoError(t, err)
	assert.Equal(t, employee.Name, emp.Name)
	assert.Equal(t, 0.0, paid)

	_, err = svc.PaySalary(context.Background(), services.PaySalaryInput{
		EmployeeID: employee.ID, CenterID: employee.CenterID, Amount: 400,
	})
	require.NoError(t, err)

	_, paid, err = svc.DueSalary(employee.ID, 3, 2025)
	require.NoError(t, err)
	assert.Equal(t, 400.0, paid)

	_, _, err = svc.DueSalary(999, 3, 2025)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeEmployeeNotFound))
}

func TestNotifyDueSalaries(t *testing.T) {
	db := newTestDB(t)
	employee := seedEmployee(t, db, 1000)
	notifier := &fakeNotifier{}
	svc := newService(db, services.SalaryServiceOptions{Notifier: notifier})

	// Sổ lương tháng trước (2/2025) còn nợ
	require.NoError(t, db.Create(&models.Salary{
		EmployeeID: employee.ID, EmployeeName: employee.Name, CenterID: employee.CenterID,
		Month: 2, Year: 2025, TotalSalary: 1000, PaidAmount: 400, DueAmount: 600,
		PaymentStatus: constants.PaymentStatusPartial, PaymentDate: fixedNow(),
	}).Error)

	require.NoError(t, svc.NotifyDueSalaries())
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "2/2025")
}

func TestNotifyDueSalariesNothingDue(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := newService(db, services.SalaryServiceOptions{Notifier: notifier})

	require.NoError(t, svc.NotifyDueSalaries())
	assert.Empty(t, notifier.messages)
}
