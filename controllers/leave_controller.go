package controllers

import (
	"errors"
	"fmt"
	"time"

	"clinichr/constants"
	"clinichr/dto"
	errs "clinichr/errors"
	"clinichr/models"
	"clinichr/response"
	"clinichr/services"
	"clinichr/services/notification"
	"clinichr/utils"
	"clinichr/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LeaveController struct {
	DB       *gorm.DB
	Mailer   services.Mailer
	Notifier notification.Service
}

func NewLeaveController(db *gorm.DB, mailer services.Mailer, notifier notification.Service) *LeaveController {
	return &LeaveController{DB: db, Mailer: mailer, Notifier: notifier}
}

// AddLeave tạo đơn nghỉ phép mới, luôn bắt đầu ở trạng thái Pending
func (lc *LeaveController) AddLeave(c *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateLeaveRequest(&req); err != nil {
		appErr := errs.GetAppError(err)
		response.ValidationError(c, appErr.Message)
		return
	}

	var employee models.Employee
	if err := lc.DB.First(&employee, req.EmployeeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	leave := models.EmployeeLeave{
		EmployeeID: req.EmployeeID,
		CenterID:   req.CenterID,
		LeaveType:  req.LeaveType,
		Reason:     req.Reason,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     constants.LeaveStatusPending,
	}
	if err := lc.DB.Create(&leave).Error; err != nil {
		response.ServerError(c)
		return
	}

	if lc.Notifier != nil {
		msg := notification.NewLeaveRequestMessage(leave.ID, leave.LeaveType).Build()
		if err := lc.Notifier.SendMessage(msg); err != nil {
			utils.LogError("Broadcast đơn nghỉ phép #%d thất bại: %v", leave.ID, err)
		}
	}

	response.Created(c, leave)
}

// AllLeave liệt kê đơn nghỉ phép của một trung tâm, mới nhất trước
func (lc *LeaveController) AllLeave(c *gin.Context) {
	centerID := c.Param("centerId")

	var leaves []models.EmployeeLeave
	if err := lc.DB.Preload("Employee").
		Where("center_id = ?", centerID).
		Order("applied_at desc").
		Find(&leaves).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, leaves)
}

// UpdateLeaveStatus duyệt hoặc từ chối một đơn nghỉ phép.
// Chỉ đơn đang Pending mới được chuyển trạng thái.
func (lc *LeaveController) UpdateLeaveStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Status != constants.LeaveStatusApproved && req.Status != constants.LeaveStatusRejected {
		response.BadRequest(c, "Trạng thái không hợp lệ, chỉ chấp nhận Approved hoặc Rejected")
		return
	}

	var leave models.EmployeeLeave
	if err := lc.DB.First(&leave, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if leave.Status != constants.LeaveStatusPending {
		response.Conflict(c, "Đơn nghỉ phép đã được xử lý")
		return
	}

	leave.Status = req.Status
	if err := lc.DB.Save(&leave).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Email cho nhân viên là best-effort, không làm hỏng việc duyệt đơn
	notified := true
	if lc.Mailer != nil {
		if err := lc.sendStatusEmail(&leave); err != nil {
			utils.LogError("Gửi email duyệt đơn #%d thất bại: %v", leave.ID, err)
			notified = false
		}
	}

	if lc.Notifier != nil {
		msg := notification.NewLeaveStatusMessage(leave.ID, leave.Status).Build()
		if err := lc.Notifier.SendMessage(msg); err != nil {
			utils.LogError("Broadcast duyệt đơn #%d thất bại: %v", leave.ID, err)
		}
	}

	response.Success(c, gin.H{
		"leave":        leave,
		"notification": gin.H{"sent": notified},
	})
}

func (lc *LeaveController) sendStatusEmail(leave *models.EmployeeLeave) error {
	var employee models.Employee
	if err := lc.DB.First(&employee, leave.EmployeeID).Error; err != nil {
		return err
	}

	subject := "Đơn nghỉ phép của bạn: " + leave.Status
	body := fmt.Sprintf(`
		<h2>Xin chào %s,</h2>
		<p>Đơn nghỉ phép (%s) từ %s đến %s của bạn đã được xử lý.</p>
		<p>Trạng thái: <strong>%s</strong></p>
	`, employee.Name, leave.LeaveType,
		leave.StartDate.Format("2006-01-02"), leave.EndDate.Format("2006-01-02"),
		leave.Status)

	return lc.Mailer.Send(employee.Email, subject, body, "")
}

// GetLeaveByEmployee liệt kê đơn nghỉ phép của một nhân viên kèm số ngày nghỉ
func (lc *LeaveController) GetLeaveByEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var leaves []models.EmployeeLeave
	if err := lc.DB.Where("employee_id = ?", employeeID).
		Order("applied_at desc").
		Find(&leaves).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.LeaveWithDays, 0, len(leaves))
	for _, l := range leaves {
		result = append(result, dto.LeaveWithDays{
			EmployeeLeave: l,
			Days:          utils.DaysBetween(l.StartDate, l.EndDate),
		})
	}

	response.Success(c, result)
}
