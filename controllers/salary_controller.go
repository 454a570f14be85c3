package controllers

import (
	"strconv"
	"time"

	"clinichr/config"
	"clinichr/dto"
	errs "clinichr/errors"
	"clinichr/models"
	"clinichr/response"
	"clinichr/services"
	"clinichr/utils"
	"clinichr/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const salarySheetCachePrefix = "salary_sheet:"

type SalaryController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Service *services.SalaryService
}

func NewSalaryController(db *gorm.DB, redisCli *redis.Client, service *services.SalaryService) *SalaryController {
	return &SalaryController{DB: db, Redis: redisCli, Service: service}
}

// GiveSalary thanh toán lương cho nhân viên trong tháng hiện tại
func (sc *SalaryController) GiveSalary(c *gin.Context) {
	var req dto.GiveSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateSalaryPayment(&req); err != nil {
		appErr := errs.GetAppError(err)
		response.ValidationError(c, appErr.Message)
		return
	}

	result, err := sc.Service.PaySalary(c.Request.Context(), services.PaySalaryInput{
		EmployeeID:    req.EmployeeID,
		CenterID:      req.CenterID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		StripeToken:   req.StripeToken,
		Email:         req.Email,
	})
	if err != nil {
		appErr := errs.GetAppError(err)
		if appErr == nil {
			response.ServerError(c)
			return
		}
		switch appErr.Code {
		case errs.ErrCodeEmployeeNotFound:
			response.NotFound(c)
		case errs.ErrCodeAlreadyPaid, errs.ErrCodeInsufficientProfit,
			errs.ErrCodePaymentFailed, errs.ErrCodeInvalidAmount:
			response.BadRequest(c, appErr.Message)
		case errs.ErrCodeDBDuplicate:
			response.Conflict(c, appErr.Message)
		default:
			response.ServerError(c)
		}
		return
	}

	// Bảng lương đã đổi, xóa cache cũ
	if sc.Redis != nil {
		if err := services.DeleteByPrefix(config.Ctx, sc.Redis, salarySheetCachePrefix); err != nil {
			utils.LogError("Lỗi xóa cache bảng lương: %v", err)
		}
	}

	notification := gin.H{"sent": true}
	if !result.Notified {
		notification = gin.H{"sent": false, "code": result.NotifyError}
	}

	response.Success(c, gin.H{
		"salaryInfo":   result.Salary,
		"revenue":      result.Revenue,
		"notification": notification,
	})
}

// DueSalary tra cứu lương còn nợ của một nhân viên trong một kỳ
func (sc *SalaryController) DueSalary(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Query("employeeId"))
	if err != nil || employeeID <= 0 {
		response.BadRequest(c, "employeeId không hợp lệ")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(c, "month không hợp lệ")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		response.BadRequest(c, "year không hợp lệ")
		return
	}

	employee, paid, err := sc.Service.DueSalary(uint(employeeID), month, year)
	if err != nil {
		if errs.HasCode(err, errs.ErrCodeEmployeeNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, dto.DueSalaryResponse{
		EmployeeName: employee.Name,
		TotalSalary:  employee.Salary,
		PaidAmount:   paid,
		DueAmount:    employee.Salary - paid,
	})
}

// GetSalarySheet trả về bảng lương có filter và phân trang
func (sc *SalaryController) GetSalarySheet(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	centerID := c.Query("centerId")
	name := c.Query("name")
	position := c.Query("position")
	monthName := c.Query("month")

	monthIdx := 0
	if monthName != "" {
		monthIdx = utils.MonthIndex(monthName)
		if monthIdx == 0 {
			response.BadRequest(c, "Tháng không hợp lệ. Ví dụ: January, February, ...")
			return
		}
	}

	cacheKey := salarySheetCachePrefix + centerID + ":" + name + ":" + position + ":" + monthName + ":" +
		strconv.Itoa(page) + ":" + strconv.Itoa(limit)

	if sc.Redis != nil {
		var cached dto.SalarySheetCache
		if err := services.GetFromRedis(config.Ctx, sc.Redis, cacheKey, &cached); err == nil && cached.Sheet != nil {
			response.SuccessWithPagination(c, cached.Sheet, page, limit, cached.Total)
			return
		}
	}

	tx := sc.DB.Model(&models.Salary{}).Preload("Employee")
	if centerID != "" {
		tx = tx.Where("center_id = ?", centerID)
	}
	if monthIdx > 0 {
		tx = tx.Where("month = ? AND year = ?", monthIdx, time.Now().Year())
	}

	var salaries []models.Salary
	if err := tx.Order("payment_date desc").Find(&salaries).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Filter tên/chức vụ mờ ở tầng ứng dụng, giống tìm kiếm nhân viên
	filtered := make([]models.Salary, 0, len(salaries))
	for _, s := range salaries {
		if name != "" && !matchesFuzzy(name, s.Employee.Name) {
			continue
		}
		if position != "" && !matchesFuzzy(position, s.Employee.Position) {
			continue
		}
		filtered = append(filtered, s)
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]dto.SalarySheetItem, 0, end-start)
	for _, s := range filtered[start:end] {
		items = append(items, dto.SalarySheetItem{
			Name:          s.Employee.Name,
			Email:         s.Employee.Email,
			Phone:         s.Employee.Phone,
			Position:      s.Employee.Position,
			Image:         s.Employee.ProfileImage,
			PaidAmount:    s.PaidAmount,
			DueAmount:     s.DueAmount,
			PaymentDate:   s.PaymentDate,
			PaymentStatus: s.PaymentStatus,
			Month:         time.Month(s.Month).String(),
			Method:        s.PaymentMethod,
		})
	}

	if sc.Redis != nil {
		cached := dto.SalarySheetCache{Sheet: items, Total: total}
		if err := services.SetToRedis(config.Ctx, sc.Redis, cacheKey, cached, 5*time.Minute); err != nil {
			utils.LogError("Lỗi lưu cache bảng lương: %v", err)
		}
	}

	response.SuccessWithPagination(c, items, page, limit, total)
}
