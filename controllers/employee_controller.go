package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"clinichr/config"
	"clinichr/constants"
	"clinichr/dto"
	errs "clinichr/errors"
	"clinichr/models"
	"clinichr/response"
	"clinichr/services"
	"clinichr/utils"
	"clinichr/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewEmployeeController(db *gorm.DB, redisCli *redis.Client) *EmployeeController {
	return &EmployeeController{DB: db, Redis: redisCli}
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// matchesFuzzy so khớp không phân biệt dấu: chứa chuỗi hoặc đủ tương đồng
func matchesFuzzy(query, value string) bool {
	q := normalizeInput(query)
	val := normalizeInput(value)
	if strings.Contains(val, q) {
		return true
	}
	return calculateSimilarity(q, val) > 0.7
}

// Tạo danh sách chức vụ duy nhất cho closestmatch
func preparePositionList(employees []models.Employee) []string {
	uniqueValues := make(map[string]bool)
	for _, emp := range employees {
		if emp.Position != "" {
			uniqueValues[normalizeInput(emp.Position)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// matchPosition ánh xạ filter chức vụ người dùng nhập sang chức vụ gần nhất
func matchPosition(query string, employees []models.Employee) string {
	positions := preparePositionList(employees)
	if len(positions) == 0 {
		return normalizeInput(query)
	}
	cm := closestmatch.New(positions, []int{2, 3})
	best := cm.Closest(normalizeInput(query))
	if best == "" {
		return normalizeInput(query)
	}
	return best
}

func employeeCacheKey(centerID uint) string {
	return fmt.Sprintf("employees:center:%d", centerID)
}

func (ec *EmployeeController) invalidateEmployeeCache(centerID uint) {
	if ec.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, ec.Redis, employeeCacheKey(centerID)); err != nil {
		utils.LogError("Lỗi xóa cache nhân viên của trung tâm %d: %v", centerID, err)
	}
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCreateEmployee(&req); err != nil {
		appErr := errs.GetAppError(err)
		response.ValidationError(c, appErr.Message)
		return
	}

	var existing models.Employee
	if err := ec.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		response.BadRequest(c, "Nhân viên với email này đã tồn tại")
		return
	}

	hashedPassword, err := services.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	hireDate := time.Now()
	if req.HireDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.HireDate); err == nil {
			hireDate = parsed
		}
	}

	status := req.Status
	if status == "" {
		status = constants.EmployeeStatusActive
	}

	employee := models.Employee{
		CenterID:     req.CenterID,
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashedPassword,
		Phone:        req.Phone,
		Position:     req.Position,
		Department:   req.Department,
		Salary:       req.Salary,
		HireDate:     hireDate,
		ProfileImage: req.ProfileImage,
		Status:       status,
	}

	var user models.User
	err = ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}
		user = models.User{
			Name:        req.Name,
			Email:       req.Email,
			Password:    hashedPassword,
			PhoneNumber: req.Phone,
			Avatar:      req.ProfileImage,
			Role:        constants.RoleEmployee,
			EmployeeID:  &employee.ID,
			CenterIDs:   []int64{int64(req.CenterID)},
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	ec.invalidateEmployeeCache(req.CenterID)

	response.Created(c, gin.H{
		"employee": employee,
		"user":     user,
	})
}

func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := ec.DB.Preload("Center").Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, employees)
}

func (ec *EmployeeController) GetEmployeesByCenter(c *gin.Context) {
	centerIDsVal, exists := c.Get("centerIDs")
	centerIDs, _ := centerIDsVal.([]int64)
	if !exists || len(centerIDs) == 0 {
		response.Forbidden(c)
		return
	}
	centerID := uint(centerIDs[0])

	name := c.Query("name")
	position := c.Query("position")

	var employees []models.Employee

	// Không filter thì thử cache trước
	if name == "" && position == "" && ec.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, ec.Redis, employeeCacheKey(centerID), &employees); err == nil && len(employees) > 0 {
			response.Success(c, employees)
			return
		}
	}

	if err := ec.DB.Preload("Center").Where("center_id = ?", centerID).Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	if name == "" && position == "" {
		if ec.Redis != nil {
			if err := services.SetToRedis(config.Ctx, ec.Redis, employeeCacheKey(centerID), employees, 10*time.Minute); err != nil {
				utils.LogError("Lỗi lưu cache nhân viên: %v", err)
			}
		}
		response.Success(c, employees)
		return
	}

	filtered := make([]models.Employee, 0)
	var positionTarget string
	if position != "" {
		positionTarget = matchPosition(position, employees)
	}
	for _, emp := range employees {
		if name != "" && !matchesFuzzy(name, emp.Name) {
			continue
		}
		if position != "" {
			normalized := normalizeInput(emp.Position)
			if normalized != positionTarget && !matchesFuzzy(position, emp.Position) {
				continue
			}
		}
		filtered = append(filtered, emp)
	}

	response.Success(c, filtered)
}

func toEmployeeResponse(emp models.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           emp.ID,
		CenterID:     emp.CenterID,
		CenterName:   emp.Center.Name,
		Name:         emp.Name,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Position:     emp.Position,
		Department:   emp.Department,
		Salary:       emp.Salary,
		HireDate:     emp.HireDate,
		ProfileImage: emp.ProfileImage,
		Status:       emp.Status,
	}
}

func (ec *EmployeeController) GetEmployeeByID(c *gin.Context) {
	id := c.Param("id")

	var employee models.Employee
	if err := ec.DB.Preload("Center").First(&employee, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toEmployeeResponse(employee))
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Trường bỏ trống giữ nguyên giá trị cũ
	if req.CenterID != 0 {
		employee.CenterID = req.CenterID
	}
	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Email != "" {
		employee.Email = req.Email
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.Position != "" {
		employee.Position = req.Position
	}
	if req.Department != "" {
		employee.Department = req.Department
	}
	if req.Salary != 0 {
		employee.Salary = req.Salary
	}
	if req.HireDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.HireDate); err == nil {
			employee.HireDate = parsed
		}
	}
	if req.Status != "" {
		employee.Status = req.Status
	}
	if req.ProfileImage != "" {
		employee.ProfileImage = req.ProfileImage
	}

	if err := ec.DB.Save(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	ec.invalidateEmployeeCache(employee.CenterID)

	response.Success(c, employee)
}

func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")

	var employee models.Employee
	if err := ec.DB.First(&employee, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Xóa nhân viên kèm tài khoản đăng nhập liên kết
	err := ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Employee{}, employee.ID).Error; err != nil {
			return err
		}
		return tx.Where("employee_id = ?", employee.ID).Delete(&models.User{}).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	ec.invalidateEmployeeCache(employee.CenterID)

	response.Success(c, nil)
}

func (ec *EmployeeController) EmployeeDashboard(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var employee models.Employee
	if err := ec.DB.Preload("Center").First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var salaryHistory []models.Salary
	if err := ec.DB.Where("employee_id = ?", employee.ID).
		Order("year desc, month desc").
		Find(&salaryHistory).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"employee":      employee,
		"salaryHistory": salaryHistory,
	})
}
