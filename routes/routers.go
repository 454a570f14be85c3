package routes

import (
	"context"
	"fmt"
	"net/http"

	"clinichr/controllers"
	middlewares "clinichr/middleware"
	"clinichr/services"
	"clinichr/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody, salaryService *services.SalaryService, mailer services.Mailer, notifier notification.Service) {

	employeeController := controllers.NewEmployeeController(db, redisCli)
	salaryController := controllers.NewSalaryController(db, redisCli, salaryService)
	leaveController := controllers.NewLeaveController(db, mailer, notifier)
	authController := controllers.NewAuthController(db)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)
	v1.POST("/auth/google", authController.AuthGoogle)

	v1.POST("/employees", middlewares.AuthMiddleware(1, 2), employeeController.CreateEmployee)
	v1.GET("/employees", middlewares.AuthMiddleware(1), employeeController.GetAllEmployees)
	v1.GET("/employeesByCenter", middlewares.AuthMiddleware(2), employeeController.GetEmployeesByCenter)
	v1.GET("/employees/:id", middlewares.AuthMiddleware(1, 2), employeeController.GetEmployeeByID)
	v1.PUT("/employeeUpdate/:id", middlewares.AuthMiddleware(1, 2), employeeController.UpdateEmployee)
	v1.DELETE("/employees/:id", middlewares.AuthMiddleware(1, 2), employeeController.DeleteEmployee)
	v1.GET("/employeeDashboard/:employeeId", middlewares.AuthMiddleware(1, 2, 3), employeeController.EmployeeDashboard)

	v1.POST("/giveSalary", middlewares.AuthMiddleware(1, 2), salaryController.GiveSalary)
	v1.GET("/checkDue", middlewares.AuthMiddleware(1, 2), salaryController.DueSalary)
	v1.GET("/salarySheet", middlewares.AuthMiddleware(1, 2), salaryController.GetSalarySheet)

	v1.POST("/leaves", middlewares.AuthMiddleware(1, 2, 3), leaveController.AddLeave)
	v1.GET("/leaves/:centerId", middlewares.AuthMiddleware(1, 2), leaveController.AllLeave)
	v1.PATCH("/leaveStatus/:id", middlewares.AuthMiddleware(1, 2), leaveController.UpdateLeaveStatus)
	v1.GET("/employeeLeaves/:employeeId", middlewares.AuthMiddleware(1, 2, 3), leaveController.GetLeaveByEmployee)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})
}
