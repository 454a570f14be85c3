package controllers

import (
	"context"
	"strings"

	"clinichr/config"
	"clinichr/constants"
	"clinichr/dto"
	"clinichr/models"
	"clinichr/response"
	"clinichr/services"
	"clinichr/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) userLoginResponse(user *models.User, token string) gin.H {
	return gin.H{
		"user_info": dto.UserLoginResponse{
			UserID:     user.ID,
			UserName:   user.Name,
			UserEmail:  user.Email,
			UserPhone:  user.PhoneNumber,
			UserRole:   user.Role,
			UserAvatar: user.Avatar,
			EmployeeID: user.EmployeeID,
			CenterIDs:  []int64(user.CenterIDs),
			CreatedAt:  user.CreatedAt,
			UpdatedAt:  user.UpdatedAt,
		},
		"accessToken": token,
	}
}

// Login đăng nhập bằng email hoặc số điện thoại
func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))

	var user models.User
	if err := ac.DB.Where("email = ? OR phone_number = ?", identifier, identifier).
		First(&user).Error; err != nil {
		response.BadRequest(c, "Tài khoản hoặc mật khẩu không đúng")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Tài khoản hoặc mật khẩu không đúng")
		return
	}

	token, err := services.GenerateToken(services.UserInfo{
		UserId:    user.ID,
		Role:      user.Role,
		CenterIds: []int64(user.CenterIDs),
	}, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, ac.userLoginResponse(&user, token))
}

// Logout xóa cookie phiên đăng nhập
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie("accessToken", "", -1, "/", "", false, true)
	c.SetCookie("refreshToken", "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// AuthGoogle đăng nhập bằng Google ID token, tự tạo tài khoản nếu chưa có
func (ac *AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := idtoken.Validate(context.Background(), input.IDToken, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		utils.LogError("Xác thực Google ID token thất bại: %v", err)
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		response.BadRequest(c, "Token Google không chứa email")
		return
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	var user models.User
	if err := ac.DB.Where("email = ?", email).First(&user).Error; err != nil {
		user = models.User{
			Name:   name,
			Email:  email,
			Avatar: picture,
			Role:   constants.RoleEmployee,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	token, err := services.GenerateToken(services.UserInfo{
		UserId:    user.ID,
		Role:      user.Role,
		CenterIds: []int64(user.CenterIDs),
	}, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, ac.userLoginResponse(&user, token))
}
