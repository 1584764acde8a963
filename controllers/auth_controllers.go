package controllers

import (
	"encoding/json"
	"fmt"
	"strings"

	"propman/config"
	"propman/constants"
	"propman/dto"
	"propman/models"
	"propman/response"
	"propman/services"
	"propman/validator"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Username = strings.ToLower(input.Username)

	var user models.User
	if err := config.DB.Where("username = ? OR email = ?", input.Username, input.Username).First(&user).Error; err != nil {
		response.BadRequest(c, "Username hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Username hoặc mật khẩu không hợp lệ")
		return
	}

	// Tài khoản chưa duyệt thì chưa được vào hệ thống
	if user.ApprovalStatus != constants.ApprovalApproved {
		response.ForbiddenWithMessage(c, "Tài khoản đang chờ duyệt")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	loginResponse := dto.LoginResponse{
		Token: accessToken,
		ID:    user.ID,
		Name:  user.FullName(),
		Role:  user.Role,
	}

	response.Success(c, gin.H{
		"user_info":   loginResponse,
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	draft := models.User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Username:    strings.ToLower(input.Username),
		Role:        input.Role,
	}

	if err := validator.ValidateUser(&draft); err != nil {
		response.FromAppError(c, err)
		return
	}

	user, err := services.CreateUser(draft)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, user)
}

func GetUserIDFromToken(tokenString string) (string, string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("invalid token format")
	}

	// Giải mã phần payload của token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return "", "", fmt.Errorf("failed to decode token payload: %w", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return "", "", fmt.Errorf("failed to unmarshal token payload: %w", err)
	}

	// Trích xuất userID và role từ claims
	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return "", "", fmt.Errorf("userinfo not found in token claims")
	}

	userID, okID := userInfo["userid"].(string)
	if !okID || userID == "" {
		return "", "", fmt.Errorf("user ID not found in userinfo")
	}

	role, okRole := userInfo["role"].(string)
	if !okRole || role == "" {
		return "", "", fmt.Errorf("role not found in userinfo")
	}

	return userID, role, nil
}

func GetIDFromToken(tokenString string) (string, error) {
	userID, _, err := GetUserIDFromToken(tokenString)
	return userID, err
}
