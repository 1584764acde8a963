package services

import (
	"errors"
	"fmt"
	"time"

	"propman/config"
	"propman/constants"
	"propman/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId string `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByUsername(username string) (models.User, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với username %s", username)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

// Sinh mã thành viên dạng M-00001 theo số lượng hiện có
func nextMemberCode(db *gorm.DB) string {
	var count int64
	db.Model(&models.User{}).Count(&count)
	return fmt.Sprintf("M-%05d", count+1)
}

func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.Username == "" {
		return models.User{}, errors.New("không được để trống email, password, username")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	existingUsername, err := GetUserByUsername(input.Username)
	if err == nil {
		return models.User{}, fmt.Errorf("username %s đã được sử dụng", existingUsername.Username)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	role := input.Role
	if role == "" {
		role = constants.RoleTenant
	}

	// Admin được duyệt ngay, các role khác chờ duyệt
	approval := constants.ApprovalPending
	if role == constants.RoleAdmin {
		approval = constants.ApprovalApproved
	}

	user := models.User{
		ID:             uuid.NewString(),
		MemberCode:     nextMemberCode(config.DB),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Password:       hashedPassword,
		PhoneNumber:    input.PhoneNumber,
		Username:       input.Username,
		Role:           role,
		ApprovalStatus: approval,
		IDCardNumber:   input.IDCardNumber,
		IDCardPhoto:    input.IDCardPhoto,
		DeedPhoto:      input.DeedPhoto,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func ChangePassword(user models.User, newPassword string) error {
	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("không thể băm mật khẩu: %v", err)
	}

	user.Password = hashedPassword

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("không thể cập nhật mật khẩu mới: %v", err)
	}

	return nil
}
