package auth

import (
	"errors"
	"strconv"
	"time"

	"aircargo-admin-api/config"
	"aircargo-admin-api/internal/logs"
	"aircargo-admin-api/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

const (
	accessTokenTTL  = 30 * 24 * time.Hour
	refreshTokenTTL = 90 * 24 * time.Hour
)

type LoginResult struct {
	AccessToken    string   `json:"access_token"`
	RefreshToken   string   `json:"refresh_token"`
	TokenType      string   `json:"token_type"`
	UserID         uint64   `json:"user_id,string"`
	Name           string   `json:"name"`
	Permissions    []string `json:"permissions"`
	HasInitialized bool     `json:"has_initialized"`
}

type AuthService struct {
	DB     *gorm.DB
	Logger *logs.LogService
}

func (as *AuthService) Login(phone, password string) (*LoginResult, error) {
	var user User
	err := as.DB.Where("phone = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := util.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserDisabled
	}

	accessToken, err := as.generateToken(&user, "access", accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := as.generateToken(&user, "refresh", refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	hasInitialized, err := as.hasBusinessConfig(user.ID)
	if err != nil {
		return nil, err
	}

	if as.Logger != nil {
		userID := user.ID
		_ = as.Logger.Log(logs.SystemLog{
			Level:   "info",
			Service: "auth",
			UserID:  &userID,
			Action:  "login",
			Message: "user logged in",
		}, map[string]string{"phone": user.Phone})
	}

	return &LoginResult{
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		TokenType:      "bearer",
		UserID:         user.ID,
		Name:           user.Name,
		Permissions:    []string(user.Permissions),
		HasInitialized: hasInitialized,
	}, nil
}

// RefreshAccessToken exchanges a valid refresh token for a fresh access token.
// Permissions are re-read from the database so revocations take effect.
func (as *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	cfg := config.LoadConfig()

	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["token_type"] != "refresh" {
		return "", ErrInvalidToken
	}
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}

	var user User
	err = as.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", ErrUserDisabled
	}

	return as.generateToken(&user, "access", accessTokenTTL)
}

func (as *AuthService) GetUserInfo(userID uint64) (*User, error) {
	var user User
	err := as.DB.Preload("Departments").First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (as *AuthService) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	var user User
	err := as.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if err := util.VerifyPassword(user.PasswordHash, oldPassword); err != nil {
		return ErrWrongPassword
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return as.DB.Model(&user).Update("password_hash", hash).Error
}

func (as *AuthService) generateToken(user *User, tokenType string, ttl time.Duration) (string, error) {
	cfg := config.LoadConfig()

	claims := jwt.MapClaims{
		"user_id":     strconv.FormatUint(user.ID, 10),
		"phone":       user.Phone,
		"permissions": []string(user.Permissions),
		"token_type":  tokenType,
		"exp":         time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func (as *AuthService) hasBusinessConfig(userID uint64) (bool, error) {
	var count int64
	err := as.DB.Table("business_configs").Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
