package service

import (
	"errors"
	"strings"

	"github.com/dotblog/internal/db"
	"github.com/dotblog/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 用户不存在与密码错误统一返回该错误，避免暴露用户名是否存在。
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles admin login and creation.
type AuthService struct {
	db     *gorm.DB
	tokens *token.Issuer
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// NewAuthService creates an AuthService instance.
func NewAuthService(gdb *gorm.DB, tokens *token.Issuer) *AuthService {
	return &AuthService{db: gdb, tokens: tokens}
}

// Login verifies the credentials and issues a signed token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	var admin db.Admin
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	signed, err := s.tokens.Sign(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: signed, Username: admin.Username}, nil
}

// ParseToken validates a token issued by Login.
func (s *AuthService) ParseToken(raw string) (*token.Claims, error) {
	return s.tokens.Parse(raw)
}

// CreateAdmin stores a new admin with a bcrypt hashed password.
func (s *AuthService) CreateAdmin(username, password string) (*db.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, validationError("username is required")
	}
	if password == "" {
		return nil, validationError("password is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := db.Admin{Username: username, PasswordHash: string(hashed)}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &admin, nil
}

// SeedDefaultAdmin creates the configured admin only when no admin exists.
// It reports whether an admin was created. Empty credentials disable seeding.
func (s *AuthService) SeedDefaultAdmin(username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return false, nil
	}

	var count int64
	if err := s.db.Model(&db.Admin{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if _, err := s.CreateAdmin(username, password); err != nil {
		return false, err
	}
	return true, nil
}
