package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"esports-platform/middleware"
	"esports-platform/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tokenTTL is the fixed lifetime of issued bearer tokens.
const tokenTTL = 30 * 24 * time.Hour

type AuthService struct {
	DB     *gorm.DB
	Secret string
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{DB: db, Secret: secret}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account, hashes the password with bcrypt and answers
// with a signed token plus the user record. The password hash itself never
// serializes (json:"-" on the model).
func (s *AuthService) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "invalid JSON"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": validationMessage(err)})
	}

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", req.Email, req.Username).
		Count(&count).Error; err != nil {
		log.Printf("ERROR checking existing user: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "registration failed"})
	}
	if count > 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "User with that email or username already exists",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "registration failed"})
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Avatar:   models.AvatarURL(req.Username),
		Role:     "user",
	}
	if err := s.DB.Create(user).Error; err != nil {
		// Two concurrent registrations can both pass the count above; the
		// loser lands on the unique index and gets the duplicate answer,
		// not a server error.
		if isDuplicateErr(err) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"message": "User with that email or username already exists",
			})
		}
		log.Printf("ERROR creating user: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "registration failed"})
	}

	token, err := s.issueToken(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "registration failed"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Login authenticates by email and password. An unknown email and a wrong
// password answer identically so callers can't probe which accounts exist.
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "invalid JSON"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": validationMessage(err)})
	}

	var user models.User
	err := s.DB.First(&user, "email = ?", req.Email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalidCredentials(c)
	}
	if err != nil {
		log.Printf("ERROR fetching user by email: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "login failed"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return invalidCredentials(c)
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "login failed"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Me returns the account behind the verified principal. The route is behind
// RequireAuth, so a missing principal here means the token outlived the user.
func (s *AuthService) Me(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Not authenticated"})
	}

	var user models.User
	if err := s.DB.First(&user, "id = ?", principal.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "profile fetch failed"})
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
}

// isDuplicateErr recognizes a unique-constraint violation. GORM's error
// translation covers postgres and sqlite; the message check catches drivers
// that don't translate.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
