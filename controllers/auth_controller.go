package controllers

import (
	"errors"
	"strings"
	"time"

	"resto-app/config"
	"resto-app/models"
	"resto-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return utils.Response(ctx, nil, "email and password are required", fiber.StatusBadRequest)
	}

	var user models.User
	if err := c.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return utils.Response(ctx, nil, "error login", fiber.StatusBadRequest)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Response(ctx, nil, "error login", fiber.StatusBadRequest)
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"name":    user.Nama,
		"exp":     time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return utils.Response(ctx, nil, "error login", fiber.StatusInternalServerError)
	}

	ctx.Cookie(config.GetTokenCookie(tokenString))

	return utils.Response(ctx, fiber.Map{
		"token":    tokenString,
		"redirect": utils.RedirectForRole(user.Role),
		"role":     user.Role,
	}, "login successful", fiber.StatusOK)
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(config.GetTokenCookie(""))
	return utils.Response(ctx, nil, "logout successful", fiber.StatusOK)
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	return createUser(c.DB, ctx)
}

func (c *AuthController) CurrentUser(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	var user models.User
	if err := c.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "error get user", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "error get user", fiber.StatusInternalServerError)
	}

	return utils.Response(ctx, fiber.Map{
		"id":        user.ID,
		"nama":      user.Nama,
		"umur":      user.Umur,
		"role":      user.Role,
		"no_telp":   user.NoTelp,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
		"email":     user.Email,
	}, "success get user", fiber.StatusOK)
}

func (c *AuthController) ResetPassword(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	if input.NewPassword == "" {
		return utils.Response(ctx, nil, "new password is required", fiber.StatusBadRequest)
	}

	var user models.User
	if err := c.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.Response(ctx, nil, "user not found", fiber.StatusNotFound)
	}

	if input.CurrentPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
			return utils.Response(ctx, nil, "current password is invalid", fiber.StatusBadRequest)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.Response(ctx, nil, "error update password", fiber.StatusInternalServerError)
	}

	if err := c.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password_hash":       string(hash),
		"must_reset_password": false,
		"updated_at":          time.Now(),
	}).Error; err != nil {
		return utils.Response(ctx, nil, "error update password", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, nil, "password updated", fiber.StatusOK)
}

// createUser dipakai register dan manajemen user (POST /users).
func createUser(db *gorm.DB, ctx *fiber.Ctx) error {
	var input struct {
		Email    string  `json:"email" validate:"required,email"`
		Password string  `json:"password"`
		Nama     string  `json:"nama" validate:"required"`
		Umur     *int    `json:"umur"`
		NoTelp   *string `json:"no_telp"`
		NoHp     *string `json:"no_hp"`
		Role     string  `json:"role" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	if !models.IsValidRole(input.Role) {
		return utils.Response(ctx, nil, "invalid role", fiber.StatusBadRequest)
	}

	password := input.Password
	if password == "" {
		password = "password123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Response(ctx, nil, "error create new user", fiber.StatusInternalServerError)
	}

	noTelp := input.NoTelp
	if noTelp == nil {
		noTelp = input.NoHp
	}

	user := models.User{
		Email:             strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:      string(hash),
		MustResetPassword: false,
		Nama:              input.Nama,
		Umur:              input.Umur,
		NoTelp:            noTelp,
		Role:              input.Role,
	}

	if err := db.Create(&user).Error; err != nil {
		return utils.Response(ctx, nil, "error create new user", fiber.StatusBadRequest)
	}

	// Kirim kredensial awal kalau SMTP dikonfigurasi
	go utils.SendCredentialMail(user.Email, user.Nama, password)

	return utils.Response(ctx, fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"nama":  user.Nama,
		"role":  user.Role,
	}, "success create new user", fiber.StatusOK)
}
