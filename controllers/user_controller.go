package controllers

import (
	"errors"
	"time"

	"resto-app/models"
	"resto-app/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(DB *gorm.DB) *UserController {
	return &UserController{DB: DB}
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	return createUser(c.DB, ctx)
}

// GetAllUsers mengembalikan semua staff selain manager, terlama dulu.
func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	var users []models.User
	if err := c.DB.Where("role <> ?", models.RoleManager).
		Order("created_at asc").
		Find(&users).Error; err != nil {
		return utils.Response(ctx, nil, "error fetching users", fiber.StatusInternalServerError)
	}

	data := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		data = append(data, fiber.Map{
			"id":        user.ID,
			"createdAt": user.CreatedAt,
			"umur":      user.Umur,
			"role":      user.Role,
			"no_telp":   user.NoTelp,
			"nama":      user.Nama,
			"updatedAt": user.UpdatedAt,
			"email":     user.Email,
		})
	}

	return utils.Response(ctx, data, "users fetched successfully", fiber.StatusOK)
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return utils.Response(ctx, nil, "Invalid user id", fiber.StatusBadRequest)
	}

	var input struct {
		Nama   *string `json:"nama"`
		Umur   *int    `json:"umur"`
		NoTelp *string `json:"no_telp"`
		NoHp   *string `json:"no_hp"`
		Role   *string `json:"role"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	var user models.User
	if err := c.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "user not found", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "error update user", fiber.StatusInternalServerError)
	}

	if input.Nama != nil {
		user.Nama = *input.Nama
	}
	user.Umur = input.Umur
	if input.NoTelp != nil {
		user.NoTelp = input.NoTelp
	} else if input.NoHp != nil {
		user.NoTelp = input.NoHp
	}
	if input.Role != nil {
		if !models.IsValidRole(*input.Role) {
			return utils.Response(ctx, nil, "invalid role", fiber.StatusBadRequest)
		}
		user.Role = *input.Role
	}
	user.UpdatedAt = time.Now()

	if err := c.DB.Save(&user).Error; err != nil {
		return utils.Response(ctx, nil, "error update user", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, fiber.Map{
		"id":        user.ID,
		"createdAt": user.CreatedAt,
		"umur":      user.Umur,
		"role":      user.Role,
		"no_telp":   user.NoTelp,
		"nama":      user.Nama,
		"updatedAt": user.UpdatedAt,
		"email":     user.Email,
	}, "user updated successfully", fiber.StatusOK)
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return utils.Response(ctx, nil, "Invalid user id", fiber.StatusBadRequest)
	}

	var user models.User
	if err := c.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "user not found", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "error delete user", fiber.StatusInternalServerError)
	}

	if err := c.DB.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return utils.Response(ctx, nil, "error delete user", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, fiber.Map{
		"id":        user.ID,
		"createdAt": user.CreatedAt,
		"umur":      user.Umur,
		"role":      user.Role,
		"no_telp":   user.NoTelp,
		"nama":      user.Nama,
		"updatedAt": user.UpdatedAt,
		"email":     user.Email,
	}, "user delete successfully", fiber.StatusOK)
}

// UpdateMe update profil milik user yang sedang login.
func (c *UserController) UpdateMe(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	var input struct {
		Nama   *string `json:"nama"`
		Umur   *int    `json:"umur"`
		NoTelp *string `json:"no_telp"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	var user models.User
	if err := c.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.Response(ctx, nil, "unauthorized", fiber.StatusUnauthorized)
	}

	if input.Nama != nil {
		user.Nama = *input.Nama
	}
	if input.Umur != nil {
		user.Umur = input.Umur
	}
	if input.NoTelp != nil {
		user.NoTelp = input.NoTelp
	}
	user.UpdatedAt = time.Now()

	if err := c.DB.Save(&user).Error; err != nil {
		return utils.Response(ctx, nil, "error update profile", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, fiber.Map{
		"id":      user.ID,
		"nama":    user.Nama,
		"umur":    user.Umur,
		"role":    user.Role,
		"no_telp": user.NoTelp,
		"email":   user.Email,
	}, "profile updated", fiber.StatusOK)
}
