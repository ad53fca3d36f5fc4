package controllers

import (
	"errors"

	"resto-app/models"
	"resto-app/services"
	"resto-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MejaController struct {
	DB *gorm.DB
}

func NewMejaController(DB *gorm.DB) *MejaController {
	return &MejaController{DB: DB}
}

func (c *MejaController) GetAllMeja(ctx *fiber.Ctx) error {
	var meja []models.Meja
	if err := c.DB.Order("no_meja asc").Find(&meja).Error; err != nil {
		return utils.Response(ctx, nil, "error fetching meja", fiber.StatusInternalServerError)
	}

	return utils.Response(ctx, meja, "Meja fetched successfully", fiber.StatusOK)
}

func (c *MejaController) CreateMeja(ctx *fiber.Ctx) error {
	var input struct {
		NoMeja    int `json:"no_meja" validate:"required,min=1"`
		Kapasitas int `json:"kapasitas" validate:"required,min=1"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	meja := models.Meja{
		NoMeja:    input.NoMeja,
		Kapasitas: input.Kapasitas,
		Status:    models.MejaAvailable,
	}

	if err := c.DB.Create(&meja).Error; err != nil {
		return utils.Response(ctx, nil, "Failed create meja", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, meja, "Meja created successfully", fiber.StatusCreated)
}

// GetMejaByNo mengembalikan meja beserta reservasi ontable-nya.
func (c *MejaController) GetMejaByNo(ctx *fiber.Ctx) error {
	noMeja, err := ctx.ParamsInt("id")
	if err != nil || noMeja <= 0 {
		return utils.Response(ctx, nil, "Invalid table id", fiber.StatusBadRequest)
	}

	var meja models.Meja
	if err := c.DB.First(&meja, "no_meja = ?", noMeja).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "Table not found", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "error fetching meja", fiber.StatusInternalServerError)
	}

	var reservasi []models.Reservasi
	if err := c.DB.Preload("User").
		Where("no_meja = ? AND status = ?", meja.NoMeja, models.ReservasiOntable).
		Find(&reservasi).Error; err != nil {
		return utils.Response(ctx, nil, "error fetching reservasi", fiber.StatusInternalServerError)
	}

	var reservasiData []fiber.Map
	for _, item := range reservasi {
		reservasiData = append(reservasiData, fiber.Map{
			"id":           item.ID,
			"id_user":      item.IDUser,
			"no_meja":      item.NoMeja,
			"tanggal":      item.Tanggal,
			"atas_nama":    item.AtasNama,
			"banyak_orang": item.BanyakOrang,
			"no_telp":      item.NoTelp,
			"status":       item.Status,
			"users":        fiber.Map{"nama": item.User.Nama},
		})
	}

	return utils.Response(ctx, fiber.Map{
		"meja":      meja,
		"reservasi": reservasiData,
	}, "Data fetched successfully", fiber.StatusOK)
}

// ReleaseMeja membebaskan meja: semua reservasi ontable jadi done, meja Available.
func (c *MejaController) ReleaseMeja(ctx *fiber.Ctx) error {
	noMeja, err := ctx.ParamsInt("id")
	if err != nil || noMeja <= 0 {
		return utils.Response(ctx, nil, "Invalid table id", fiber.StatusBadRequest)
	}

	meja, reservasi, err := services.ReleaseTable(c.DB, noMeja)
	if err != nil {
		if errors.Is(err, services.ErrMejaNotFound) {
			return utils.Response(ctx, nil, "Table not found", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Failed update meja", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, fiber.Map{
		"meja":      meja,
		"reservasi": reservasi,
	}, "Table and reservations updated successfully", fiber.StatusOK)
}
