package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"resto-app/models"
	"resto-app/services"
	"resto-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type BahanController struct {
	DB *gorm.DB
}

func NewBahanController(DB *gorm.DB) *BahanController {
	return &BahanController{DB: DB}
}

// GetAllBahan hanya mengembalikan bahan yang masih aktif.
func (c *BahanController) GetAllBahan(ctx *fiber.Ctx) error {
	var bahan []models.BahanBaku
	if err := c.DB.Where("status = ?", true).Order("id asc").Find(&bahan).Error; err != nil {
		return utils.Response(ctx, nil, "error fetching bahan baku", fiber.StatusInternalServerError)
	}

	return utils.Response(ctx, bahan, "Bahan Baku fetched successfully", fiber.StatusOK)
}

func (c *BahanController) GetBahanByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid stock id", fiber.StatusBadRequest)
	}

	var bahan models.BahanBaku
	if err := c.DB.First(&bahan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "bahan baku tidak ditemukan", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "error fetching bahan baku", fiber.StatusInternalServerError)
	}

	return utils.Response(ctx, bahan, "Success Get bahan baku", fiber.StatusOK)
}

func (c *BahanController) CreateBahan(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	var input struct {
		Nama   string `json:"nama" validate:"required"`
		Jumlah int    `json:"jumlah" validate:"min=0"`
		Satuan string `json:"satuan" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	bahan, err := services.CreateBahan(c.DB, userID, input.Nama, input.Jumlah, input.Satuan)
	if err != nil {
		return utils.Response(ctx, nil, "Bahan insert failed", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, bahan, "Bahan insert successfully", fiber.StatusCreated)
}

func (c *BahanController) UpdateBahan(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid stock id", fiber.StatusBadRequest)
	}

	var input struct {
		Nama   string `json:"nama" validate:"required"`
		Jumlah int    `json:"jumlah" validate:"min=0"`
		Satuan string `json:"satuan" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	bahan, err := services.UpdateBahan(c.DB, userID, uint(id), input.Nama, input.Jumlah, input.Satuan)
	if err != nil {
		if errors.Is(err, services.ErrBahanNotFound) {
			return utils.Response(ctx, nil, "bahan baku tidak ditemukan", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Failed update bahan baku", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, bahan, "Success Update bahan baku", fiber.StatusOK)
}

func (c *BahanController) DeleteBahan(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid stock id", fiber.StatusBadRequest)
	}

	bahan, err := services.DeleteBahan(c.DB, userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBahanNotFound) {
			return utils.Response(ctx, nil, "bahan baku tidak ditemukan", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Failed delete bahan baku", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, bahan, "Success Delete bahan baku", fiber.StatusOK)
}

// GetRiwayat mengembalikan riwayat pengelolaan bahan, terbaru dulu.
func (c *BahanController) GetRiwayat(ctx *fiber.Ctx) error {
	riwayat, err := c.fetchRiwayat()
	if err != nil {
		return utils.Response(ctx, nil, "error fetching riwayat", fiber.StatusInternalServerError)
	}

	data := make([]fiber.Map, 0, len(riwayat))
	for _, item := range riwayat {
		data = append(data, fiber.Map{
			"nama_user":  item.User.Nama,
			"jumlah":     item.Jumlah,
			"createdAt":  item.CreatedAt,
			"proses":     item.Proses,
			"nama_bahan": item.Stock.Nama,
		})
	}

	return utils.Response(ctx, data, "Bahan Baku fetched successfully", fiber.StatusOK)
}

// ExportRiwayat generate file Excel riwayat pengelolaan bahan.
func (c *BahanController) ExportRiwayat(ctx *fiber.Ctx) error {
	riwayat, err := c.fetchRiwayat()
	if err != nil {
		return utils.Response(ctx, nil, "error fetching riwayat", fiber.StatusInternalServerError)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Tanggal")
	f.SetCellValue(sheet, "B1", "User")
	f.SetCellValue(sheet, "C1", "Bahan")
	f.SetCellValue(sheet, "D1", "Jumlah")
	f.SetCellValue(sheet, "E1", "Proses")

	for i, item := range riwayat {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), item.CreatedAt.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), item.User.Nama)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), item.Stock.Nama)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), item.Jumlah)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), item.Proses)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="riwayat-bahan.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Gagal generate Excel")
	}

	return nil
}

func (c *BahanController) fetchRiwayat() ([]models.MengelolaBahan, error) {
	var riwayat []models.MengelolaBahan
	err := c.DB.Preload("User").Preload("Stock").
		Order("created_at desc").
		Find(&riwayat).Error
	return riwayat, err
}
