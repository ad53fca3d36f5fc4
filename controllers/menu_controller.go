package controllers

import (
	"errors"

	"resto-app/models"
	"resto-app/storage"
	"resto-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(DB *gorm.DB) *MenuController {
	return &MenuController{DB: DB}
}

func (c *MenuController) GetAllMenu(ctx *fiber.Ctx) error {
	var menu []models.Menu
	if err := c.DB.Order("id asc").Find(&menu).Error; err != nil {
		return utils.Response(ctx, nil, "error fetching menu", fiber.StatusInternalServerError)
	}

	return utils.Response(ctx, menu, "Menu fetched successfully", fiber.StatusOK)
}

func (c *MenuController) GetMenuByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid menu id", fiber.StatusBadRequest)
	}

	var menu models.Menu
	if err := c.DB.First(&menu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "Failed get menu", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Failed get menu", fiber.StatusInternalServerError)
	}

	return utils.Response(ctx, menu, "Success Get Menu", fiber.StatusOK)
}

func (c *MenuController) CreateMenu(ctx *fiber.Ctx) error {
	foto, err := ctx.FormFile("foto")
	if err != nil || foto.Size <= 0 {
		return utils.Response(ctx, nil, "Image is required", fiber.StatusBadRequest)
	}

	nama := ctx.FormValue("nama")
	kategori := ctx.FormValue("kategori")

	harga, err := decimal.NewFromString(ctx.FormValue("harga", "0"))
	if err != nil {
		return utils.Response(ctx, nil, "Invalid harga", fiber.StatusBadRequest)
	}

	uploaded, err := storage.Default().Upload(foto, nama)
	if err != nil {
		return utils.Response(ctx, nil, "Menu Post failed", fiber.StatusBadRequest)
	}

	menu := models.Menu{
		Nama:     nama,
		Harga:    harga,
		Kategori: kategori,
		Tersedia: true,
		Foto:     uploaded.PublicURL,
		FotoKey:  uploaded.Key,
	}

	if err := c.DB.Create(&menu).Error; err != nil {
		// Jangan tinggalkan file yatim kalau insert gagal
		storage.Default().Delete(uploaded.Key)
		return utils.Response(ctx, nil, "Menu Post failed", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, menu, "Menu Post successfully", fiber.StatusCreated)
}

func (c *MenuController) UpdateMenu(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid menu id", fiber.StatusBadRequest)
	}

	var currentMenu models.Menu
	if err := c.DB.First(&currentMenu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "Failed update menu", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Failed update menu", fiber.StatusInternalServerError)
	}

	nama := ctx.FormValue("nama", currentMenu.Nama)
	kategori := ctx.FormValue("kategori", currentMenu.Kategori)

	harga := currentMenu.Harga
	if hargaStr := ctx.FormValue("harga"); hargaStr != "" {
		harga, err = decimal.NewFromString(hargaStr)
		if err != nil {
			return utils.Response(ctx, nil, "Invalid harga", fiber.StatusBadRequest)
		}
	}

	var uploaded *storage.StoredFile
	if foto, err := ctx.FormFile("foto"); err == nil && foto.Size > 0 {
		uploaded, err = storage.Default().Upload(foto, nama)
		if err != nil {
			return utils.Response(ctx, nil, "Failed update menu", fiber.StatusBadRequest)
		}
	}

	oldKey := currentMenu.FotoKey
	if oldKey == "" {
		oldKey = currentMenu.Foto
	}

	currentMenu.Nama = nama
	currentMenu.Harga = harga
	currentMenu.Kategori = kategori
	if uploaded != nil {
		currentMenu.Foto = uploaded.PublicURL
		currentMenu.FotoKey = uploaded.Key
	}

	if err := c.DB.Save(&currentMenu).Error; err != nil {
		if uploaded != nil {
			storage.Default().Delete(uploaded.Key)
		}
		return utils.Response(ctx, nil, "Failed update menu", fiber.StatusBadRequest)
	}

	// Foto lama baru dibuang setelah update berhasil
	if uploaded != nil && oldKey != "" {
		storage.Default().Delete(oldKey)
	}

	return utils.Response(ctx, currentMenu, "Success Update Menu", fiber.StatusOK)
}

func (c *MenuController) DeleteMenu(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid menu id", fiber.StatusBadRequest)
	}

	var menu models.Menu
	if err := c.DB.First(&menu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "Failed get menu", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Failed delete menu", fiber.StatusInternalServerError)
	}

	if err := c.DB.Delete(&models.Menu{}, "id = ?", id).Error; err != nil {
		return utils.Response(ctx, nil, "Failed delete menu", fiber.StatusBadRequest)
	}

	if menu.FotoKey != "" || menu.Foto != "" {
		key := menu.FotoKey
		if key == "" {
			key = menu.Foto
		}
		storage.Default().Delete(key)
	}

	return utils.Response(ctx, menu, "Success Delete Menu", fiber.StatusOK)
}

// ChangeStatus toggle flag tersedia.
func (c *MenuController) ChangeStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid menu id", fiber.StatusBadRequest)
	}

	var menu models.Menu
	if err := c.DB.First(&menu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "Failed get menu", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Failed update menu", fiber.StatusInternalServerError)
	}

	menu.Tersedia = !menu.Tersedia
	if err := c.DB.Model(&models.Menu{}).
		Where("id = ?", id).
		Update("tersedia", menu.Tersedia).Error; err != nil {
		return utils.Response(ctx, nil, "Failed update menu", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, menu, "Success Update Menu", fiber.StatusOK)
}
