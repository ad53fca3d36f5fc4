package controllers

import (
	"errors"
	"time"

	"resto-app/models"
	"resto-app/services"
	"resto-app/types"
	"resto-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PesananController struct {
	DB *gorm.DB
}

func NewPesananController(DB *gorm.DB) *PesananController {
	return &PesananController{DB: DB}
}

func (c *PesananController) GetAllPesanan(ctx *fiber.Ctx) error {
	var pesanan []models.Pesanan
	if err := c.DB.Preload("Reservasi").Order("created_at desc").Find(&pesanan).Error; err != nil {
		return utils.Response(ctx, nil, "Error fetching pesanan", fiber.StatusInternalServerError)
	}

	data := make([]fiber.Map, 0, len(pesanan))
	for _, item := range pesanan {
		row := fiber.Map{
			"id":           item.ID,
			"no_meja":      item.NoMeja,
			"createdAt":    item.CreatedAt,
			"total_harga":  item.TotalHarga.InexactFloat64(),
			"status":       item.Status,
			"id_reservasi": item.IDReservasi,
		}
		if item.Reservasi != nil {
			row["atas_nama"] = item.Reservasi.AtasNama
			row["banyak_orang"] = item.Reservasi.BanyakOrang
		}
		data = append(data, row)
	}

	return utils.Response(ctx, data, "Pesanan fetched successfully", fiber.StatusOK)
}

func (c *PesananController) CreatePesanan(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	var input struct {
		IDReservasi *uint                       `json:"idReservasi"`
		NoMeja      *int                        `json:"no_meja"`
		Status      string                      `json:"status"`
		TotalHarga  decimal.Decimal             `json:"total_harga"`
		Items       []services.ItemPesananInput `json:"items"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	pesanan, err := services.CreatePesanan(c.DB, userID, services.PesananInput{
		NoMeja:      input.NoMeja,
		IDReservasi: input.IDReservasi,
		Status:      input.Status,
		TotalHarga:  input.TotalHarga,
		Items:       input.Items,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMenuNotFound):
			return utils.Response(ctx, nil, "menu tidak ditemukan", fiber.StatusBadRequest)
		case errors.Is(err, services.ErrStatusPesanan):
			return utils.Response(ctx, nil, "status pesanan tidak valid", fiber.StatusBadRequest)
		}
		return utils.Response(ctx, nil, "Pesanan Post failed", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, pesanan, "Pesanan created successfully", fiber.StatusOK)
}

// GetPesananByID mengembalikan pesanan, item-nya, dan detail menu terkait.
func (c *PesananController) GetPesananByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid order id", fiber.StatusBadRequest)
	}

	var pesanan models.Pesanan
	if err := c.DB.Preload("Reservasi").First(&pesanan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "Failed get order", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Failed get order", fiber.StatusInternalServerError)
	}

	var items []models.ItemPesanan
	if err := c.DB.Where("id_pesanan = ?", pesanan.ID).Find(&items).Error; err != nil {
		return utils.Response(ctx, nil, "Failed get order", fiber.StatusInternalServerError)
	}

	menuIDs := make([]types.SnowflakeID, 0, len(items))
	for _, item := range items {
		menuIDs = append(menuIDs, item.IDMenu)
	}

	var menuDetails []models.Menu
	if len(menuIDs) > 0 {
		if err := c.DB.Where("id IN ?", menuIDs).Find(&menuDetails).Error; err != nil {
			return utils.Response(ctx, nil, "Failed get order", fiber.StatusInternalServerError)
		}
	}

	order := fiber.Map{
		"id":        pesanan.ID,
		"id_user":   pesanan.IDUser,
		"createdAt": pesanan.CreatedAt,
	}
	if pesanan.Reservasi != nil {
		order["atas_nama"] = pesanan.Reservasi.AtasNama
		order["banyak_orang"] = pesanan.Reservasi.BanyakOrang
	}

	return utils.Response(ctx, fiber.Map{
		"order":       order,
		"items":       items,
		"menuDetails": menuDetails,
	}, "Success Get pesanan", fiber.StatusOK)
}

func (c *PesananController) UpdateStatusPesanan(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid order id", fiber.StatusBadRequest)
	}

	var input struct {
		Status string `json:"status"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	pesanan, err := services.UpdateStatusPesanan(c.DB, types.SnowflakeID(id), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPesananNotFound):
			return utils.Response(ctx, nil, "Failed to update order", fiber.StatusNotFound)
		case errors.Is(err, services.ErrStatusPesanan):
			return utils.Response(ctx, nil, "status pesanan tidak valid", fiber.StatusBadRequest)
		}
		return utils.Response(ctx, nil, "Failed to update order", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, pesanan, "Successfully updated pesanan", fiber.StatusOK)
}

func (c *PesananController) GetOngoingPesanan(ctx *fiber.Ctx) error {
	var pesanan []models.Pesanan
	if err := c.DB.Where("status = ?", models.PesananOngoing).
		Order("created_at desc").
		Find(&pesanan).Error; err != nil {
		return utils.Response(ctx, nil, "Failed to fetch ongoing orders", fiber.StatusInternalServerError)
	}

	data := make([]fiber.Map, 0, len(pesanan))
	for _, item := range pesanan {
		data = append(data, fiber.Map{
			"id":           item.ID,
			"id_user":      item.IDUser,
			"no_meja":      item.NoMeja,
			"createdAt":    item.CreatedAt,
			"updateAt":     item.UpdateAt,
			"total_harga":  item.TotalHarga.InexactFloat64(),
			"status":       item.Status,
			"id_reservasi": item.IDReservasi,
		})
	}

	return utils.Response(ctx, data, "Ongoing orders fetched successfully", fiber.StatusOK)
}

// GetLastPesanan mengembalikan id pesanan terakhir saja.
func (c *PesananController) GetLastPesanan(ctx *fiber.Ctx) error {
	var pesanan []models.Pesanan
	if err := c.DB.Select("id").Order("id desc").Limit(1).Find(&pesanan).Error; err != nil {
		return utils.Response(ctx, nil, "Failed to fetch last id", fiber.StatusInternalServerError)
	}

	data := make([]fiber.Map, 0, len(pesanan))
	for _, item := range pesanan {
		data = append(data, fiber.Map{"id": item.ID})
	}

	return utils.Response(ctx, data, "Pesanan fetched successfully", fiber.StatusOK)
}

// GetProfit merekap profit pesanan selesai dalam rentang tanggal.
func (c *PesananController) GetProfit(ctx *fiber.Ctx) error {
	var input struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	start, err := parseTanggal(input.Start)
	if err != nil {
		return utils.Response(ctx, nil, "invalid start date", fiber.StatusBadRequest)
	}

	end, err := parseTanggal(input.End)
	if err != nil {
		return utils.Response(ctx, nil, "invalid end date", fiber.StatusBadRequest)
	}

	// Rentang tanggal-saja dihitung sampai akhir hari
	if len(input.End) == len("2006-01-02") {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	report, err := services.HitungProfit(c.DB, start, end)
	if err != nil {
		return utils.Response(ctx, nil, "error fetching profit", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, report, "profit fetched successfully", fiber.StatusOK)
}
