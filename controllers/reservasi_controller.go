package controllers

import (
	"errors"
	"time"

	"resto-app/models"
	"resto-app/services"
	"resto-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReservasiController struct {
	DB *gorm.DB
}

func NewReservasiController(DB *gorm.DB) *ReservasiController {
	return &ReservasiController{DB: DB}
}

type reservasiInput struct {
	AtasNama    string `json:"atasNama" validate:"required"`
	JumlahOrang int    `json:"jumlahOrang" validate:"required,min=1"`
	NomorHp     string `json:"nomorHp"`
	NoMeja      *int   `json:"noMeja"`
	Tanggal     string `json:"tanggal"`
}

func (in reservasiInput) toService() (services.ReservasiInput, error) {
	out := services.ReservasiInput{
		AtasNama:    in.AtasNama,
		BanyakOrang: in.JumlahOrang,
		NoTelp:      in.NomorHp,
		NoMeja:      in.NoMeja,
	}

	if in.Tanggal != "" {
		tanggal, err := parseTanggal(in.Tanggal)
		if err != nil {
			return out, err
		}
		out.Tanggal = &tanggal
	}

	return out, nil
}

func parseTanggal(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func reservasiMap(item *models.Reservasi) fiber.Map {
	return fiber.Map{
		"id":           item.ID,
		"id_user":      item.IDUser,
		"no_meja":      item.NoMeja,
		"tanggal":      item.Tanggal,
		"atas_nama":    item.AtasNama,
		"banyak_orang": item.BanyakOrang,
		"no_telp":      item.NoTelp,
		"status":       item.Status,
	}
}

func (c *ReservasiController) GetAllReservasi(ctx *fiber.Ctx) error {
	var reservasi []models.Reservasi
	if err := c.DB.Preload("User").Order("id desc").Find(&reservasi).Error; err != nil {
		return utils.Response(ctx, nil, "error fetching reservasi", fiber.StatusInternalServerError)
	}

	data := make([]fiber.Map, 0, len(reservasi))
	for i := range reservasi {
		item := reservasiMap(&reservasi[i])
		item["nama_pelayan"] = reservasi[i].User.Nama
		data = append(data, item)
	}

	return utils.Response(ctx, data, "Reservasi fetched successfully", fiber.StatusOK)
}

func (c *ReservasiController) GetReservasiByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid reservation id", fiber.StatusBadRequest)
	}

	var reservasi models.Reservasi
	if err := c.DB.First(&reservasi, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Response(ctx, nil, "Reservasi fetched successfully", fiber.StatusOK)
		}
		return utils.Response(ctx, nil, "error fetching reservasi", fiber.StatusInternalServerError)
	}

	return utils.Response(ctx, reservasiMap(&reservasi), "Reservasi fetched successfully", fiber.StatusOK)
}

func (c *ReservasiController) CreateReservasi(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	var input reservasiInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	in, err := input.toService()
	if err != nil {
		return utils.Response(ctx, nil, "invalid tanggal", fiber.StatusBadRequest)
	}

	reservasi, err := services.CreateReservasi(c.DB, userID, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMejaNotFound):
			return utils.Response(ctx, nil, "Table not found", fiber.StatusNotFound)
		case errors.Is(err, services.ErrKapasitasMeja):
			return utils.Response(ctx, nil, "Jumlah orang melebihi kapasitas meja", fiber.StatusBadRequest)
		}
		return utils.Response(ctx, nil, "Reservasi insert failed", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, reservasiMap(reservasi), "Reservasi insert successfully", fiber.StatusCreated)
}

func (c *ReservasiController) UpdateReservasi(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid reservation id", fiber.StatusBadRequest)
	}

	var input reservasiInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.Response(ctx, nil, "invalid payload", fiber.StatusBadRequest)
	}

	in, err := input.toService()
	if err != nil {
		return utils.Response(ctx, nil, "invalid tanggal", fiber.StatusBadRequest)
	}

	reservasi, err := services.UpdateReservasi(c.DB, uint(id), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoMejaKosong):
			return utils.Response(ctx, nil, "Silahkan Isi Dahulu No Meja", fiber.StatusBadRequest)
		case errors.Is(err, services.ErrMejaNotFound):
			return utils.Response(ctx, nil, "Table not found", fiber.StatusNotFound)
		case errors.Is(err, services.ErrKapasitasMeja):
			return utils.Response(ctx, nil, "Jumlah orang melebihi kapasitas meja", fiber.StatusBadRequest)
		case errors.Is(err, services.ErrReservasiNotFound):
			return utils.Response(ctx, nil, "Reservasi not found", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Reservasi update failed", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, reservasiMap(reservasi), "Update Reservasi successfully", fiber.StatusCreated)
}

// DeleteReservasi membatalkan reservasi (status cancel), tidak menghapus baris.
func (c *ReservasiController) DeleteReservasi(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Response(ctx, nil, "Invalid reservation id", fiber.StatusBadRequest)
	}

	reservasi, err := services.CancelReservasi(c.DB, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReservasiNotFound) {
			return utils.Response(ctx, nil, "Reservasi not found", fiber.StatusNotFound)
		}
		return utils.Response(ctx, nil, "Failed delete reservasi", fiber.StatusBadRequest)
	}

	return utils.Response(ctx, reservasiMap(reservasi), "Success Delete reservasi", fiber.StatusOK)
}
