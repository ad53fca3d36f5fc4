package utils

import "github.com/gofiber/fiber/v2"

// Response mengirim envelope JSON standar {data, message, status}.
// Error internal tidak pernah ditaruh di data, cukup message-nya saja.
func Response(ctx *fiber.Ctx, data interface{}, message string, status int) error {
	return ctx.Status(status).JSON(fiber.Map{
		"data":    data,
		"message": message,
		"status":  status,
	})
}
