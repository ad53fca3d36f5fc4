package middleware

import (
	"strings"

	"resto-app/config"
	"resto-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware memvalidasi JWT dari cookie "token" atau header Authorization,
// lalu menyimpan identitas user ke ctx.Locals.
func AuthMiddleware(ctx *fiber.Ctx) error {
	tokenString := ctx.Cookies("token")

	if tokenString == "" {
		authHeader := ctx.Get("Authorization")
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && strings.EqualFold(tokenParts[0], "bearer") {
			tokenString = tokenParts[1]
		}
	}

	if tokenString == "" {
		return utils.Response(ctx, nil, "unauthorized", fiber.StatusUnauthorized)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return utils.Response(ctx, nil, "Unauthorized: Invalid token", fiber.StatusUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.Response(ctx, nil, "Unauthorized: Invalid token", fiber.StatusUnauthorized)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return utils.Response(ctx, nil, "Unauthorized: Invalid user ID", fiber.StatusUnauthorized)
	}

	role, _ := claims["role"].(string)
	nama, _ := claims["name"].(string)

	ctx.Locals("userID", userID)
	ctx.Locals("role", role)
	ctx.Locals("nama", nama)

	return ctx.Next()
}

// GuardPath menolak request ketika role di session tidak boleh mengakses
// halaman client yang bersangkutan. Dipakai per route group.
func GuardPath(pathname string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(string)

		if !utils.CanAccessPath(role, pathname) {
			return utils.Response(ctx, nil, "forbidden", fiber.StatusForbidden)
		}

		return ctx.Next()
	}
}
