package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS returns a middleware that allows cross-origin requests from browser
// clients. The API is read-only, so only safe methods are exposed.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD,OPTIONS,POST",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}
