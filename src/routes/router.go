package routes

import (
	"time"

	"github.com/NITHINKR06/wellness/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Route เช็คว่า API ทำงานอยู่
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// Question catalog is public: the client renders it before login.
	api.Get("/questions", controllers.GetQuestions)

	authRoutes(api)
	assessmentRoutes(api)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
