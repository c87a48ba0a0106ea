package routes

import (
	"github.com/NITHINKR06/wellness/src/controllers"
	"github.com/NITHINKR06/wellness/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (register/login/logout)
func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	auth.Post("/register", controllers.RegisterUser)
	auth.Post("/login", controllers.LoginUser) // 🔐 login
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
}
