package routes

import (
	"github.com/NITHINKR06/wellness/src/controllers"
	"github.com/NITHINKR06/wellness/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// assessmentRoutes ทุก endpoint ต้องผ่าน AuthJWT และถูก scope ด้วย owner id
func assessmentRoutes(router fiber.Router) {
	assessments := router.Group("/assessments", middleware.AuthJWT)

	assessments.Post("/", controllers.CreateAssessment)
	assessments.Get("/", controllers.GetAssessments)
	assessments.Get("/stats", controllers.GetAssessmentStats)
	assessments.Get("/:id", controllers.GetAssessmentByID)
	assessments.Delete("/:id", controllers.DeleteAssessment)
}
