package controllers

import (
	"github.com/NITHINKR06/wellness/src/jobs"
	"github.com/NITHINKR06/wellness/src/middleware"
	"github.com/NITHINKR06/wellness/src/models"
	"github.com/NITHINKR06/wellness/src/riskmodel"
	"github.com/NITHINKR06/wellness/src/services/assessments"
	"github.com/NITHINKR06/wellness/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateAssessment godoc
// @Summary      Submit a questionnaire for scoring
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        body body models.AssessmentSubmission true "submission"
// @Success      201 {object} models.StoredAssessment
// @Failure      400 {object} models.ErrorResponse
// @Failure      401 {object} models.ErrorResponse
// @Security     BearerAuth
// @Router       /assessments [post]
func CreateAssessment(c *fiber.Ctx) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user id in token")
	}

	var submission models.AssessmentSubmission
	if err := c.BodyParser(&submission); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	stored, err := assessments.Put(c.Context(), ownerID, &submission)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	jobs.EnqueueRefreshStats(ownerID.Hex())

	return c.Status(fiber.StatusCreated).JSON(stored)
}

// GetAssessments godoc
// @Summary      List the caller's active assessments, most recent first
// @Tags         assessments
// @Produce      json
// @Success      200 {array} models.StoredAssessment
// @Security     BearerAuth
// @Router       /assessments [get]
func GetAssessments(c *fiber.Ctx) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user id in token")
	}

	list, err := assessments.ListActive(c.Context(), ownerID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(list)
}

// GetAssessmentByID godoc
// @Summary      Fetch one assessment
// @Tags         assessments
// @Produce      json
// @Param        id path string true "assessment id"
// @Success      200 {object} models.StoredAssessment
// @Failure      404 {object} models.ErrorResponse
// @Security     BearerAuth
// @Router       /assessments/{id} [get]
func GetAssessmentByID(c *fiber.Ctx) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user id in token")
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid assessment id")
	}

	assessment, err := assessments.GetByID(c.Context(), ownerID, id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(assessment)
}

// DeleteAssessment godoc
// @Summary      Soft-delete an assessment
// @Tags         assessments
// @Produce      json
// @Param        id path string true "assessment id"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} models.ErrorResponse
// @Security     BearerAuth
// @Router       /assessments/{id} [delete]
func DeleteAssessment(c *fiber.Ctx) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user id in token")
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid assessment id")
	}

	if err := assessments.SoftDelete(c.Context(), ownerID, id); err != nil {
		return utils.HandleServiceError(c, err)
	}

	jobs.EnqueueRefreshStats(ownerID.Hex())

	return c.JSON(fiber.Map{"success": true})
}

// GetAssessmentStats godoc
// @Summary      Simple aggregates over the caller's active assessments
// @Tags         assessments
// @Produce      json
// @Success      200 {object} models.AssessmentStats
// @Security     BearerAuth
// @Router       /assessments/stats [get]
func GetAssessmentStats(c *fiber.Ctx) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user id in token")
	}

	stats, err := assessments.Stats(c.Context(), ownerID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(stats)
}

// GetQuestions godoc
// @Summary      The fixed question catalog for the current model version
// @Tags         questions
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /questions [get]
func GetQuestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"modelVersion": riskmodel.ModelVersion,
		"threshold":    riskmodel.Threshold,
		"maxScore":     riskmodel.MaxScore(),
		"questions":    riskmodel.Questions,
	})
}
