package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetTechniquesHandler(c *gin.Context, techniquesService *usecase.TechniquesService) {
	categories, err := techniquesService.ListCategories(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Technique not found")
		return
	}

	utils.Success(c, categories)
}

func GetTechniqueCategoryHandler(c *gin.Context, techniquesService *usecase.TechniquesService) {
	categoryID := c.Param("id")

	category, err := techniquesService.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		handleServiceError(c, err, "Technique not found")
		return
	}

	utils.Success(c, category)
}

// GetTechniqueBySlugHandler resolves one technique entry across every
// category, with the parent category's name attached.
func GetTechniqueBySlugHandler(c *gin.Context, techniquesService *usecase.TechniquesService) {
	slug := c.Param("slug")

	technique, err := techniquesService.GetEntryBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err, "Technique not found")
		return
	}

	utils.Success(c, technique)
}

func CreateTechniqueCategoryHandler(c *gin.Context, techniquesService *usecase.TechniquesService) {
	var category model.TechniqueCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := techniquesService.CreateCategory(c.Request.Context(), &category); err != nil {
		handleServiceError(c, err, "Technique not found")
		return
	}

	utils.Created(c, category)
}

func AddTechniqueEntryHandler(c *gin.Context, techniquesService *usecase.TechniquesService) {
	categoryID := c.Param("id")

	var entry model.TechniqueEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	category, err := techniquesService.AddEntry(c.Request.Context(), categoryID, entry)
	if err != nil {
		handleServiceError(c, err, "Technique category not found")
		return
	}

	utils.Created(c, category)
}

func RemoveTechniqueEntryHandler(c *gin.Context, techniquesService *usecase.TechniquesService) {
	entryID := c.Param("entryId")

	category, err := techniquesService.RemoveEntry(c.Request.Context(), entryID)
	if err != nil {
		handleServiceError(c, err, "Technique entry not found")
		return
	}

	utils.Success(c, category)
}

func DeleteTechniqueCategoryHandler(c *gin.Context, techniquesService *usecase.TechniquesService) {
	categoryID := c.Param("id")

	if err := techniquesService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		handleServiceError(c, err, "Technique not found")
		return
	}

	utils.SuccessMessage(c, "Technique deleted")
}
