package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetResourcesHandler(c *gin.Context, resourcesService *usecase.ResourcesService) {
	bundles, err := resourcesService.ListBundles(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Resource not found")
		return
	}

	utils.Success(c, bundles)
}

func GetResourceHandler(c *gin.Context, resourcesService *usecase.ResourcesService) {
	bundleID := c.Param("id")

	bundle, err := resourcesService.GetBundle(c.Request.Context(), bundleID)
	if err != nil {
		handleServiceError(c, err, "Resource not found")
		return
	}

	utils.Success(c, bundle)
}

func CreateResourceHandler(c *gin.Context, resourcesService *usecase.ResourcesService) {
	var bundle model.ResourceBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := resourcesService.CreateBundle(c.Request.Context(), &bundle); err != nil {
		handleServiceError(c, err, "Resource not found")
		return
	}

	utils.Created(c, bundle)
}

func UpdateResourceHandler(c *gin.Context, resourcesService *usecase.ResourcesService) {
	bundleID := c.Param("id")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	bundle, err := resourcesService.UpdateBundle(c.Request.Context(), bundleID, updates)
	if err != nil {
		handleServiceError(c, err, "Resource not found")
		return
	}

	utils.Success(c, bundle)
}

func DeleteResourceHandler(c *gin.Context, resourcesService *usecase.ResourcesService) {
	bundleID := c.Param("id")

	if err := resourcesService.DeleteBundle(c.Request.Context(), bundleID); err != nil {
		handleServiceError(c, err, "Resource not found")
		return
	}

	utils.SuccessMessage(c, "Resource deleted")
}
