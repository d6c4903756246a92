package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetToolsHandler(c *gin.Context, toolsService *usecase.ToolsService) {
	tools, err := toolsService.ListTools(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Tool not found")
		return
	}

	utils.Success(c, tools)
}

func GetToolHandler(c *gin.Context, toolsService *usecase.ToolsService) {
	toolID := c.Param("id")

	tool, err := toolsService.GetTool(c.Request.Context(), toolID)
	if err != nil {
		handleServiceError(c, err, "Tool not found")
		return
	}

	utils.Success(c, tool)
}

func GetToolBySlugHandler(c *gin.Context, toolsService *usecase.ToolsService) {
	slug := c.Param("slug")

	tool, err := toolsService.GetToolBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err, "Tool not found")
		return
	}

	utils.Success(c, tool)
}

func CreateToolHandler(c *gin.Context, toolsService *usecase.ToolsService) {
	var tool model.Tool
	if err := c.ShouldBindJSON(&tool); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := toolsService.CreateTool(c.Request.Context(), &tool); err != nil {
		handleServiceError(c, err, "Tool not found")
		return
	}

	utils.Created(c, tool)
}

func DeleteToolHandler(c *gin.Context, toolsService *usecase.ToolsService) {
	toolID := c.Param("id")

	if err := toolsService.DeleteTool(c.Request.Context(), toolID); err != nil {
		handleServiceError(c, err, "Tool not found")
		return
	}

	utils.SuccessMessage(c, "Tool deleted")
}
