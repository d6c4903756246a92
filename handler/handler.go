package handler

import (
	"errors"

	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError maps service failures onto the response envelope:
// validation rejections become 400s, missing documents 404s, and anything
// else (store or transport failure) a generic 500.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case usecase.IsValidationError(err):
		middleware.TrackError("validation")
		utils.BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		middleware.TrackError("not_found")
		utils.NotFound(c, notFoundMsg)
	default:
		middleware.TrackError("db")
		utils.Logger.Error("store operation failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		utils.InternalError(c, "Server error")
	}
}
