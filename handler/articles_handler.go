package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetArticlesHandler(c *gin.Context, articlesService *usecase.ArticlesService) {
	articles, err := articlesService.ListArticles(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Article not found")
		return
	}

	utils.Success(c, articles)
}

func GetArticleHandler(c *gin.Context, articlesService *usecase.ArticlesService) {
	articleID := c.Param("id")

	article, err := articlesService.GetArticle(c.Request.Context(), articleID)
	if err != nil {
		handleServiceError(c, err, "Article not found")
		return
	}

	utils.Success(c, article)
}

func GetArticleBySlugHandler(c *gin.Context, articlesService *usecase.ArticlesService) {
	slug := c.Param("slug")

	article, err := articlesService.GetArticleBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err, "Article not found")
		return
	}

	utils.Success(c, article)
}

func CreateArticleHandler(c *gin.Context, articlesService *usecase.ArticlesService) {
	var article model.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := articlesService.CreateArticle(c.Request.Context(), &article); err != nil {
		handleServiceError(c, err, "Article not found")
		return
	}

	utils.Created(c, article)
}

func UpdateArticleHandler(c *gin.Context, articlesService *usecase.ArticlesService) {
	articleID := c.Param("id")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	article, err := articlesService.UpdateArticle(c.Request.Context(), articleID, updates)
	if err != nil {
		handleServiceError(c, err, "Article not found")
		return
	}

	utils.Success(c, article)
}

func DeleteArticleHandler(c *gin.Context, articlesService *usecase.ArticlesService) {
	articleID := c.Param("id")

	if err := articlesService.DeleteArticle(c.Request.Context(), articleID); err != nil {
		handleServiceError(c, err, "Article not found")
		return
	}

	utils.SuccessMessage(c, "Article deleted")
}
