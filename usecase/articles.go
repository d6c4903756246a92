package usecase

import (
	"context"
	"fmt"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ArticlesService struct {
	ArticlesRepo *repository.ArticlesRepo
	Cache        *services.CatalogCache
}

// ListArticles returns every article, read through the catalog cache when one
// is configured.
func (svc *ArticlesService) ListArticles(ctx context.Context) ([]*model.Article, error) {
	var cached []*model.Article
	if svc.Cache.GetList(ctx, "articles", &cached) {
		middleware.TrackCacheLookup("articles", "hit")
		return cached, nil
	}
	middleware.TrackCacheLookup("articles", "miss")

	articles, err := svc.ArticlesRepo.GetAllArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	if err := svc.Cache.SetList(ctx, "articles", articles); err != nil {
		utils.Logger.Warn("failed to cache article listing", zap.Error(err))
	}
	return articles, nil
}

func (svc *ArticlesService) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	return svc.ArticlesRepo.GetArticle(ctx, id)
}

func (svc *ArticlesService) GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	return svc.ArticlesRepo.GetArticleBySlug(ctx, slug)
}

// CreateArticle validates the article's slug against the collection-wide
// uniqueness scope and persists it. Field presence and slug format are
// checked at binding time; nothing is written when validation fails.
func (svc *ArticlesService) CreateArticle(ctx context.Context, article *model.Article) error {
	if article.Slug != "" {
		if !utils.ValidateSlug(article.Slug) {
			return validationErrorf("%s is not a valid slug", article.Slug)
		}
		exists, err := svc.ArticlesRepo.SlugExists(ctx, article.Slug)
		if err != nil {
			return fmt.Errorf("failed to check slug: %w", err)
		}
		if exists {
			return validationErrorf("slug %q is already in use", article.Slug)
		}
	}

	if err := svc.ArticlesRepo.CreateArticle(ctx, article); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return validationErrorf("slug %q is already in use", article.Slug)
		}
		return fmt.Errorf("failed to create article: %w", err)
	}

	middleware.TrackContentOperation("articles", "create")
	svc.Cache.Invalidate(ctx, "articles")
	return nil
}

// UpdateArticle applies a shallow merge of the provided fields and returns
// the post-update document. A slug change is validated against the same
// uniqueness scope as creation.
func (svc *ArticlesService) UpdateArticle(ctx context.Context, id string, updates map[string]interface{}) (*model.Article, error) {
	if raw, ok := updates["slug"]; ok {
		slug, ok := raw.(string)
		if !ok || !utils.ValidateSlug(slug) {
			return nil, validationErrorf("%v is not a valid slug", raw)
		}
		existing, err := svc.ArticlesRepo.GetArticleBySlug(ctx, slug)
		if err != nil && err != repository.ErrNotFound {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, validationErrorf("slug %q is already in use", slug)
		}
	}

	article, err := svc.ArticlesRepo.UpdateArticle(ctx, id, bson.M(updates))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, validationErrorf("slug is already in use")
		}
		return nil, err
	}

	middleware.TrackContentOperation("articles", "update")
	svc.Cache.Invalidate(ctx, "articles")
	return article, nil
}

// DeleteArticle removes an article by id. Unknown ids succeed; delete is
// idempotent.
func (svc *ArticlesService) DeleteArticle(ctx context.Context, id string) error {
	if err := svc.ArticlesRepo.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	middleware.TrackContentOperation("articles", "delete")
	svc.Cache.Invalidate(ctx, "articles")
	return nil
}
