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
	"go.uber.org/zap"
)

type ResourcesService struct {
	ResourcesRepo *repository.ResourcesRepo
	Cache         *services.CatalogCache
}

// ListBundles returns every resource bundle. The client treats the first one
// as the container, but the route exposes the whole collection.
func (svc *ResourcesService) ListBundles(ctx context.Context) ([]*model.ResourceBundle, error) {
	var cached []*model.ResourceBundle
	if svc.Cache.GetList(ctx, "resources", &cached) {
		middleware.TrackCacheLookup("resources", "hit")
		return cached, nil
	}
	middleware.TrackCacheLookup("resources", "miss")

	bundles, err := svc.ResourcesRepo.GetAllBundles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource bundles: %w", err)
	}

	if err := svc.Cache.SetList(ctx, "resources", bundles); err != nil {
		utils.Logger.Warn("failed to cache resource listing", zap.Error(err))
	}
	return bundles, nil
}

func (svc *ResourcesService) GetBundle(ctx context.Context, id string) (*model.ResourceBundle, error) {
	return svc.ResourcesRepo.GetBundle(ctx, id)
}

func (svc *ResourcesService) CreateBundle(ctx context.Context, bundle *model.ResourceBundle) error {
	if err := svc.ResourcesRepo.CreateBundle(ctx, bundle); err != nil {
		return fmt.Errorf("failed to create resource bundle: %w", err)
	}

	middleware.TrackContentOperation("resources", "create")
	svc.Cache.Invalidate(ctx, "resources")
	return nil
}

// UpdateBundle applies a shallow merge of the provided lists and returns the
// post-update document.
func (svc *ResourcesService) UpdateBundle(ctx context.Context, id string, updates map[string]interface{}) (*model.ResourceBundle, error) {
	bundle, err := svc.ResourcesRepo.UpdateBundle(ctx, id, bson.M(updates))
	if err != nil {
		return nil, err
	}

	middleware.TrackContentOperation("resources", "update")
	svc.Cache.Invalidate(ctx, "resources")
	return bundle, nil
}

// DeleteBundle removes a bundle by id; idempotent.
func (svc *ResourcesService) DeleteBundle(ctx context.Context, id string) error {
	if err := svc.ResourcesRepo.DeleteBundle(ctx, id); err != nil {
		return fmt.Errorf("failed to delete resource bundle: %w", err)
	}

	middleware.TrackContentOperation("resources", "delete")
	svc.Cache.Invalidate(ctx, "resources")
	return nil
}
