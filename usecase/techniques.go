package usecase

import (
	"context"
	"fmt"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type TechniquesService struct {
	TechniquesRepo *repository.TechniquesRepo
	Cache          *services.CatalogCache
}

func (svc *TechniquesService) ListCategories(ctx context.Context) ([]*model.TechniqueCategory, error) {
	var cached []*model.TechniqueCategory
	if svc.Cache.GetList(ctx, "techniques", &cached) {
		middleware.TrackCacheLookup("techniques", "hit")
		return cached, nil
	}
	middleware.TrackCacheLookup("techniques", "miss")

	categories, err := svc.TechniquesRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list technique categories: %w", err)
	}

	if err := svc.Cache.SetList(ctx, "techniques", categories); err != nil {
		utils.Logger.Warn("failed to cache technique listing", zap.Error(err))
	}
	return categories, nil
}

func (svc *TechniquesService) GetCategory(ctx context.Context, id string) (*model.TechniqueCategory, error) {
	return svc.TechniquesRepo.GetCategory(ctx, id)
}

// GetEntryBySlug resolves a technique entry across all categories via the
// flatten-and-join aggregation.
func (svc *TechniquesService) GetEntryBySlug(ctx context.Context, slug string) (*model.FlatTechnique, error) {
	return svc.TechniquesRepo.FindEntryBySlug(ctx, slug)
}

// validateEntrySlug enforces the global sub-document slug scope: the slug
// must be well formed and unused by any entry in any category.
func (svc *TechniquesService) validateEntrySlug(ctx context.Context, slug string) error {
	if slug == "" {
		return nil
	}
	if !utils.ValidateSlug(slug) {
		return validationErrorf("%s is not a valid slug", slug)
	}
	inUse, err := svc.TechniquesRepo.SlugInUse(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if inUse {
		return validationErrorf("slug %q is already in use", slug)
	}
	return nil
}

// CreateCategory validates every entry slug, including duplicates within the
// payload itself, then persists the whole category document.
func (svc *TechniquesService) CreateCategory(ctx context.Context, category *model.TechniqueCategory) error {
	seen := make(map[string]bool)
	for _, entry := range category.Techniques {
		if entry.Slug == "" {
			continue
		}
		if seen[entry.Slug] {
			return validationErrorf("slug %q appears more than once", entry.Slug)
		}
		seen[entry.Slug] = true
		if err := svc.validateEntrySlug(ctx, entry.Slug); err != nil {
			return err
		}
	}

	if err := svc.TechniquesRepo.CreateCategory(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return validationErrorf("a technique slug is already in use")
		}
		return fmt.Errorf("failed to create technique category: %w", err)
	}

	middleware.TrackContentOperation("techniques", "create")
	svc.Cache.Invalidate(ctx, "techniques")
	return nil
}

// AddEntry appends one technique to a category, rewriting the whole parent
// document.
func (svc *TechniquesService) AddEntry(ctx context.Context, categoryID string, entry model.TechniqueEntry) (*model.TechniqueCategory, error) {
	if err := svc.validateEntrySlug(ctx, entry.Slug); err != nil {
		return nil, err
	}

	category, err := svc.TechniquesRepo.AddEntry(ctx, categoryID, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, validationErrorf("slug %q is already in use", entry.Slug)
		}
		return nil, err
	}

	middleware.TrackContentOperation("techniques", "update")
	svc.Cache.Invalidate(ctx, "techniques")
	return category, nil
}

// RemoveEntry removes exactly one technique sub-document by id, leaving its
// siblings untouched and in order.
func (svc *TechniquesService) RemoveEntry(ctx context.Context, entryID string) (*model.TechniqueCategory, error) {
	category, err := svc.TechniquesRepo.RemoveEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	middleware.TrackContentOperation("techniques", "update")
	svc.Cache.Invalidate(ctx, "techniques")
	return category, nil
}

// DeleteCategory removes a whole category document; idempotent.
func (svc *TechniquesService) DeleteCategory(ctx context.Context, id string) error {
	if err := svc.TechniquesRepo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("failed to delete technique category: %w", err)
	}

	middleware.TrackContentOperation("techniques", "delete")
	svc.Cache.Invalidate(ctx, "techniques")
	return nil
}
