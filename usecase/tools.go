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

type ToolsService struct {
	ToolsRepo *repository.ToolsRepo
	Cache     *services.CatalogCache
}

func (svc *ToolsService) ListTools(ctx context.Context) ([]*model.Tool, error) {
	var cached []*model.Tool
	if svc.Cache.GetList(ctx, "tools", &cached) {
		middleware.TrackCacheLookup("tools", "hit")
		return cached, nil
	}
	middleware.TrackCacheLookup("tools", "miss")

	tools, err := svc.ToolsRepo.GetAllTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	if err := svc.Cache.SetList(ctx, "tools", tools); err != nil {
		utils.Logger.Warn("failed to cache tool listing", zap.Error(err))
	}
	return tools, nil
}

func (svc *ToolsService) GetTool(ctx context.Context, id string) (*model.Tool, error) {
	return svc.ToolsRepo.GetTool(ctx, id)
}

func (svc *ToolsService) GetToolBySlug(ctx context.Context, slug string) (*model.Tool, error) {
	return svc.ToolsRepo.GetToolBySlug(ctx, slug)
}

// CreateTool persists a tool. Unlike articles, a tool's slug is required;
// presence and format are enforced at binding time, uniqueness here.
func (svc *ToolsService) CreateTool(ctx context.Context, tool *model.Tool) error {
	if !utils.ValidateSlug(tool.Slug) {
		return validationErrorf("%s is not a valid slug", tool.Slug)
	}
	exists, err := svc.ToolsRepo.SlugExists(ctx, tool.Slug)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return validationErrorf("slug %q is already in use", tool.Slug)
	}

	if err := svc.ToolsRepo.CreateTool(ctx, tool); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return validationErrorf("slug %q is already in use", tool.Slug)
		}
		return fmt.Errorf("failed to create tool: %w", err)
	}

	middleware.TrackContentOperation("tools", "create")
	svc.Cache.Invalidate(ctx, "tools")
	return nil
}

// DeleteTool removes a tool by id; idempotent.
func (svc *ToolsService) DeleteTool(ctx context.Context, id string) error {
	if err := svc.ToolsRepo.DeleteTool(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}

	middleware.TrackContentOperation("tools", "delete")
	svc.Cache.Invalidate(ctx, "tools")
	return nil
}
