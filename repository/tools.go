package repository

import (
	"context"
	"time"

	"main/middleware"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ToolsRepo struct {
	MongoCollection *mongo.Collection
}

func GetToolsRepo(client *mongo.Client, dbName string) *ToolsRepo {
	return &ToolsRepo{
		MongoCollection: client.Database(dbName).Collection("tools"),
	}
}

func (r *ToolsRepo) CreateTool(ctx context.Context, tool *model.Tool) error {
	timer := middleware.TrackDBOperation("insert", "tools")
	defer timer.ObserveDuration()

	tool.ID = utils.GenerateID()
	tool.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, tool)
	return err
}

func (r *ToolsRepo) GetAllTools(ctx context.Context) ([]*model.Tool, error) {
	timer := middleware.TrackDBOperation("find", "tools")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tools := []*model.Tool{}
	if err = cursor.All(ctx, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *ToolsRepo) GetTool(ctx context.Context, id string) (*model.Tool, error) {
	var tool model.Tool
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&tool)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tool, nil
}

func (r *ToolsRepo) GetToolBySlug(ctx context.Context, slug string) (*model.Tool, error) {
	var tool model.Tool
	err := r.MongoCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&tool)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tool, nil
}

func (r *ToolsRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteTool removes a tool by id; idempotent.
func (r *ToolsRepo) DeleteTool(ctx context.Context, id string) error {
	timer := middleware.TrackDBOperation("delete", "tools")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
