package repository

import (
	"context"
	"time"

	"main/middleware"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResourcesRepo struct {
	MongoCollection *mongo.Collection
}

func GetResourcesRepo(client *mongo.Client, dbName string) *ResourcesRepo {
	return &ResourcesRepo{
		MongoCollection: client.Database(dbName).Collection("resources"),
	}
}

func (r *ResourcesRepo) CreateBundle(ctx context.Context, bundle *model.ResourceBundle) error {
	timer := middleware.TrackDBOperation("insert", "resources")
	defer timer.ObserveDuration()

	bundle.ID = utils.GenerateID()
	bundle.CreatedAt = time.Now()
	bundle.UpdatedAt = bundle.CreatedAt
	if bundle.Downloadables == nil {
		bundle.Downloadables = []model.DownloadableResource{}
	}
	if bundle.Books == nil {
		bundle.Books = []model.BookResource{}
	}
	if bundle.External == nil {
		bundle.External = []model.ExternalResource{}
	}

	_, err := r.MongoCollection.InsertOne(ctx, bundle)
	return err
}

func (r *ResourcesRepo) GetAllBundles(ctx context.Context) ([]*model.ResourceBundle, error) {
	timer := middleware.TrackDBOperation("find", "resources")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bundles := []*model.ResourceBundle{}
	if err = cursor.All(ctx, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

func (r *ResourcesRepo) GetBundle(ctx context.Context, id string) (*model.ResourceBundle, error) {
	var bundle model.ResourceBundle
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&bundle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bundle, nil
}

// UpdateBundle applies a shallow field merge by id and returns the
// post-update document.
func (r *ResourcesRepo) UpdateBundle(ctx context.Context, id string, updates bson.M) (*model.ResourceBundle, error) {
	timer := middleware.TrackDBOperation("update", "resources")
	defer timer.ObserveDuration()

	delete(updates, "id")
	delete(updates, "_id")
	delete(updates, "createdAt")
	updates["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var bundle model.ResourceBundle
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&bundle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bundle, nil
}

// DeleteBundle removes a bundle by id; idempotent.
func (r *ResourcesRepo) DeleteBundle(ctx context.Context, id string) error {
	timer := middleware.TrackDBOperation("delete", "resources")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
