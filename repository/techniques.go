package repository

import (
	"context"

	"main/middleware"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TechniquesRepo struct {
	MongoCollection *mongo.Collection
}

func GetTechniquesRepo(client *mongo.Client, dbName string) *TechniquesRepo {
	return &TechniquesRepo{
		MongoCollection: client.Database(dbName).Collection("techniques"),
	}
}

// CreateCategory inserts a category document, assigning ids to the category
// and to every technique entry it carries.
func (r *TechniquesRepo) CreateCategory(ctx context.Context, category *model.TechniqueCategory) error {
	timer := middleware.TrackDBOperation("insert", "techniques")
	defer timer.ObserveDuration()

	category.ID = utils.GenerateID()
	if category.Techniques == nil {
		category.Techniques = []model.TechniqueEntry{}
	}
	for i := range category.Techniques {
		category.Techniques[i].ID = utils.GenerateID()
	}

	_, err := r.MongoCollection.InsertOne(ctx, category)
	return err
}

func (r *TechniquesRepo) GetAllCategories(ctx context.Context) ([]*model.TechniqueCategory, error) {
	timer := middleware.TrackDBOperation("find", "techniques")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []*model.TechniqueCategory{}
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *TechniquesRepo) GetCategory(ctx context.Context, id string) (*model.TechniqueCategory, error) {
	var category model.TechniqueCategory
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindEntryBySlug flattens every category's techniques array and returns the
// single entry matching the slug, with the parent's category name merged in.
func (r *TechniquesRepo) FindEntryBySlug(ctx context.Context, slug string) (*model.FlatTechnique, error) {
	timer := middleware.TrackDBOperation("aggregate", "techniques")
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$techniques"}},
		bson.D{{Key: "$match", Value: bson.M{"techniques.slug": slug}}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{
			"newRoot": bson.M{
				"$mergeObjects": bson.A{"$techniques", bson.M{"category": "$category"}},
			},
		}}},
	}

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.FlatTechnique
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return &results[0], nil
}

// SlugInUse reports whether any technique entry in any category claims the
// slug. Sub-document slugs are unique globally, not per category.
func (r *TechniquesRepo) SlugInUse(ctx context.Context, slug string) (bool, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"techniques.slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddEntry appends one technique entry to a category and rewrites the whole
// parent document. There is no optimistic concurrency check; concurrent edits
// to the same category resolve as last write wins.
func (r *TechniquesRepo) AddEntry(ctx context.Context, categoryID string, entry model.TechniqueEntry) (*model.TechniqueCategory, error) {
	timer := middleware.TrackDBOperation("replace", "techniques")
	defer timer.ObserveDuration()

	category, err := r.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	entry.ID = utils.GenerateID()
	category.Techniques = append(category.Techniques, entry)

	_, err = r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": categoryID}, category)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// RemoveEntry locates the sub-document by id inside its parent's array,
// removes exactly that entry, and rewrites the parent. Sibling entries keep
// their original order.
func (r *TechniquesRepo) RemoveEntry(ctx context.Context, entryID string) (*model.TechniqueCategory, error) {
	timer := middleware.TrackDBOperation("replace", "techniques")
	defer timer.ObserveDuration()

	var category model.TechniqueCategory
	err := r.MongoCollection.FindOne(ctx, bson.M{"techniques._id": entryID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	kept := make([]model.TechniqueEntry, 0, len(category.Techniques))
	for _, entry := range category.Techniques {
		if entry.ID != entryID {
			kept = append(kept, entry)
		}
	}
	category.Techniques = kept

	_, err = r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": category.ID}, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a whole category document by id; idempotent.
func (r *TechniquesRepo) DeleteCategory(ctx context.Context, id string) error {
	timer := middleware.TrackDBOperation("delete", "techniques")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
