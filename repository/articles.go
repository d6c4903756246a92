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

type ArticlesRepo struct {
	MongoCollection *mongo.Collection
}

func GetArticlesRepo(client *mongo.Client, dbName string) *ArticlesRepo {
	return &ArticlesRepo{
		MongoCollection: client.Database(dbName).Collection("articles"),
	}
}

// CreateArticle inserts a new article, assigning its id and creation time.
func (r *ArticlesRepo) CreateArticle(ctx context.Context, article *model.Article) error {
	timer := middleware.TrackDBOperation("insert", "articles")
	defer timer.ObserveDuration()

	article.ID = utils.GenerateID()
	article.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, article)
	return err
}

// GetAllArticles returns every article in store-native order.
func (r *ArticlesRepo) GetAllArticles(ctx context.Context) ([]*model.Article, error) {
	timer := middleware.TrackDBOperation("find", "articles")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	articles := []*model.Article{}
	if err = cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle retrieves a single article by id.
func (r *ArticlesRepo) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// GetArticleBySlug retrieves a single article by its slug.
func (r *ArticlesRepo) GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	err := r.MongoCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&article)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// SlugExists reports whether any article already claims the slug.
func (r *ArticlesRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateArticle applies a shallow field merge by id and returns the
// post-update document.
func (r *ArticlesRepo) UpdateArticle(ctx context.Context, id string, updates bson.M) (*model.Article, error) {
	timer := middleware.TrackDBOperation("update", "articles")
	defer timer.ObserveDuration()

	// Never let an update move a document's identity or creation time.
	delete(updates, "id")
	delete(updates, "_id")
	delete(updates, "createdAt")

	// Mongo rejects an empty $set; a body with no mergeable fields is a no-op.
	if len(updates) == 0 {
		return r.GetArticle(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var article model.Article
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&article)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// DeleteArticle removes an article by id. Deleting an id that does not exist
// is not an error; delete is idempotent.
func (r *ArticlesRepo) DeleteArticle(ctx context.Context, id string) error {
	timer := middleware.TrackDBOperation("delete", "articles")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
