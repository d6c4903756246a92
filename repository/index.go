package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the unique slug indexes. Sparse, because article and
// technique slugs are optional; uniqueness only applies to documents that
// carry one. The write-path checks in usecase are the primary guard; these
// indexes are the store-level backstop.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	articleIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().
				SetName("article_slug_unique").
				SetUnique(true).
				SetSparse(true),
		},
	}

	toolIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().
				SetName("tool_slug_unique").
				SetUnique(true).
				SetSparse(true),
		},
	}

	// Unique across parent documents; duplicates inside one document and
	// between entries of different documents inserted concurrently are caught
	// by the usecase checks.
	techniqueIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "techniques.slug", Value: 1}},
			Options: options.Index().
				SetName("technique_entry_slug_unique").
				SetUnique(true).
				SetSparse(true),
		},
	}

	if _, err := db.Collection("articles").Indexes().CreateMany(ctx, articleIndexes); err != nil {
		return fmt.Errorf("failed to create article indexes: %w", err)
	}
	if _, err := db.Collection("tools").Indexes().CreateMany(ctx, toolIndexes); err != nil {
		return fmt.Errorf("failed to create tool indexes: %w", err)
	}
	if _, err := db.Collection("techniques").Indexes().CreateMany(ctx, techniqueIndexes); err != nil {
		return fmt.Errorf("failed to create technique indexes: %w", err)
	}

	return nil
}
