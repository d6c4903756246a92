package model

import (
	"time"
)

type DownloadableResource struct {
	Title       string `bson:"title" json:"title" binding:"required"`
	Description string `bson:"description" json:"description" binding:"required"`
	Type        string `bson:"type,omitempty" json:"type,omitempty"`
	Size        string `bson:"size,omitempty" json:"size,omitempty"`
	URL         string `bson:"url" json:"url" binding:"required"`
}

type BookResource struct {
	Title       string `bson:"title" json:"title" binding:"required"`
	Author      string `bson:"author,omitempty" json:"author,omitempty"`
	Description string `bson:"description" json:"description" binding:"required"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	URL         string `bson:"url" json:"url" binding:"required"`
}

type ExternalResource struct {
	Title       string `bson:"title" json:"title" binding:"required"`
	Description string `bson:"description" json:"description" binding:"required"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`
	URL         string `bson:"url" json:"url" binding:"required"`
}

// ResourceBundle groups the three independent resource lists. The client
// consumes the first bundle in the collection, so in practice one document
// acts as the container.
type ResourceBundle struct {
	ID            string                 `bson:"_id,omitempty" json:"id"`
	Downloadables []DownloadableResource `bson:"downloadables" json:"downloadables" binding:"dive"`
	Books         []BookResource         `bson:"books" json:"books" binding:"dive"`
	External      []ExternalResource     `bson:"external" json:"external" binding:"dive"`
	CreatedAt     time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time              `bson:"updatedAt" json:"updatedAt"`
}
