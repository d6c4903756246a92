package model

import (
	"time"
)

type Author struct {
	Name  string `bson:"name" json:"name" binding:"required"`
	Image string `bson:"image" json:"image" binding:"required"`
}

type Article struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title" binding:"required"`
	Content   string    `bson:"content" json:"content" binding:"required"`
	Excerpt   string    `bson:"excerpt" json:"excerpt" binding:"required"`
	Category  string    `bson:"category" json:"category" binding:"required"`
	ReadTime  string    `bson:"readTime" json:"readTime" binding:"required"`
	Image     string    `bson:"image" json:"image" binding:"required"`
	Author    Author    `bson:"author" json:"author" binding:"required"`
	Slug      string    `bson:"slug,omitempty" json:"slug,omitempty" binding:"omitempty,slug"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
