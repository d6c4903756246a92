package model

import (
	"time"
)

type Tool struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title" binding:"required"`
	Description string    `bson:"description" json:"description" binding:"required"`
	Category    string    `bson:"category" json:"category" binding:"required"`
	Icon        string    `bson:"icon" json:"icon" binding:"required"`
	Slug        string    `bson:"slug" json:"slug" binding:"required,slug"`
	Component   string    `bson:"component,omitempty" json:"component,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
