package model

// TechniqueEntry lives only inside its parent category document. Removing one
// means rewriting the parent's whole techniques array.
type TechniqueEntry struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title" binding:"required"`
	Description string `bson:"description" json:"description" binding:"required"`
	Difficulty  string `bson:"difficulty" json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	TimeNeeded  string `bson:"timeNeeded" json:"timeNeeded" binding:"required"`
	Content     string `bson:"content,omitempty" json:"content,omitempty"`
	Slug        string `bson:"slug,omitempty" json:"slug,omitempty" binding:"omitempty,slug"`
}

type TechniqueCategory struct {
	ID         string           `bson:"_id,omitempty" json:"id"`
	Category   string           `bson:"category" json:"category" binding:"required"`
	Icon       string           `bson:"icon" json:"icon" binding:"required"`
	Techniques []TechniqueEntry `bson:"techniques" json:"techniques" binding:"dive"`
}

// FlatTechnique is the aggregation result for slug lookups: one technique
// entry merged with its parent's category name.
type FlatTechnique struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Difficulty  string `bson:"difficulty" json:"difficulty"`
	TimeNeeded  string `bson:"timeNeeded" json:"timeNeeded"`
	Content     string `bson:"content,omitempty" json:"content,omitempty"`
	Slug        string `bson:"slug,omitempty" json:"slug,omitempty"`
	Category    string `bson:"category" json:"category"`
}
