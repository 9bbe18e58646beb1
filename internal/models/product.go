package models

import "time"

// Product represents a digital product available in the catalog.
// Products are written once by the startup seed and never modified
// afterwards, which lets orders snapshot them safely.
type Product struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	FileContent *string   `json:"file_content,omitempty" bson:"file_content,omitempty"`
}
