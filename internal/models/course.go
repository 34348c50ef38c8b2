package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeFree = "Free"
	TypePaid = "Paid"
)

type Course struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CategoryID      uuid.UUID `json:"category_id"`
	Type            string    `json:"type"`
	Price           float64   `json:"price"`
	Author          string    `json:"author"`
	CreatedBy       uuid.UUID `json:"created_by"`
	ImageObjectKeys []string  `json:"image_object_keys"`
	Likes           int       `json:"likes"`
	Favorites       int       `json:"favorites"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CoursePreview struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	ImageURLs   []string  `json:"image_urls"`
	Likes       int       `json:"likes"`
	Favorites   int       `json:"favorites"`
}

// CourseSales is the snapshot the earnings aggregator consumes: price plus
// the size of the purchase set, nothing else.
type CourseSales struct {
	ID            uuid.UUID
	Title         string
	Price         float64
	PurchaseCount int
}
