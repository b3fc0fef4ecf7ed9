package domain

import "time"

// Post is a content article published by staff on the storefront.
type Post struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Images    []PostImage `json:"images,omitempty"`
	CreatedAt time.Time   `json:"createdAt,omitzero"`
}

type PostImage struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"images"`
}
