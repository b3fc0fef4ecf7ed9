package domain

// Category groups laundry service products (wash & fold, dry cleaning,
// bedding and so on).
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
