package domain

// Product is a laundry service item from the backend catalog. BasePrice
// and ExpressPrice are VND amounts; ExpressPrice is the per-unit
// surcharge applied when express turnaround is selected.
type Product struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	BasePrice    int64  `json:"basePrice"`
	ExpressPrice int64  `json:"expressPrice"`
}
