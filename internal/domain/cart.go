package domain

// LineItem is one (product, express-flag) pairing with a quantity in the
// session cart. Name and ImageURL are copied from the catalog at add time
// and are not re-synced if the catalog changes later.
type LineItem struct {
	ProductID        string `json:"productId"`
	Name             string `json:"name"`
	ImageURL         string `json:"imageUrl,omitempty"`
	UnitPrice        int64  `json:"unitPrice"`
	ExpressSurcharge int64  `json:"expressSurcharge"`
	IsExpress        bool   `json:"isExpress"`
	Quantity         int    `json:"quantity"`
}

// SameLine reports whether two line items share cart identity, which is
// the (productID, isExpress) pair. Adding the same product with a
// different express flag creates a distinct line.
func (li LineItem) SameLine(productID string, isExpress bool) bool {
	return li.ProductID == productID && li.IsExpress == isExpress
}
