package cartstore

import (
	"encoding/json"
	"strconv"
	"strings"

	"fastlaundry/internal/domain"
)

// The at-rest record keeps the original cart layout: express as a
// "express"/"normal" string enum and prices under basePrice/expressPrice.
// In memory the express flag is a boolean; the conversion happens here and
// nowhere else.
type storedItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	ImageURL     string      `json:"imageUrl,omitempty"`
	Express      string      `json:"express"`
	Quantity     interface{} `json:"quantity"`
	BasePrice    interface{} `json:"basePrice"`
	ExpressPrice interface{} `json:"expressPrice"`
}

const (
	expressMarker = "express"
	normalMarker  = "normal"
)

func decodeCart(raw string) ([]domain.LineItem, error) {
	var stored []storedItem
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, err
	}
	items := make([]domain.LineItem, 0, len(stored))
	for _, rec := range stored {
		items = append(items, domain.LineItem{
			ProductID:        rec.ID,
			Name:             rec.Name,
			ImageURL:         rec.ImageURL,
			UnitPrice:        coerceAmount(rec.BasePrice),
			ExpressSurcharge: coerceAmount(rec.ExpressPrice),
			IsExpress:        strings.EqualFold(rec.Express, expressMarker),
			Quantity:         int(coerceAmount(rec.Quantity)),
		})
	}
	return items, nil
}

func encodeCart(items []domain.LineItem) (string, error) {
	stored := make([]storedItem, 0, len(items))
	for _, item := range items {
		marker := normalMarker
		if item.IsExpress {
			marker = expressMarker
		}
		stored = append(stored, storedItem{
			ID:           item.ProductID,
			Name:         item.Name,
			ImageURL:     item.ImageURL,
			Express:      marker,
			Quantity:     item.Quantity,
			BasePrice:    item.UnitPrice,
			ExpressPrice: item.ExpressSurcharge,
		})
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// coerceAmount turns whatever a numeric field decoded into back into a
// number, defaulting to 0 when un-parseable. Persisted records have been
// observed carrying numbers as strings after manual edits.
func coerceAmount(raw interface{}) int64 {
	switch v := raw.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return parsed
		}
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int64(parsed)
		}
		return 0
	default:
		return 0
	}
}
