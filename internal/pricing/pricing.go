// Package pricing derives line and cart totals. Functions here are pure:
// no I/O, no mutation of inputs.
package pricing

import "fastlaundry/internal/domain"

// LineTotal is (unitPrice + express surcharge when selected) * quantity.
// Negative inputs contribute zero; carts are loaded from persisted
// storage that may have been tampered with or corrupted.
func LineTotal(item domain.LineItem) int64 {
	unit := item.UnitPrice
	if unit < 0 {
		unit = 0
	}
	if item.IsExpress {
		surcharge := item.ExpressSurcharge
		if surcharge < 0 {
			surcharge = 0
		}
		unit += surcharge
	}
	qty := item.Quantity
	if qty < 0 {
		qty = 0
	}
	return unit * int64(qty)
}

// CartTotal sums LineTotal over all items. The result is invariant under
// reordering of the collection.
func CartTotal(items []domain.LineItem) int64 {
	var total int64
	for _, item := range items {
		total += LineTotal(item)
	}
	return total
}
