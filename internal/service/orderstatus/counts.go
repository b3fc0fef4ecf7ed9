// Package orderstatus derives per-status order counts for badge display.
package orderstatus

import (
	"context"
	"log"

	"fastlaundry/internal/domain"
)

type orderFetcher interface {
	AllOrders(ctx context.Context) ([]domain.Order, error)
	OrdersByShipper(ctx context.Context, shipperID string) ([]domain.Order, error)
}

// Count tallies orders per known status. An order contributes only when
// its status is recognized and it has not been soft-deleted by the
// shipper: the result is a filtered view, not a full tally.
func Count(orders []domain.Order) domain.StatusCounts {
	counts := domain.NewStatusCounts()
	for _, order := range orders {
		if order.DeletedByShipper {
			continue
		}
		if _, known := counts[order.Status]; known {
			counts[order.Status]++
		}
	}
	return counts
}

// Service fetches the order collection appropriate for a role and counts
// it. Every call is a full re-fetch and recompute.
type Service struct {
	fetcher orderFetcher
	logger  *log.Logger
}

func NewService(fetcher orderFetcher, logger *log.Logger) *Service {
	return &Service{fetcher: fetcher, logger: logger}
}

// Counts resolves the role's fetch scope from the role table. Roles
// without an order scope, and shippers without an identifier, get
// all-zero counts without touching the backend.
func (s *Service) Counts(ctx context.Context, role domain.Role, viewerID string) (domain.StatusCounts, error) {
	var (
		orders []domain.Order
		err    error
	)
	switch role.Profile().Scope {
	case domain.ScopeAll:
		orders, err = s.fetcher.AllOrders(ctx)
	case domain.ScopeShipper:
		if viewerID == "" {
			return domain.NewStatusCounts(), nil
		}
		orders, err = s.fetcher.OrdersByShipper(ctx, viewerID)
	default:
		return domain.NewStatusCounts(), nil
	}
	if err != nil {
		return nil, err
	}
	return Count(orders), nil
}
