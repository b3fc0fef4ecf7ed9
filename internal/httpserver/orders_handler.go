package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fastlaundry/internal/domain"
	"fastlaundry/internal/service/orderstatus"
)

// StatusView is one live order-status view, satisfied by
// orderstatus.ViewModel.
type StatusView interface {
	Start(ctx context.Context, role domain.Role, viewerID string) error
	Snapshot() orderstatus.Snapshot
	Updates() <-chan orderstatus.Snapshot
	Stop()
}

func navigationHandler(c *gin.Context) {
	role := viewerRole(c)
	c.JSON(http.StatusOK, gin.H{"role": role, "entries": role.Profile().Nav})
}

func orderCounts(counts countsAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := viewerRole(c)
		result, err := counts.Counts(c.Request.Context(), role, viewerID(c))
		if err != nil {
			logger.Printf("order counts for role %s: %v", role, err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "could not load order counts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"counts": result})
	}
}

// streamOrderCounts pushes status snapshots over SSE. Each request gets
// its own view; the view's subscription dies with the request context.
func streamOrderCounts(newView func() StatusView, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := viewerRole(c)
		view := newView()
		if err := view.Start(c.Request.Context(), role, viewerID(c)); err != nil {
			logger.Printf("start status stream for role %s: %v", role, err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "could not load order counts"})
			return
		}
		defer view.Stop()

		first := true
		c.Stream(func(w io.Writer) bool {
			if first {
				first = false
				c.SSEvent("status", view.Snapshot())
				return true
			}
			select {
			case snap, ok := <-view.Updates():
				if !ok {
					return false
				}
				c.SSEvent("status", snap)
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
