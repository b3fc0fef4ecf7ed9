package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fastlaundry/internal/domain"
	"fastlaundry/internal/laundryapi"
	"fastlaundry/internal/service/booking"
)

type cartAPI interface {
	Load(ctx context.Context, sessionID string) []domain.LineItem
	Add(ctx context.Context, sessionID string, item domain.LineItem) ([]domain.LineItem, error)
	Remove(ctx context.Context, sessionID string, index int) ([]domain.LineItem, error)
	SetQuantity(ctx context.Context, sessionID, productID string, isExpress bool, delta int) ([]domain.LineItem, error)
	Clear(ctx context.Context, sessionID string) error
}

type bookingAPI interface {
	Submit(ctx context.Context, sessionID string, in booking.Input) (*booking.Result, error)
}

type countsAPI interface {
	Counts(ctx context.Context, role domain.Role, viewerID string) (domain.StatusCounts, error)
}

type postsAPI interface {
	Posts(ctx context.Context) ([]domain.Post, error)
	PostByID(ctx context.Context, id string) (*domain.Post, error)
	CreatePost(ctx context.Context, token string, post domain.Post) (*domain.Post, error)
	UpdatePost(ctx context.Context, token, id string, post domain.Post) (*domain.Post, error)
	DeletePost(ctx context.Context, token, id string) error
}

type catalogAPI interface {
	Products(ctx context.Context) ([]domain.Product, error)
	ProductByID(ctx context.Context, id string) (*domain.Product, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type paymentsAPI interface {
	CreateVNPayPayment(ctx context.Context, amount int64) (*laundryapi.PaymentRedirect, error)
	VNPayReturn(ctx context.Context, responseCode string) (string, error)
	CreatePayPalPayment(ctx context.Context, amount int64) (*laundryapi.PaymentRedirect, error)
}

// Deps carries everything the routes need.
type Deps struct {
	Cart     cartAPI
	Booking  bookingAPI
	Counts   countsAPI
	Posts    postsAPI
	Catalog  catalogAPI
	Payments paymentsAPI

	// NewStatusView mints one live status view per streaming request.
	NewStatusView func() StatusView

	// KV backs the readiness probe.
	KV pinger

	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.KV))

	api := router.Group("/api", sessionMiddleware())

	api.GET("/cart", getCart(deps.Cart))
	api.POST("/cart/items", addCartItem(deps.Cart))
	api.PATCH("/cart/items", updateCartQuantity(deps.Cart))
	api.DELETE("/cart/items/:index", removeCartItem(deps.Cart))
	api.DELETE("/cart", clearCart(deps.Cart))

	api.POST("/bookings", submitBooking(deps.Cart, deps.Booking, logger))

	api.GET("/navigation", navigationHandler)
	api.GET("/orders/counts", orderCounts(deps.Counts, logger))
	if deps.NewStatusView != nil {
		api.GET("/orders/counts/stream", streamOrderCounts(deps.NewStatusView, logger))
	}

	api.GET("/posts", listPosts(deps.Posts, logger))
	api.GET("/posts/:id", getPost(deps.Posts, logger))
	api.POST("/posts", createPost(deps.Posts, logger))
	api.PUT("/posts/:id", updatePost(deps.Posts, logger))
	api.DELETE("/posts/:id", deletePost(deps.Posts, logger))

	api.GET("/products", listProducts(deps.Catalog, logger))
	api.GET("/products/:id", getProduct(deps.Catalog, logger))
	api.GET("/categories", listCategories(deps.Catalog, logger))
	api.GET("/categories/:id/products", productsByCategory(deps.Catalog, logger))

	api.POST("/payments/vnpay", createVNPayPayment(deps.Payments, logger))
	api.GET("/payments/vnpay/return", vnpayReturn(deps.Payments, logger))
	api.POST("/payments/paypal", createPayPalPayment(deps.Payments, logger))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", roleHeader, viewerHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		// credentials cannot be combined with a wildcard origin
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
