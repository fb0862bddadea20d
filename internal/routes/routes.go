package routes

import (
	"net/http"

	"github.com/01moynul/shopfront-api/internal/auth"
	"github.com/01moynul/shopfront-api/internal/config"
	"github.com/01moynul/shopfront-api/internal/handlers"
	"github.com/01moynul/shopfront-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter mounts every endpoint. Catalog reads need a token; catalog
// writes additionally need the catalog policy.
func SetupRouter(h *handlers.Handlers, issuer *auth.TokenIssuer, policy *auth.CatalogPolicy, log *zap.Logger, cfg config.ServerConfig) *gin.Engine {
	router := gin.New()

	// CORS runs first so preflight requests short-circuit.
	router.Use(
		middleware.CORS(cfg.CORSAllowedOrigin),
		middleware.RequestID(),
		middleware.AccessLog(log),
		gin.Recovery(),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Public ---
	router.POST("/account", h.Register)
	router.POST("/token", h.Login)

	// --- Login Required ---
	authed := router.Group("/")
	authed.Use(middleware.Auth(issuer))
	{
		authed.GET("/products", h.GetAllProducts)
		authed.GET("/products/:id", h.GetProduct)

		authed.GET("/cart", h.GetCart)
		authed.POST("/cart", h.AddToCart)
		authed.DELETE("/cart", h.ClearCart)
		authed.DELETE("/cart/:productId", h.RemoveFromCart)

		authed.GET("/wishlist", h.GetWishlist)
		authed.POST("/wishlist", h.AddToWishlist)
		authed.DELETE("/wishlist", h.ClearWishlist)
		authed.DELETE("/wishlist/:productId", h.RemoveFromWishlist)
	}

	// --- Catalog Administration ---
	catalog := router.Group("/products")
	catalog.Use(middleware.Auth(issuer), middleware.RequireCatalogAdmin(policy))
	{
		catalog.POST("", h.CreateProduct)
		catalog.PUT("/:id", h.UpdateProduct)
		catalog.DELETE("/:id", h.DeleteProduct)
	}

	return router
}
