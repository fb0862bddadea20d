package handlers

import (
	"net/http"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/gin-gonic/gin"
)

// AddToCartInput defines the JSON for adding an item to the cart.
// Quantity is range-checked by the cart service.
type AddToCartInput struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

func (h *Handlers) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.Carts.ListItems(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handlers) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// The service merges into an existing row and checks stock.
	item, err := h.Carts.AddOrUpdate(c.Request.Context(), &models.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handlers) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	removed, err := h.Carts.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "product is not in the cart"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cleared, err := h.Carts.Clear(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !cleared {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart is already empty"})
		return
	}
	c.Status(http.StatusNoContent)
}
