package handlers

import (
	"net/http"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/gin-gonic/gin"
)

type AddToWishlistInput struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
}

func (h *Handlers) GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.Wishlist.List(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	c.JSON(http.StatusOK, items)
}

// AddToWishlist answers 201 with the stored row, whether it was just
// created or already present.
func (h *Handlers) AddToWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input AddToWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	item, err := h.Wishlist.Add(c.Request.Context(), &models.WishlistItem{
		UserID:    userID,
		ProductID: input.ProductID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handlers) RemoveFromWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	removed, err := h.Wishlist.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "product is not on the wishlist"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) ClearWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cleared, err := h.Wishlist.Clear(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !cleared {
		c.JSON(http.StatusNotFound, gin.H{"error": "wishlist is already empty"})
		return
	}
	c.Status(http.StatusNoContent)
}
