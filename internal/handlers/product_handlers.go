package handlers

import (
	"net/http"
	"strconv"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductInput is the writable part of a product. Price and rating accept
// JSON numbers or numeric strings. InventoryStatus is free text and Quantity
// is stored as sent; neither is range-checked here.
type ProductInput struct {
	ID                int64           `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Image             string          `json:"image"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	InternalReference string          `json:"internalReference"`
	ShelfID           int             `json:"shelfId"`
	InventoryStatus   string          `json:"inventoryStatus"`
	Rating            decimal.Decimal `json:"rating"`
}

func (in ProductInput) toModel() *models.Product {
	return &models.Product{
		ID:                in.ID,
		Code:              in.Code,
		Name:              in.Name,
		Description:       in.Description,
		Image:             in.Image,
		Category:          in.Category,
		Price:             in.Price,
		Quantity:          in.Quantity,
		InternalReference: in.InternalReference,
		ShelfID:           in.ShelfID,
		InventoryStatus:   in.InventoryStatus,
		Rating:            in.Rating,
	}
}

func (h *Handlers) GetAllProducts(c *gin.Context) {
	products, err := h.Products.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handlers) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := input.toModel()
	p.ID = 0
	created, err := h.Products.Create(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", c.FullPath()+"/"+strconv.FormatInt(created.ID, 10))
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct handles PUT /products/:id. A body id, when present, must
// match the path.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// A body id of zero means "use the path".
	if input.ID != 0 && input.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id in body does not match path"})
		return
	}

	p := input.toModel()
	p.ID = id
	updated, err := h.Products.Update(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.Products.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
