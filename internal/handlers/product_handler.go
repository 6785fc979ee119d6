package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bfarinango/student-store/internal/store"
)

type ProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *Number `json:"price"`
	ImageURL    *string `json:"image_url"`
	Category    *string `json:"category"`
}

func (req *ProductRequest) fields() store.ProductFields {
	fields := store.ProductFields{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}
	if req.Price != nil {
		price := float64(*req.Price)
		fields.Price = &price
	}
	return fields
}

func (a *API) ListProducts(c *gin.Context) {
	filter := store.ProductFilter{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}

	products, err := a.catalog.List(filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (a *API) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := a.catalog.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (a *API) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := a.catalog.Create(req.fields())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (a *API) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := a.catalog.Update(id, req.fields())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (a *API) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := a.catalog.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
