package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bfarinango/student-store/internal/store"
)

type OrderItemRequest struct {
	OrderID   *Count  `json:"orderId"`
	ProductID *Count  `json:"productId"`
	Quantity  *Count  `json:"quantity"`
	Price     *Number `json:"price"`
}

func (a *API) ListOrderItems(c *gin.Context) {
	items, err := a.items.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) GetOrderItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := a.items.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (a *API) CreateOrderItem(c *gin.Context) {
	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.OrderID == nil || req.ProductID == nil || req.Quantity == nil || req.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId, productId, quantity, and price are required"})
		return
	}

	item, err := a.items.Create(uint(*req.OrderID), uint(*req.ProductID), uint(*req.Quantity), float64(*req.Price))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (a *API) UpdateOrderItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.ItemPatch{}
	if req.OrderID != nil {
		orderID := uint(*req.OrderID)
		patch.OrderID = &orderID
	}
	if req.ProductID != nil {
		productID := uint(*req.ProductID)
		patch.ProductID = &productID
	}
	if req.Quantity != nil {
		quantity := uint(*req.Quantity)
		patch.Quantity = &quantity
	}
	if req.Price != nil {
		price := float64(*req.Price)
		patch.Price = &price
	}

	item, err := a.items.Update(id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (a *API) DeleteOrderItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := a.items.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
