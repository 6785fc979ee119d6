package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bfarinango/student-store/internal/store"
)

type OrderItemInput struct {
	ProductID *Count  `json:"productId"`
	Quantity  *Count  `json:"quantity"`
	Price     *Number `json:"price"`
}

type CreateOrderRequest struct {
	CustomerID *Count           `json:"customerId"`
	Status     string           `json:"status"`
	Items      []OrderItemInput `json:"items"`
}

// AddItemsRequest accepts either a single line item or an items
// array; the checkout client sends the array form.
type AddItemsRequest struct {
	OrderItemInput
	Items []OrderItemInput `json:"items"`
}

type UpdateOrderRequest struct {
	CustomerID *Count  `json:"customerId"`
	Status     *string `json:"status"`
}

func toItemInputs(inputs []OrderItemInput) ([]store.ItemInput, bool) {
	items := make([]store.ItemInput, 0, len(inputs))
	for _, in := range inputs {
		if in.ProductID == nil || in.Quantity == nil || in.Price == nil {
			return nil, false
		}
		items = append(items, store.ItemInput{
			ProductID: uint(*in.ProductID),
			Quantity:  uint(*in.Quantity),
			Price:     float64(*in.Price),
		})
	}
	return items, true
}

func (a *API) ListOrders(c *gin.Context) {
	orders, err := a.orders.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (a *API) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := a.orders.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (a *API) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CustomerID == nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId and status are required"})
		return
	}

	items, ok := toItemInputs(req.Items)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId, quantity, and price are required for every item"})
		return
	}

	order, err := a.orders.Create(uint(*req.CustomerID), req.Status, items)
	if err != nil {
		writeError(c, err)
		return
	}

	if a.notifier != nil {
		go a.notifier.OrderPlaced(order)
	}

	c.JSON(http.StatusCreated, order)
}

func (a *API) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.OrderPatch{Status: req.Status}
	if req.CustomerID != nil {
		customerID := uint(*req.CustomerID)
		patch.CustomerID = &customerID
	}

	order, err := a.orders.Update(id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (a *API) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := a.orders.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) AddOrderItems(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AddItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputs := req.Items
	if len(inputs) == 0 {
		inputs = []OrderItemInput{req.OrderItemInput}
	}

	items, itemsOK := toItemInputs(inputs)
	if !itemsOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId, quantity, and price are required for every item"})
		return
	}

	order, err := a.orders.AddItems(id, items)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (a *API) GetOrderTotal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	total, err := a.orders.Total(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}
