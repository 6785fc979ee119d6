package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bfarinango/student-store/internal/models"
)

func TestCreateOrderHandler(t *testing.T) {
	router, testDB := setupRouter(t)

	sticker := models.Product{Name: "Sticker Sheet", Price: 5.00, Category: "supplies"}
	granola := models.Product{Name: "Granola Bar", Price: 3.50, Category: "food"}
	testDB.Create(&sticker)
	testDB.Create(&granola)

	t.Run("creates an order with items and a correct total", func(t *testing.T) {
		body := map[string]interface{}{
			"customerId": 123,
			"status":     "pending",
			"items": []map[string]interface{}{
				{"productId": sticker.ID, "quantity": 2, "price": 5.00},
				{"productId": granola.ID, "quantity": 1, "price": 3.50},
			},
		}
		recorder := performRequest(router, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var order models.Order
		decodeBody(t, recorder, &order)
		assert.Greater(t, order.ID, uint(0))
		assert.Equal(t, uint(123), order.CustomerID)
		assert.Equal(t, "pending", order.Status)
		assert.Equal(t, 13.50, order.TotalPrice)
		assert.Len(t, order.Items, 2)
		assert.NotNil(t, order.Items[0].Product)

		var stored models.Order
		testDB.First(&stored, order.ID)
		assert.Equal(t, 13.50, stored.TotalPrice)
	})

	t.Run("creates an empty order with total zero", func(t *testing.T) {
		body := map[string]interface{}{"customerId": 7, "status": "pending"}
		recorder := performRequest(router, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var order models.Order
		decodeBody(t, recorder, &order)
		assert.Equal(t, 0.0, order.TotalPrice)
	})

	t.Run("coerces quantities and prices sent as strings", func(t *testing.T) {
		body := map[string]interface{}{
			"customerId": "123",
			"status":     "pending",
			"items": []map[string]interface{}{
				{"productId": sticker.ID, "quantity": "2", "price": "5.00"},
			},
		}
		recorder := performRequest(router, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var order models.Order
		decodeBody(t, recorder, &order)
		assert.Equal(t, 10.00, order.TotalPrice)
	})

	t.Run("rejects a malformed quantity with 400", func(t *testing.T) {
		body := map[string]interface{}{
			"customerId": 123,
			"status":     "pending",
			"items": []map[string]interface{}{
				{"productId": sticker.ID, "quantity": "two", "price": 5.00},
			},
		}
		recorder := performRequest(router, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("requires customerId and status", func(t *testing.T) {
		var before int64
		testDB.Model(&models.Order{}).Count(&before)

		for _, body := range []map[string]interface{}{
			{"status": "pending"},
			{"customerId": 123},
		} {
			recorder := performRequest(router, http.MethodPost, "/orders", body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var response map[string]string
			decodeBody(t, recorder, &response)
			assert.Equal(t, "customerId and status are required", response["error"])
		}

		var after int64
		testDB.Model(&models.Order{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("requires every item to be complete", func(t *testing.T) {
		body := map[string]interface{}{
			"customerId": 123,
			"status":     "pending",
			"items": []map[string]interface{}{
				{"productId": sticker.ID, "quantity": 1},
			},
		}
		recorder := performRequest(router, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAddOrderItemsHandler(t *testing.T) {
	router, testDB := setupRouter(t)

	sticker := models.Product{Name: "Sticker Sheet", Price: 5.00, Category: "supplies"}
	granola := models.Product{Name: "Granola Bar", Price: 3.50, Category: "food"}
	pens := models.Product{Name: "Gel Pen Pack", Price: 2.00, Category: "supplies"}
	testDB.Create(&sticker)
	testDB.Create(&granola)
	testDB.Create(&pens)

	createBody := map[string]interface{}{
		"customerId": 123,
		"status":     "pending",
		"items": []map[string]interface{}{
			{"productId": sticker.ID, "quantity": 2, "price": 5.00},
			{"productId": granola.ID, "quantity": 1, "price": 3.50},
		},
	}
	recorder := performRequest(router, http.MethodPost, "/orders", createBody)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	var order models.Order
	decodeBody(t, recorder, &order)
	assert.Equal(t, 13.50, order.TotalPrice)

	t.Run("single item form updates stored and recomputed totals", func(t *testing.T) {
		body := map[string]interface{}{"productId": pens.ID, "quantity": 1, "price": 2.00}
		recorder := performRequest(router, http.MethodPost, fmt.Sprintf("/orders/%d/items", order.ID), body)
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var updated models.Order
		decodeBody(t, recorder, &updated)
		assert.Equal(t, 15.50, updated.TotalPrice)
		assert.Len(t, updated.Items, 3)

		recorder = performRequest(router, http.MethodGet, fmt.Sprintf("/orders/%d/total", order.ID), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		var total map[string]float64
		decodeBody(t, recorder, &total)
		assert.Equal(t, 15.50, total["total"])
	})

	t.Run("items array form", func(t *testing.T) {
		body := map[string]interface{}{
			"items": []map[string]interface{}{
				{"productId": pens.ID, "quantity": 2, "price": 2.00},
			},
		}
		recorder := performRequest(router, http.MethodPost, fmt.Sprintf("/orders/%d/items", order.ID), body)
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var updated models.Order
		decodeBody(t, recorder, &updated)
		assert.Equal(t, 19.50, updated.TotalPrice)
	})

	t.Run("returns 404 for an unknown order", func(t *testing.T) {
		body := map[string]interface{}{"productId": pens.ID, "quantity": 1, "price": 2.00}
		recorder := performRequest(router, http.MethodPost, "/orders/9999/items", body)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("returns 400 for an incomplete item", func(t *testing.T) {
		body := map[string]interface{}{"productId": pens.ID}
		recorder := performRequest(router, http.MethodPost, fmt.Sprintf("/orders/%d/items", order.ID), body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response map[string]string
		decodeBody(t, recorder, &response)
		assert.Equal(t, "productId, quantity, and price are required for every item", response["error"])
	})
}

func TestOrderCRUDHandlers(t *testing.T) {
	router, testDB := setupRouter(t)

	mug := models.Product{Name: "Enamel Mug", Price: 8.25, Category: "accessories"}
	testDB.Create(&mug)

	createBody := map[string]interface{}{
		"customerId": 1,
		"status":     "pending",
		"items": []map[string]interface{}{
			{"productId": mug.ID, "quantity": 1, "price": 8.25},
		},
	}
	recorder := performRequest(router, http.MethodPost, "/orders", createBody)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	var order models.Order
	decodeBody(t, recorder, &order)

	t.Run("lists orders with nested items and products", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/orders", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var orders []models.Order
		decodeBody(t, recorder, &orders)
		assert.Len(t, orders, 1)
		assert.Len(t, orders[0].Items, 1)
		assert.NotNil(t, orders[0].Items[0].Product)
		assert.Equal(t, "Enamel Mug", orders[0].Items[0].Product.Name)
	})

	t.Run("gets an order by id", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var got models.Order
		decodeBody(t, recorder, &got)
		assert.Equal(t, order.ID, got.ID)
	})

	t.Run("returns 404 for an unknown order", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/orders/9999", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("updates customer and status without touching the total", func(t *testing.T) {
		body := map[string]interface{}{"customerId": 456, "status": "ready"}
		recorder := performRequest(router, http.MethodPut, fmt.Sprintf("/orders/%d", order.ID), body)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var updated models.Order
		decodeBody(t, recorder, &updated)
		assert.Equal(t, uint(456), updated.CustomerID)
		assert.Equal(t, "ready", updated.Status)
		assert.Equal(t, 8.25, updated.TotalPrice)
	})

	t.Run("deletes an order and its items", func(t *testing.T) {
		recorder := performRequest(router, http.MethodDelete, fmt.Sprintf("/orders/%d", order.ID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		recorder = performRequest(router, http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var orphans int64
		testDB.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&orphans)
		assert.Equal(t, int64(0), orphans)
	})

	t.Run("deleting a nonexistent order is a 404", func(t *testing.T) {
		recorder := performRequest(router, http.MethodDelete, "/orders/9999", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
