package store

import (
	"gorm.io/gorm"

	"github.com/bfarinango/student-store/internal/models"
)

// Orders manages the order aggregate: an order row plus its line
// items, with the stored total kept equal to the sum of
// quantity * price over the items. Every multi-step write runs in a
// single transaction so the total can never be half-applied.
type Orders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{db: db}
}

// ItemInput is one line item to attach to an order.
type ItemInput struct {
	ProductID uint
	Quantity  uint
	Price     float64
}

// OrderPatch carries the mutable order fields for Update. Items and
// the stored total are never touched through this path.
type OrderPatch struct {
	CustomerID *uint
	Status     *string
}

// Create persists a new order. When items are given, the order shell,
// its items, and the recomputed total are committed as one unit; a
// failure anywhere rolls the whole thing back.
func (o *Orders) Create(customerID uint, status string, items []ItemInput) (*models.Order, error) {
	if customerID == 0 {
		return nil, validationErr("customerId is required")
	}
	if status == "" {
		return nil, validationErr("status is required")
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	order := models.Order{
		CustomerID: customerID,
		Status:     status,
		TotalPrice: 0,
	}

	err := o.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return wrapDB(err, "create order")
		}
		if len(items) == 0 {
			return nil
		}
		if err := insertItems(tx, order.ID, items); err != nil {
			return err
		}
		return writeTotal(tx, &order)
	})
	if err != nil {
		return nil, err
	}

	return o.Get(order.ID)
}

// AddItems appends line items to an existing order and rewrites the
// stored total from all of the order's current items in the same
// transaction. Recomputing the full sum rather than adding a delta
// means a stale stored total heals here instead of drifting further.
func (o *Orders) AddItems(orderID uint, items []ItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, validationErr("at least one item is required")
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	err := o.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return wrapDB(err, "get order")
		}
		if err := insertItems(tx, order.ID, items); err != nil {
			return err
		}
		return writeTotal(tx, &order)
	})
	if err != nil {
		return nil, err
	}

	return o.Get(orderID)
}

// Total recomputes the live sum of quantity * price over the order's
// current line items, independent of the stored total. The two can
// disagree after items are written through the item manager's direct
// paths.
func (o *Orders) Total(orderID uint) (float64, error) {
	if err := o.db.First(&models.Order{}, orderID).Error; err != nil {
		return 0, wrapDB(err, "get order")
	}
	return itemSum(o.db, orderID)
}

func (o *Orders) Update(id uint, patch OrderPatch) (*models.Order, error) {
	var order models.Order
	if err := o.db.First(&order, id).Error; err != nil {
		return nil, wrapDB(err, "get order")
	}

	updates := map[string]interface{}{}
	if patch.CustomerID != nil {
		if *patch.CustomerID == 0 {
			return nil, validationErr("customerId is required")
		}
		updates["customer_id"] = *patch.CustomerID
	}
	if patch.Status != nil {
		if *patch.Status == "" {
			return nil, validationErr("status is required")
		}
		updates["status"] = *patch.Status
	}

	if len(updates) > 0 {
		if err := o.db.Model(&order).Updates(updates).Error; err != nil {
			return nil, wrapDB(err, "update order")
		}
	}
	return o.Get(id)
}

// Delete removes the order and its line items in one transaction so
// no orphaned items can remain.
func (o *Orders) Delete(id uint) error {
	return o.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return wrapDB(err, "delete order items")
		}
		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return wrapDB(res.Error, "delete order")
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (o *Orders) Get(id uint) (*models.Order, error) {
	var order models.Order
	err := o.db.Preload("Items.Product").First(&order, id).Error
	if err != nil {
		return nil, wrapDB(err, "get order")
	}
	return &order, nil
}

func (o *Orders) List() ([]models.Order, error) {
	orders := []models.Order{}
	err := o.db.Preload("Items.Product").Find(&orders).Error
	if err != nil {
		return nil, wrapDB(err, "list orders")
	}
	return orders, nil
}

func validateItems(items []ItemInput) error {
	for _, item := range items {
		if item.ProductID == 0 {
			return validationErr("productId is required for every item")
		}
		if item.Quantity == 0 {
			return validationErr("quantity must be a positive integer")
		}
		if item.Price < 0 {
			return validationErr("price must not be negative")
		}
	}
	return nil
}

func insertItems(tx *gorm.DB, orderID uint, items []ItemInput) error {
	rows := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.OrderItem{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	if err := tx.CreateInBatches(&rows, len(rows)).Error; err != nil {
		return wrapDB(err, "create order items")
	}
	return nil
}

func itemSum(tx *gorm.DB, orderID uint) (float64, error) {
	var total float64
	err := tx.Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, wrapDB(err, "sum order items")
	}
	return total, nil
}

func writeTotal(tx *gorm.DB, order *models.Order) error {
	total, err := itemSum(tx, order.ID)
	if err != nil {
		return err
	}
	if err := tx.Model(order).Update("total_price", total).Error; err != nil {
		return wrapDB(err, "update order total")
	}
	return nil
}
