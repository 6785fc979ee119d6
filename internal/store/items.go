package store

import (
	"gorm.io/gorm"

	"github.com/bfarinango/student-store/internal/models"
)

// Items is thin CRUD over order line items. It deliberately never
// rewrites the owning order's stored total; only the order manager's
// own write paths do that. A total left stale here heals on the next
// AddItems call, and Orders.Total always reports the live sum.
type Items struct {
	db *gorm.DB
}

func NewItems(db *gorm.DB) *Items {
	return &Items{db: db}
}

// ItemPatch carries the mutable line-item fields for Update.
type ItemPatch struct {
	OrderID   *uint
	ProductID *uint
	Quantity  *uint
	Price     *float64
}

func (s *Items) Create(orderID, productID, quantity uint, price float64) (*models.OrderItem, error) {
	if orderID == 0 {
		return nil, validationErr("orderId is required")
	}
	if productID == 0 {
		return nil, validationErr("productId is required")
	}
	if quantity == 0 {
		return nil, validationErr("quantity must be a positive integer")
	}
	if price < 0 {
		return nil, validationErr("price must not be negative")
	}

	if err := s.db.First(&models.Order{}, orderID).Error; err != nil {
		return nil, wrapDB(err, "get order")
	}

	item := models.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, wrapDB(err, "create order item")
	}
	return &item, nil
}

func (s *Items) Get(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := s.db.Preload("Product").First(&item, id).Error; err != nil {
		return nil, wrapDB(err, "get order item")
	}
	return &item, nil
}

func (s *Items) List() ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	if err := s.db.Preload("Product").Find(&items).Error; err != nil {
		return nil, wrapDB(err, "list order items")
	}
	return items, nil
}

func (s *Items) Update(id uint, patch ItemPatch) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, wrapDB(err, "get order item")
	}

	updates := map[string]interface{}{}
	if patch.OrderID != nil {
		if *patch.OrderID == 0 {
			return nil, validationErr("orderId is required")
		}
		updates["order_id"] = *patch.OrderID
	}
	if patch.ProductID != nil {
		if *patch.ProductID == 0 {
			return nil, validationErr("productId is required")
		}
		updates["product_id"] = *patch.ProductID
	}
	if patch.Quantity != nil {
		if *patch.Quantity == 0 {
			return nil, validationErr("quantity must be a positive integer")
		}
		updates["quantity"] = *patch.Quantity
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, validationErr("price must not be negative")
		}
		updates["price"] = *patch.Price
	}

	if len(updates) > 0 {
		if err := s.db.Model(&item).Updates(updates).Error; err != nil {
			return nil, wrapDB(err, "update order item")
		}
	}
	return s.Get(id)
}

func (s *Items) Delete(id uint) error {
	res := s.db.Delete(&models.OrderItem{}, id)
	if res.Error != nil {
		return wrapDB(res.Error, "delete order item")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
