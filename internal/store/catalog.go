package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/bfarinango/student-store/internal/models"
)

// Catalog is the read-mostly product collection.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// ProductFilter narrows and orders a catalog listing. Category is a
// case-insensitive substring match; Sort is "price" or "name", both
// ascending. Zero values mean no filtering and insertion order.
type ProductFilter struct {
	Category string
	Sort     string
}

// ProductFields is the writable subset of a product used by Create
// and Update. Pointer fields distinguish "absent" from zero values on
// partial updates.
type ProductFields struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Category    *string
}

func (c *Catalog) List(filter ProductFilter) ([]models.Product, error) {
	q := c.db.Model(&models.Product{})

	if filter.Category != "" {
		pattern := "%" + strings.ToLower(filter.Category) + "%"
		q = q.Where("LOWER(category) LIKE ?", pattern)
	}

	switch filter.Sort {
	case "price":
		q = q.Order("price asc")
	case "name":
		q = q.Order("name asc")
	}

	products := []models.Product{}
	if err := q.Find(&products).Error; err != nil {
		return nil, wrapDB(err, "list products")
	}
	return products, nil
}

func (c *Catalog) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := c.db.First(&product, id).Error; err != nil {
		return nil, wrapDB(err, "get product")
	}
	return &product, nil
}

func (c *Catalog) Create(fields ProductFields) (*models.Product, error) {
	if fields.Name == nil || *fields.Name == "" {
		return nil, validationErr("name is required")
	}
	if fields.Price == nil {
		return nil, validationErr("price is required")
	}
	if *fields.Price < 0 {
		return nil, validationErr("price must not be negative")
	}
	if fields.Category == nil || *fields.Category == "" {
		return nil, validationErr("category is required")
	}

	product := models.Product{
		Name:     *fields.Name,
		Price:    *fields.Price,
		Category: *fields.Category,
	}
	if fields.Description != nil {
		product.Description = *fields.Description
	}
	if fields.ImageURL != nil {
		product.ImageURL = *fields.ImageURL
	}

	if err := c.db.Create(&product).Error; err != nil {
		return nil, wrapDB(err, "create product")
	}
	return &product, nil
}

func (c *Catalog) Update(id uint, fields ProductFields) (*models.Product, error) {
	var product models.Product
	if err := c.db.First(&product, id).Error; err != nil {
		return nil, wrapDB(err, "get product")
	}

	updates := map[string]interface{}{}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Price != nil {
		if *fields.Price < 0 {
			return nil, validationErr("price must not be negative")
		}
		updates["price"] = *fields.Price
	}
	if fields.ImageURL != nil {
		updates["image_url"] = *fields.ImageURL
	}
	if fields.Category != nil {
		updates["category"] = *fields.Category
	}

	if len(updates) > 0 {
		if err := c.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, wrapDB(err, "update product")
		}
	}
	return &product, nil
}

func (c *Catalog) Delete(id uint) error {
	res := c.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return wrapDB(res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
