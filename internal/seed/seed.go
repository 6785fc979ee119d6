// Package seed loads the static catalog fixture into the database.
package seed

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bfarinango/student-store/internal/models"
)

type catalogFile struct {
	Products []models.Product `json:"products"`
}

// Run wipes order items, orders, and products, then inserts the
// products from the JSON fixture at path. The wipe and insert share
// one transaction so a bad fixture leaves the catalog untouched.
// Returns the number of products inserted.
func Run(db *gorm.DB, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "read seed file")
	}

	var catalog catalogFile
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return 0, errors.Wrap(err, "parse seed file")
	}
	if len(catalog.Products) == 0 {
		return 0, errors.New("seed file contains no products")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Children before parents.
		if err := tx.Where("1 = 1").Delete(&models.OrderItem{}).Error; err != nil {
			return errors.Wrap(err, "clear order items")
		}
		if err := tx.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
			return errors.Wrap(err, "clear orders")
		}
		if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return errors.Wrap(err, "clear products")
		}
		if err := tx.CreateInBatches(&catalog.Products, len(catalog.Products)).Error; err != nil {
			return errors.Wrap(err, "insert products")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(catalog.Products), nil
}
