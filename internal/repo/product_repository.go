package repo

import "github.com/ravikant-sharma/shopledger/internal/models"

// ProductRepository defines the interface for catalog data operations.
// Stock quantities are never written through this interface; every stock
// change goes through the LedgerRepository.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
}
