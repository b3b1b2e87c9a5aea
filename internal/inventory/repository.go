// Package inventory persists product records in the embedded store.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/pmarquez/stockbook/pkg/db"
	"github.com/pmarquez/stockbook/pkg/db/models"
	pkgerrors "github.com/pmarquez/stockbook/pkg/errors"
	"gorm.io/gorm"
)

// Repository wires product persistence to the GORM connection.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new product row. A name collision surfaces as a
// DUPLICATE_NAME error so callers can branch into the update path.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if db.IsDuplicateName(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDuplicateName, err, fmt.Sprintf("product %q already exists", product.Name))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}
	return product, nil
}

// GetByID loads a product by its generated identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "product_id = ?", id).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, fmt.Sprintf("no product with id %d", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product by id")
	}
	return &product, nil
}

// GetByName loads a product by its unique name.
func (r *Repository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "product_name = ?", name).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, fmt.Sprintf("no product named %q", name))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product by name")
	}
	return &product, nil
}

// Update persists the row in place.
func (r *Repository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	return product, nil
}

// List returns every stored product. Order is whatever the engine yields.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return rows, nil
}

// Upsert creates the product, or overwrites price, quantity, and timestamp of
// the existing row with the same name, keeping its identifier. The returned
// bool reports whether a new row was created.
func (r *Repository) Upsert(ctx context.Context, name string, priceCents int64, quantity int, updatedAt time.Time) (*models.Product, bool, error) {
	created, err := r.Create(ctx, &models.Product{
		Name:       name,
		PriceCents: priceCents,
		Quantity:   quantity,
		UpdatedAt:  updatedAt,
	})
	if err == nil {
		return created, true, nil
	}
	if !pkgerrors.HasCode(err, pkgerrors.CodeDuplicateName) {
		return nil, false, err
	}

	existing, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	existing.PriceCents = priceCents
	existing.Quantity = quantity
	existing.UpdatedAt = updatedAt
	updated, err := r.Update(ctx, existing)
	if err != nil {
		return nil, false, err
	}
	return updated, false, nil
}
