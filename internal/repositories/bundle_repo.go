package repositories

import (
	"context"

	"rentmart/internal/models"

	"github.com/google/uuid"
)

type BundleRepository interface {
	ListComponents(ctx context.Context, bundleID uuid.UUID) ([]*models.BundleComponent, error)
	AddComponent(ctx context.Context, component *models.BundleComponent) error
	DeleteComponents(ctx context.Context, bundleID uuid.UUID) error
}

type bundleRepo struct {
	db Database
}

func NewBundleRepo(db Database) BundleRepository {
	return &bundleRepo{db: db}
}

// ListComponents returns the component rows of a bundle joined with each
// component's current name and price. A component whose product was deleted
// is simply absent from the result.
func (r *bundleRepo) ListComponents(ctx context.Context, bundleID uuid.UUID) ([]*models.BundleComponent, error) {
	query := `
		SELECT bc.bundle_id, bc.component_product_id, bc.quantity, p.name, p.rental_price
		FROM bundle_components bc
		JOIN products p ON p.id = bc.component_product_id
		WHERE bc.bundle_id = $1
		ORDER BY p.name
	`
	rows, err := r.db.Query(ctx, query, bundleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []*models.BundleComponent
	for rows.Next() {
		component := &models.BundleComponent{}
		if err := rows.Scan(&component.BundleID, &component.ComponentProductID, &component.Quantity, &component.ComponentName, &component.ComponentPrice); err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return components, rows.Err()
}

func (r *bundleRepo) AddComponent(ctx context.Context, component *models.BundleComponent) error {
	query := `
		INSERT INTO bundle_components (bundle_id, component_product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (bundle_id, component_product_id) DO UPDATE SET quantity = EXCLUDED.quantity
	`
	_, err := r.db.Exec(ctx, query, component.BundleID, component.ComponentProductID, component.Quantity)
	return err
}

func (r *bundleRepo) DeleteComponents(ctx context.Context, bundleID uuid.UUID) error {
	query := `DELETE FROM bundle_components WHERE bundle_id = $1`
	_, err := r.db.Exec(ctx, query, bundleID)
	return err
}
