package repositories

import (
	"context"

	"rentmart/internal/models"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Product, error)
	ListPhysical(ctx context.Context) ([]*models.Product, error)
	UpdateStockTotal(ctx context.Context, id uuid.UUID, stockTotal int) error
	UpdateRentalPrice(ctx context.Context, id uuid.UUID, rentalPrice float64) error
	ListSizes(ctx context.Context, productID uuid.UUID) ([]*models.ProductSize, error)
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `id, name, is_bundle, has_colors, has_sizes, color_slot, rental_price, stock_total, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	product := &models.Product{}
	err := row.Scan(&product.ID, &product.Name, &product.IsBundle, &product.HasColors, &product.HasSizes, &product.ColorSlot, &product.RentalPrice, &product.StockTotal, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, is_bundle, has_colors, has_sizes, color_slot, rental_price, stock_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, product.ID, product.Name, product.IsBundle, product.HasColors, product.HasSizes, product.ColorSlot, product.RentalPrice, product.StockTotal)
	return err
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`
	return scanProduct(r.db.QueryRow(ctx, query, id))
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, is_bundle = $2, has_colors = $3, has_sizes = $4, color_slot = $5, rental_price = $6, stock_total = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query, product.Name, product.IsBundle, product.HasColors, product.HasSizes, product.ColorSlot, product.RentalPrice, product.StockTotal, product.ID)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *productRepo) List(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// ListPhysical returns products that represent real stock. Bundles are
// excluded; they are accounting shortcuts over their components.
func (r *productRepo) ListPhysical(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_bundle = false
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepo) UpdateStockTotal(ctx context.Context, id uuid.UUID, stockTotal int) error {
	query := `UPDATE products SET stock_total = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, stockTotal, id)
	return err
}

func (r *productRepo) UpdateRentalPrice(ctx context.Context, id uuid.UUID, rentalPrice float64) error {
	query := `UPDATE products SET rental_price = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, rentalPrice, id)
	return err
}

func (r *productRepo) ListSizes(ctx context.Context, productID uuid.UUID) ([]*models.ProductSize, error) {
	query := `
		SELECT id, product_id, size, rental_price
		FROM product_sizes
		WHERE product_id = $1
		ORDER BY size
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sizes []*models.ProductSize
	for rows.Next() {
		size := &models.ProductSize{}
		if err := rows.Scan(&size.ID, &size.ProductID, &size.Size, &size.RentalPrice); err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, rows.Err()
}
