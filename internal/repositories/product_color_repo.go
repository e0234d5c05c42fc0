package repositories

import (
	"context"

	"rentmart/internal/models"

	"github.com/google/uuid"
)

type ProductColorRepository interface {
	Create(ctx context.Context, color *models.ProductColor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductColor, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.ProductColor, error)
	ListAll(ctx context.Context) ([]*models.ProductColor, error)
	UpdateStock(ctx context.Context, id uuid.UUID, stockAvailable int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productColorRepo struct {
	db Database
}

func NewProductColorRepo(db Database) ProductColorRepository {
	return &productColorRepo{db: db}
}

func (r *productColorRepo) Create(ctx context.Context, color *models.ProductColor) error {
	query := `
		INSERT INTO product_colors (id, product_id, color, stock_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, color.ID, color.ProductID, color.Color, color.StockAvailable)
	return err
}

func (r *productColorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductColor, error) {
	color := &models.ProductColor{}
	query := `
		SELECT id, product_id, color, stock_available, created_at, updated_at
		FROM product_colors
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&color.ID, &color.ProductID, &color.Color, &color.StockAvailable, &color.CreatedAt, &color.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return color, nil
}

func (r *productColorRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.ProductColor, error) {
	query := `
		SELECT id, product_id, color, stock_available, created_at, updated_at
		FROM product_colors
		WHERE product_id = $1
		ORDER BY color
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colors []*models.ProductColor
	for rows.Next() {
		color := &models.ProductColor{}
		if err := rows.Scan(&color.ID, &color.ProductID, &color.Color, &color.StockAvailable, &color.CreatedAt, &color.UpdatedAt); err != nil {
			return nil, err
		}
		colors = append(colors, color)
	}
	return colors, rows.Err()
}

func (r *productColorRepo) ListAll(ctx context.Context) ([]*models.ProductColor, error) {
	query := `
		SELECT id, product_id, color, stock_available, created_at, updated_at
		FROM product_colors
		ORDER BY product_id, color
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colors []*models.ProductColor
	for rows.Next() {
		color := &models.ProductColor{}
		if err := rows.Scan(&color.ID, &color.ProductID, &color.Color, &color.StockAvailable, &color.CreatedAt, &color.UpdatedAt); err != nil {
			return nil, err
		}
		colors = append(colors, color)
	}
	return colors, rows.Err()
}

func (r *productColorRepo) UpdateStock(ctx context.Context, id uuid.UUID, stockAvailable int) error {
	query := `UPDATE product_colors SET stock_available = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, stockAvailable, id)
	return err
}

func (r *productColorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM product_colors WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
