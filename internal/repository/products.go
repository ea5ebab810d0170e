package repository

import (
	"context"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
)

func (r *Repository) CreateProduct(product *domain.Product) error {
	query := `
		INSERT INTO products (company_id, name, description, rated_speed)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{product.CompanyID, product.Name, product.Description, product.RatedSpeed}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetProducts(companyID string) ([]*domain.Product, error) {
	query := `
		SELECT id, name, description, rated_speed, created_at
		FROM products WHERE company_id = $1
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{CompanyID: companyID}
		dst := []any{&product.ID, &product.Name, &product.Description, &product.RatedSpeed, &product.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *Repository) GetProduct(companyID string, id int64) (*domain.Product, error) {
	query := `
		SELECT name, description, rated_speed, created_at
		FROM products WHERE company_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	product := &domain.Product{
		ID:        id,
		CompanyID: companyID,
	}

	dst := []any{&product.Name, &product.Description, &product.RatedSpeed, &product.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, companyID, id).Scan(dst...); err != nil {
		return nil, err
	}

	return product, nil
}
