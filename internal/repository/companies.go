package repository

import (
	"context"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
)

// CreateCompany inserts the company together with its first company admin.
func (r *Repository) CreateCompany(company *domain.Company, admin *domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO companies (id, name, description, country_code)
		VALUES ($1, $2, $3, $4)
		RETURNING status, created_at, version
	`
	args := []any{company.ID, company.Name, company.Description, company.CountryCode}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&company.Status, &company.CreatedAt, &company.Version); err != nil {
		return err
	}

	query = `
		INSERT INTO users (username, password_hash, full_name, email, company_id, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at, version
	`
	args = []any{admin.Username, admin.PasswordHash, admin.FullName, admin.Email, company.ID, admin.Role}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&admin.ID, &admin.IsActive, &admin.CreatedAt, &admin.Version); err != nil {
		return err
	}
	admin.CompanyID = &company.ID

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllCompanies() ([]*domain.Company, error) {
	query := `
		SELECT id, name, description, country_code, status, created_at, version
		FROM companies
		ORDER BY created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company := &domain.Company{}
		dst := []any{&company.ID, &company.Name, &company.Description, &company.CountryCode, &company.Status, &company.CreatedAt, &company.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *Repository) GetCompanyByID(id string) (*domain.Company, error) {
	query := `
		SELECT name, description, country_code, status, created_at, version
		FROM companies WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	company := &domain.Company{
		ID: id,
	}

	dst := []any{&company.Name, &company.Description, &company.CountryCode, &company.Status, &company.CreatedAt, &company.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return company, nil
}

// DisableCompany marks the company disabled and deactivates all of its users.
func (r *Repository) DisableCompany(company *domain.Company) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE companies
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING status, version
	`
	args := []any{domain.CompanyDisabled, company.ID, company.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&company.Status, &company.Version); err != nil {
		return err
	}

	query = `UPDATE users SET is_active = FALSE, version = version + 1 WHERE company_id = $1`
	if _, err := tx.ExecContext(ctx, query, company.ID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
