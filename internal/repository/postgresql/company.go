package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hr-data-service/internal/domain/company"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/apperror"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db database.Querier
}

func NewCompanyRepository(db database.Querier) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name
		FROM companies
		WHERE id = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, id).Scan(&found.ID, &found.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Store("get company by id", err)
	}

	return &found, nil
}

// GetByName implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByName(ctx context.Context, name string) (*company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name
		FROM companies
		WHERE name = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, name).Scan(&found.ID, &found.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Store("get company by name", err)
	}

	return &found, nil
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name)
		VALUES ($1)
		RETURNING id, name
	`

	var created company.Company
	err := q.QueryRow(ctx, query, newCompany.Name).Scan(&created.ID, &created.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, apperror.Store("create company", err)
	}
	return created, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, updated company.Company) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `UPDATE companies SET name = $1 WHERE id = $2`, updated.Name, updated.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return company.ErrCompanyNameExists
		}
		return apperror.Store("update company", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// Remove implements company.CompanyRepository.
func (c *companyRepositoryImpl) Remove(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return company.ErrCompanyHasEmployees
		}
		return apperror.Store("remove company", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
