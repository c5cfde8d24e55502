package company

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hr-data-service/internal/domain/company"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/database"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/events"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/validator"
)

type CompanyServiceImpl struct {
	tx        database.Transactor
	repo      company.CompanyRepository
	publisher events.Publisher
}

func NewCompanyService(tx database.Transactor, repo company.CompanyRepository, publisher events.Publisher) company.CompanyService {
	return &CompanyServiceImpl{
		tx:        tx,
		repo:      repo,
		publisher: publisher,
	}
}

// GetCompanyByName implements company.CompanyService.
func (c *CompanyServiceImpl) GetCompanyByName(ctx context.Context, name string) (company.CompanyModel, error) {
	if validator.IsEmpty(name) {
		return company.CompanyModel{}, company.ErrCompanyNameRequired
	}

	found, err := c.repo.GetByName(ctx, name)
	if err != nil {
		return company.CompanyModel{}, err
	}
	if found == nil {
		return company.CompanyModel{}, company.ErrCompanyNotFound
	}

	return company.ToModel(*found), nil
}

// CreateCompany implements company.CompanyService. Duplicate names are rejected
// by the unique index on companies.name.
func (c *CompanyServiceImpl) CreateCompany(ctx context.Context, req company.CompanyModel) (company.CompanyModel, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyModel{}, err
	}

	created, err := c.repo.Create(ctx, company.Company{Name: req.Name})
	if err != nil {
		return company.CompanyModel{}, err
	}

	slog.Info("company created", "company_id", created.ID, "company_name", created.Name)
	c.publisher.Publish(ctx, events.NewCompanyEvent(events.CompanyCreated, created.Name))

	return company.ToModel(created), nil
}

// UpdateCompany implements company.CompanyService.
func (c *CompanyServiceImpl) UpdateCompany(ctx context.Context, currentName string, req company.CompanyModel) (company.CompanyModel, error) {
	if validator.IsEmpty(currentName) {
		return company.CompanyModel{}, company.ErrCompanyNameRequired
	}
	if err := req.Validate(); err != nil {
		return company.CompanyModel{}, err
	}

	var (
		renamed company.Company
		changed bool
	)
	err := c.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := c.repo.GetByName(txCtx, currentName)
		if err != nil {
			return err
		}
		if existing == nil {
			return company.ErrCompanyNotFound
		}

		renamed = company.Company{ID: existing.ID, Name: req.Name}
		if existing.Name == renamed.Name {
			return nil
		}
		changed = true
		return c.repo.Update(txCtx, renamed)
	})
	if err != nil {
		return company.CompanyModel{}, err
	}
	if !changed {
		return company.ToModel(renamed), nil
	}

	slog.Info("company updated", "company_id", renamed.ID, "previous_name", currentName, "company_name", renamed.Name)
	c.publisher.Publish(ctx, events.NewCompanyEvent(events.CompanyUpdated, renamed.Name))

	return company.ToModel(renamed), nil
}
