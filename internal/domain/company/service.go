package company

import (
	"context"
)

type CompanyService interface {
	// GetCompanyByName returns the company whose name matches exactly.
	GetCompanyByName(ctx context.Context, name string) (CompanyModel, error)

	// CreateCompany persists a new company; names are unique.
	CreateCompany(ctx context.Context, req CompanyModel) (CompanyModel, error)

	// UpdateCompany renames the company currently called currentName.
	UpdateCompany(ctx context.Context, currentName string, req CompanyModel) (CompanyModel, error)
}
