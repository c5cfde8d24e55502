package company

import "context"

// CompanyRepository is keyed single-row access to the companies table.
// Lookups return a nil company and a nil error when nothing matches.
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetByName(ctx context.Context, name string) (*Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, c Company) error
	Remove(ctx context.Context, id int64) error
}
