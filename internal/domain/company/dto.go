package company

import (
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/validator"
)

const maxNameLength = 255

// CompanyModel is the external representation of a company.
type CompanyModel struct {
	Name string `json:"companyName"`
}

func (r *CompanyModel) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("companyName", "companyName is required")
	} else if validator.ExceedsLength(r.Name, maxNameLength) {
		errs.Add("companyName", "companyName must not exceed 255 characters")
	}

	return errs.Err()
}

func ToModel(c Company) CompanyModel {
	return CompanyModel{Name: c.Name}
}
