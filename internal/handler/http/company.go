package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-data-service/internal/domain/company"
	"github.com/cmlabs-hris/hr-data-service/internal/handler/http/response"
)

type CompanyHandler interface {
	GetCompany(w http.ResponseWriter, r *http.Request)
	CreateCompany(w http.ResponseWriter, r *http.Request)
	UpdateCompany(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{
		companyService: companyService,
	}
}

// GetCompany implements CompanyHandler
func (h *companyHandlerImpl) GetCompany(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.GetCompanyByName(r.Context(), pathParam(r, "companyName"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateCompany implements CompanyHandler
func (h *companyHandlerImpl) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req company.CompanyModel
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.companyService.CreateCompany(r.Context(), req)
	if err != nil {
		slog.Error("failed to create company", "company_name", req.Name, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, companyLocation(r, result.Name), "Company created successfully", result)
}

// UpdateCompany implements CompanyHandler. The path names the company to
// rename; the body carries the new name.
func (h *companyHandlerImpl) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req company.CompanyModel
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	currentName := pathParam(r, "companyName")
	result, err := h.companyService.UpdateCompany(r.Context(), currentName, req)
	if err != nil {
		slog.Error("failed to update company", "company_name", currentName, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully", result)
}
