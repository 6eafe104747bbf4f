package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/creditgate/internal/adapter/http/dto"
	"github.com/iho/creditgate/internal/domain"
	"github.com/iho/creditgate/internal/usecase"
)

// ValidationService runs full credit validations.
type ValidationService interface {
	Validate(ctx context.Context, input usecase.ValidateInput) (*domain.ValidationResult, error)
}

// QuickStatusService classifies customers for list views.
type QuickStatusService interface {
	QuickStatus(ctx context.Context, customerID, companyID string, mode domain.VisibilityMode) (domain.QuickStatus, error)
	BatchQuickStatus(ctx context.Context, customerIDs []string, companyID string, mode domain.VisibilityMode) (map[string]domain.QuickStatus, error)
}

// ValidationHandler handles credit validation HTTP requests.
type ValidationHandler struct {
	validationSvc ValidationService
	quickSvc      QuickStatusService
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(validationSvc ValidationService, quickSvc QuickStatusService) *ValidationHandler {
	return &ValidationHandler{
		validationSvc: validationSvc,
		quickSvc:      quickSvc,
	}
}

// Validate runs a full credit validation for a prospective order.
func (h *ValidationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.validationSvc.Validate(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "validation failed", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ValidationFromDomain(result))
}

// QuickStatus returns the cheap classification for one customer.
func (h *ValidationHandler) QuickStatus(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	companyID := r.URL.Query().Get("company_id")
	mode := domain.VisibilityMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = domain.VisibilityStandard
	}

	status, err := h.quickSvc.QuickStatus(r.Context(), customerID, companyID, mode)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get credit status", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.QuickStatusFromDomain(status))
}

// BatchQuickStatus classifies a set of customers in one call.
func (h *ValidationHandler) BatchQuickStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchQuickStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	statuses, err := h.quickSvc.BatchQuickStatus(r.Context(), req.CustomerIDs, req.CompanyID, req.Mode())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to classify batch", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BatchQuickStatusFromDomain(statuses))
}
