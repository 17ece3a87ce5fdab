package handlers

import (
	"errors"
	"net/http"

	"renova_contracts/internal/usecase"
	"renova_contracts/pkg"
)

// mapContractError translates use-case sentinels into transport errors.
// Status codes are chosen by error kind only; message text is never
// inspected.
func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSignatureNotFound):
		return pkg.NewDomainErrorSimple("SIGNATURE_NOT_FOUND", "Signature not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVariationNotFound):
		return pkg.NewDomainErrorSimple("VARIATION_NOT_FOUND", "Variation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequiredDataMissing):
		return pkg.NewDomainErrorSimple("REQUIRED_DATA_MISSING", "Required generation input missing", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidVerification):
		return pkg.NewDomainErrorSimple("INVALID_VERIFICATION_CODE", "Invalid verification code", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Contract status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractExists):
		return pkg.NewDomainErrorSimple("CONTRACT_EXISTS", "Contract already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrMilestoneCompleted):
		return pkg.NewDomainErrorSimple("MILESTONE_ALREADY_COMPLETED", "Milestone already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentExceedsValue):
		return pkg.NewDomainErrorSimple("PAYMENT_EXCEEDS_VALUE", "Cumulative payments exceed contract value", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
