package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrContractNotFound     = errors.New("contract not found")
	ErrContractExists       = errors.New("contract already exists")
	ErrSignatureNotFound    = errors.New("signature not found")
	ErrMilestoneNotFound    = errors.New("milestone not found")
	ErrVariationNotFound    = errors.New("variation not found")
	ErrRequiredDataMissing  = errors.New("required data missing")
	ErrQuoteNotSelected     = errors.New("Quote must be selected before generating contract")
	ErrInvalidVerification  = errors.New("invalid verification code")
	ErrSignatureExpired     = errors.New("signature request expired")
	ErrInvalidTransition    = errors.New("invalid contract status transition")
	ErrMilestoneCompleted   = errors.New("milestone already completed")
	ErrPaymentExceedsValue  = errors.New("cumulative payments exceed contract value")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidContractID    = errors.New("invalid contract id")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidActor         = errors.New("invalid actor")
)

// ValidationError carries the individual messages of a failed generation
// pre-check. Nothing is persisted when it is returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// storageError wraps an infrastructure failure with the operation it broke,
// so callers can distinguish caller mistakes from store trouble without
// inspecting message text.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: storage failure: %w", op, err)
}
