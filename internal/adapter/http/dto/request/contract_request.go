package request

import (
	"encoding/json"

	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase"
)

// GenerateContractRequest identifies the records a contract is assembled
// from. All five ids are required; the use case re-validates and reports
// every missing one.
type GenerateContractRequest struct {
	ProjectID     string `json:"project_id"`
	ScopeOfWorkID string `json:"scope_of_work_id"`
	QuoteID       string `json:"quote_id"`
	HomeownerID   string `json:"homeowner_id"`
	ContractorID  string `json:"contractor_id"`
}

func (r GenerateContractRequest) ToCommand() usecase.GenerateContractRequest {
	return usecase.GenerateContractRequest{
		ProjectID:     r.ProjectID,
		ScopeOfWorkID: r.ScopeOfWorkID,
		QuoteID:       r.QuoteID,
		HomeownerID:   r.HomeownerID,
		ContractorID:  r.ContractorID,
	}
}

type RequestSignatureRequest struct {
	SignerEmail     string `json:"signer_email" binding:"required,email"`
	Role            string `json:"role" binding:"required"`
	SignatureType   string `json:"signature_type"`
	WitnessRequired bool   `json:"witness_required"`
	ExpiryDays      int    `json:"expiry_days"`
	ReminderDays    int    `json:"reminder_days"`
	RequestedBy     string `json:"requested_by" binding:"required"`
}

func (r RequestSignatureRequest) ToInput() usecase.SignatureRequestInput {
	return usecase.SignatureRequestInput{
		SignerEmail:     r.SignerEmail,
		Role:            entities.SignerRole(r.Role),
		SignatureType:   r.SignatureType,
		WitnessRequired: r.WitnessRequired,
		ExpiryDays:      r.ExpiryDays,
		ReminderDays:    r.ReminderDays,
		RequestedBy:     r.RequestedBy,
	}
}

type ProcessSignatureRequest struct {
	SignatureData    string `json:"signature_data" binding:"required"`
	VerificationCode string `json:"verification_code" binding:"required"`
}

type CompleteMilestoneRequest struct {
	CompletedBy string `json:"completed_by" binding:"required"`
	Notes       string `json:"notes"`
}

type RecordPaymentRequest struct {
	MilestoneID   string  `json:"milestone_id"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	RetentionHeld float64 `json:"retention_held"`
	Method        string  `json:"method"`
	Reference     string  `json:"reference"`
	RecordedBy    string  `json:"recorded_by" binding:"required"`

	CollectNow      bool            `json:"collect_now"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
}

func (r RecordPaymentRequest) ToInput() usecase.PaymentInput {
	return usecase.PaymentInput{
		MilestoneID:     r.MilestoneID,
		Amount:          r.Amount,
		RetentionHeld:   r.RetentionHeld,
		Method:          r.Method,
		Reference:       r.Reference,
		CollectNow:      r.CollectNow,
		ProviderPayload: r.ProviderPayload,
	}
}

type AddVariationRequest struct {
	Description string  `json:"description" binding:"required"`
	CostDelta   float64 `json:"cost_delta"`
	TimeDelta   int     `json:"time_delta_days"`
	RequestedBy string  `json:"requested_by" binding:"required"`
}

func (r AddVariationRequest) ToInput() usecase.VariationInput {
	return usecase.VariationInput{
		Description: r.Description,
		CostDelta:   r.CostDelta,
		TimeDelta:   r.TimeDelta,
	}
}

type TransitionRequest struct {
	Actor  string `json:"actor" binding:"required"`
	Reason string `json:"reason"`
}
