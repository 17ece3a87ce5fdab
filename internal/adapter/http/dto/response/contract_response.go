package response

import (
	"time"

	"renova_contracts/internal/domain/entities"
)

// ContractResponse is the outward projection of a contract. Signature
// secrets (code and token hashes) are stripped before anything leaves the
// service.
type ContractResponse struct {
	ID             string                 `json:"id"`
	ContractNumber string                 `json:"contract_number"`
	ProjectID      string                 `json:"project_id"`
	QuoteID        string                 `json:"quote_id"`
	HomeownerID    string                 `json:"homeowner_id"`
	ContractorID   string                 `json:"contractor_id"`
	Status         string                 `json:"status"`
	Version        int64                  `json:"version"`
	Terms          entities.ContractTerms `json:"terms"`
	Signatures     []SignatureResponse    `json:"signatures"`
	Milestones     []entities.Milestone   `json:"milestones"`
	Variations     []entities.Variation   `json:"variations"`
	Payments       []entities.Payment     `json:"payments"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	SignedAt       *time.Time             `json:"signed_at,omitempty"`
	TerminatedAt   *time.Time             `json:"terminated_at,omitempty"`
}

type SignatureResponse struct {
	ID          string     `json:"id"`
	SignerEmail string     `json:"signer_email"`
	SignerName  string     `json:"signer_name,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	Required    bool       `json:"required"`
	RequestedAt *time.Time `json:"requested_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	SignedAt    *time.Time `json:"signed_at,omitempty"`
}

func FromContract(c entities.Contract) ContractResponse {
	sigs := make([]SignatureResponse, 0, len(c.Signatures))
	for _, s := range c.Signatures {
		sigs = append(sigs, SignatureResponse{
			ID:          s.ID,
			SignerEmail: s.SignerEmail,
			SignerName:  s.SignerName,
			Role:        string(s.Role),
			Status:      string(s.Status),
			Required:    s.Required,
			RequestedAt: s.RequestedAt,
			ExpiresAt:   s.ExpiresAt,
			SignedAt:    s.SignedAt,
		})
	}
	return ContractResponse{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		ProjectID:      c.ProjectID,
		QuoteID:        c.QuoteID,
		HomeownerID:    c.HomeownerID,
		ContractorID:   c.ContractorID,
		Status:         string(c.Status),
		Version:        c.Version,
		Terms:          c.Terms,
		Signatures:     sigs,
		Milestones:     c.Milestones,
		Variations:     c.Variations,
		Payments:       c.Payments,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		SignedAt:       c.SignedAt,
		TerminatedAt:   c.TerminatedAt,
	}
}

// GeneratedContractResponse pairs a freshly generated contract with the
// advisory recommendation strings.
type GeneratedContractResponse struct {
	Contract        ContractResponse `json:"contract"`
	Recommendations []string         `json:"recommendations,omitempty"`
}

// SignatureRequestedResponse returns the signing link for delivery to the
// signer. The verification code intentionally never appears here: it goes
// out through the notification channel only.
type SignatureRequestedResponse struct {
	Contract    ContractResponse `json:"contract"`
	SignatureID string           `json:"signature_id"`
	SigningLink string           `json:"signing_link"`
}

type PaymentRecordedResponse struct {
	Contract ContractResponse `json:"contract"`
	Payment  entities.Payment `json:"payment"`
}

type VariationAddedResponse struct {
	Contract  ContractResponse   `json:"contract"`
	Variation entities.Variation `json:"variation"`
}
