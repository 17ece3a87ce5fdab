package entities

import "time"

// ContractStatus represents the lifecycle of a renovation contract.
//
// Transitions are driven exclusively by the workflow use cases and are
// validated through CanTransition; the repository refuses any update that
// moves a contract along an edge not listed there.

type ContractStatus string

const (
	ContractStatusDraft            ContractStatus = "draft"
	ContractStatusPendingSignature ContractStatus = "pending-signatures"
	ContractStatusPartiallySigned  ContractStatus = "partially-signed"
	ContractStatusFullySigned      ContractStatus = "fully-signed"
	ContractStatusActive           ContractStatus = "active"
	ContractStatusSuspended        ContractStatus = "suspended"
	ContractStatusCompleted        ContractStatus = "completed"
	ContractStatusTerminated       ContractStatus = "terminated"
	ContractStatusDisputed         ContractStatus = "disputed"
	ContractStatusCancelled        ContractStatus = "cancelled"
)

var contractEdges = map[ContractStatus][]ContractStatus{
	ContractStatusDraft:            {ContractStatusPendingSignature},
	ContractStatusPendingSignature: {ContractStatusPartiallySigned},
	ContractStatusPartiallySigned:  {ContractStatusFullySigned},
	ContractStatusFullySigned:      {ContractStatusActive},
	ContractStatusActive: {
		ContractStatusCompleted,
		ContractStatusSuspended,
		ContractStatusDisputed,
		ContractStatusTerminated,
	},
}

// CanTransition reports whether moving a contract from one status to another
// follows a legal edge. Cancellation is a soft delete reachable from every
// non-terminal status.
func CanTransition(from, to ContractStatus) bool {
	if from == to {
		return true
	}
	if to == ContractStatusCancelled {
		return from != ContractStatusCompleted && from != ContractStatusTerminated && from != ContractStatusCancelled
	}
	for _, next := range contractEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a contract can no longer change status.
func (s ContractStatus) IsTerminal() bool {
	switch s {
	case ContractStatusCompleted, ContractStatusTerminated, ContractStatusCancelled:
		return true
	}
	return false
}

// PartyRole identifies which side of the contract a party is on.

type PartyRole string

const (
	PartyRoleHomeowner  PartyRole = "homeowner"
	PartyRoleContractor PartyRole = "contractor"
)

// Contract is the agreement entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI homeowner-status-index: homeowner_id / homeowner_sort ("status#timestamp")
//   - GSI contractor-status-index: contractor_id / contractor_sort ("status#timestamp")
//
// Version is an optimistic-lock counter: every write is conditional on the
// stored version matching the one that was read, so concurrent
// read-modify-write cycles cannot silently overwrite each other.
type Contract struct {
	ID            string `json:"id"`
	ProjectID     string `json:"project_id"`
	ScopeOfWorkID string `json:"scope_of_work_id"`
	QuoteID       string `json:"quote_id"`
	HomeownerID   string `json:"homeowner_id"`
	ContractorID  string `json:"contractor_id"`

	ContractNumber string         `json:"contract_number"`
	Version        int64          `json:"version"`
	Status         ContractStatus `json:"status"`
	Terms          ContractTerms  `json:"terms"`

	Signatures []Signature        `json:"signatures"`
	Milestones []Milestone        `json:"milestones"`
	Variations []Variation        `json:"variations"`
	Payments   []Payment          `json:"payments"`
	Documents  []ContractDocument `json:"documents,omitempty"`

	// VariationSeq is a durable monotonic counter backing VAR-NNN numbering.
	// It only ever grows, so numbers stay unique even if a variation is
	// removed later.
	VariationSeq int `json:"variation_seq"`

	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	SignedAt     *time.Time `json:"signed_at,omitempty"`
	TerminatedAt *time.Time `json:"terminated_at,omitempty"`
}

// SignatureStatus tracks a single signer's record.

type SignatureStatus string

const (
	SignatureStatusPending SignatureStatus = "pending"
	SignatureStatusSigned  SignatureStatus = "signed"
	SignatureStatusInvalid SignatureStatus = "invalid"
	SignatureStatusExpired SignatureStatus = "expired"
)

// SignerRole identifies the capacity in which a party signs.

type SignerRole string

const (
	SignerRoleHomeowner  SignerRole = "homeowner"
	SignerRoleContractor SignerRole = "contractor"
	SignerRoleWitness    SignerRole = "witness"
	SignerRoleGuarantor  SignerRole = "guarantor"
)

// Signature is one signer's record on a contract. Exactly one record exists
// per required signer. Secrets are stored hashed only: the raw verification
// code and the raw signing-link token never touch the store.
type Signature struct {
	ID          string          `json:"id"`
	SignerID    string          `json:"signer_id"`
	SignerEmail string          `json:"signer_email"`
	SignerName  string          `json:"signer_name,omitempty"`
	Role        SignerRole      `json:"role"`
	Status      SignatureStatus `json:"status"`
	Type        string          `json:"type,omitempty"`
	Required    bool            `json:"required"`

	VerificationCodeHash string     `json:"verification_code_hash,omitempty"`
	SigningTokenHash     string     `json:"signing_token_hash,omitempty"`
	WitnessRequired      bool       `json:"witness_required,omitempty"`
	RequestedAt          *time.Time `json:"requested_at,omitempty"`
	ExpiresAt            *time.Time `json:"expires_at,omitempty"`
	ReminderAt           *time.Time `json:"reminder_at,omitempty"`

	SignatureData string     `json:"signature_data,omitempty"`
	SignedAt      *time.Time `json:"signed_at,omitempty"`
	SignedFromIP  string     `json:"signed_from_ip,omitempty"`
	UserAgent     string     `json:"user_agent,omitempty"`
}

// RequiredSignatures returns the signer records that must reach "signed"
// before the contract counts as fully signed.
func (c *Contract) RequiredSignatures() []Signature {
	out := make([]Signature, 0, len(c.Signatures))
	for _, s := range c.Signatures {
		if s.Required {
			out = append(out, s)
		}
	}
	return out
}

// SignatureProgress reports how many required signers have signed.
func (c *Contract) SignatureProgress() (signed, required int) {
	for _, s := range c.Signatures {
		if !s.Required {
			continue
		}
		required++
		if s.Status == SignatureStatusSigned {
			signed++
		}
	}
	return signed, required
}

// SignatureByID returns a pointer into c.Signatures, or nil.
func (c *Contract) SignatureByID(id string) *Signature {
	for i := range c.Signatures {
		if c.Signatures[i].ID == id {
			return &c.Signatures[i]
		}
	}
	return nil
}

// SignatureByEmail returns a pointer into c.Signatures, or nil.
func (c *Contract) SignatureByEmail(email string) *Signature {
	for i := range c.Signatures {
		if c.Signatures[i].SignerEmail == email {
			return &c.Signatures[i]
		}
	}
	return nil
}

// MilestoneByID returns a pointer into c.Milestones, or nil.
func (c *Contract) MilestoneByID(id string) *Milestone {
	for i := range c.Milestones {
		if c.Milestones[i].ID == id {
			return &c.Milestones[i]
		}
	}
	return nil
}

// SignatureDerivedStatus computes the contract status implied by the current
// signature records: fully-signed iff every required signer has signed,
// partially-signed iff some but not all have.
func (c *Contract) SignatureDerivedStatus() ContractStatus {
	signed, required := c.SignatureProgress()
	switch {
	case required > 0 && signed == required:
		return ContractStatusFullySigned
	case signed > 0:
		return ContractStatusPartiallySigned
	default:
		return ContractStatusPendingSignature
	}
}

// MilestoneStatus tracks a single milestone's lifecycle, independent of the
// contract's own status.

type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "pending"
	MilestoneStatusInProgress MilestoneStatus = "in-progress"
	MilestoneStatusCompleted  MilestoneStatus = "completed"
	MilestoneStatusSkipped    MilestoneStatus = "skipped"
)

// Milestone is a dated checkpoint in the contract timeline. PaymentTrigger
// milestones are the intended basis for payment records.
type Milestone struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Status         MilestoneStatus `json:"status"`
	TargetDate     time.Time       `json:"target_date"`
	ActualDate     *time.Time      `json:"actual_date,omitempty"`
	PaymentTrigger bool            `json:"payment_trigger"`
	Amount         float64         `json:"amount,omitempty"`
	ApprovedBy     string          `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// VariationStatus tracks a change order's approval state.

type VariationStatus string

const (
	VariationStatusProposed VariationStatus = "proposed"
	VariationStatusApproved VariationStatus = "approved"
	VariationStatusRejected VariationStatus = "rejected"
)

// Variation is a change order altering scope, cost or time.
type Variation struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Description string          `json:"description"`
	CostDelta   float64         `json:"cost_delta"`
	TimeDelta   int             `json:"time_delta_days"`
	Status      VariationStatus `json:"status"`
	RequestedBy string          `json:"requested_by"`
	RequestedAt time.Time       `json:"requested_at"`
	ApprovedBy  string          `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time      `json:"approved_at,omitempty"`
}

// ApprovedVariationTotal sums the cost deltas of approved variations. The
// payment ceiling is the contract value adjusted by this total.
func (c *Contract) ApprovedVariationTotal() float64 {
	total := 0.0
	for _, v := range c.Variations {
		if v.Status == VariationStatusApproved {
			total += v.CostDelta
		}
	}
	return total
}

// Payment is a settled amount recorded against the contract. When collection
// went through the payment provider, ProviderPaymentID/ProviderStatus carry
// its reference and ProviderPayload the raw response for traceability.
type Payment struct {
	ID            string    `json:"id"`
	MilestoneID   string    `json:"milestone_id,omitempty"`
	Amount        float64   `json:"amount"`
	RetentionHeld float64   `json:"retention_held"`
	NetAmount     float64   `json:"net_amount"`
	Method        string    `json:"method,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	RecordedBy    string    `json:"recorded_by"`
	RecordedAt    time.Time `json:"recorded_at"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
	ProviderStatus    string `json:"provider_status,omitempty"`
	ProviderPayload   string `json:"provider_payload,omitempty"`
}

// PaidTotal sums gross amounts already recorded.
func (c *Contract) PaidTotal() float64 {
	total := 0.0
	for _, p := range c.Payments {
		total += p.Amount
	}
	return total
}

// ContractDocument is a pointer to an externally stored artifact (the signed
// PDF, an insurance certificate). The service never stores document bodies.
type ContractDocument struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}
