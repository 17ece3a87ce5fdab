package entities

import "time"

// Types in this file belong to neighbouring services (quotes, projects,
// scoping, profiles). The contracts service only reads them through the
// narrow lookup interfaces in internal/usecase/interfaces.

// QuoteStatus is the lifecycle of a contractor's priced quote.

type QuoteStatus string

const (
	QuoteStatusSubmitted QuoteStatus = "submitted"
	QuoteStatusSelected  QuoteStatus = "selected"
	QuoteStatusDeclined  QuoteStatus = "declined"
)

// Quote is the priced offer a contract is generated from. Generation
// requires status "selected".
type Quote struct {
	ID             string      `json:"id"`
	ProjectID      string      `json:"project_id"`
	ContractorID   string      `json:"contractor_id"`
	Price          float64     `json:"price"`
	Currency       string      `json:"currency"`
	Status         QuoteStatus `json:"status"`
	StartDate      time.Time   `json:"start_date"`
	DurationDays   int         `json:"duration_days"`
	WarrantyMonths int         `json:"warranty_months,omitempty"`
}

// WorkStage is one phase of the scope of work. Each stage becomes a contract
// milestone.
type WorkStage struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ShareOfCost float64 `json:"share_of_cost,omitempty"`
}

// ScopeOfWork is the structured work breakdown the terms are derived from.
type ScopeOfWork struct {
	ID            string      `json:"id"`
	ProjectID     string      `json:"project_id"`
	Specification string      `json:"specification"`
	Stages        []WorkStage `json:"stages"`
}

// Project is the renovation project record a contract belongs to. Activation
// of the contract flips the project to "active".
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Postcode string `json:"postcode,omitempty"`
}

// UserProfile is the slice of a party profile the contracts service needs:
// identity, contact details and the preferences feeding term derivation.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	LicenseNumber    string     `json:"license_number,omitempty"`
	InsuranceValidTo *time.Time `json:"insurance_valid_to,omitempty"`

	Preferences ContractPreferences `json:"preferences"`
}

// ContractPreferences are the homeowner's generation-time choices.
type ContractPreferences struct {
	PaymentSchedule     PaymentSchedulePreference   `json:"payment_schedule"`
	RetentionPercentage float64                     `json:"retention_percentage"`
	WarrantyMonths      int                         `json:"warranty_months"`
	DisputeResolution   DisputeResolutionPreference `json:"dispute_resolution"`
}
