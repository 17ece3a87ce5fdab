package entities

import "time"

// PaymentSchedulePreference selects how the contract value is split into
// scheduled payments.

type PaymentSchedulePreference string

const (
	PaymentScheduleMilestone PaymentSchedulePreference = "milestone"
	PaymentScheduleStage     PaymentSchedulePreference = "stage"
	PaymentScheduleMonthly   PaymentSchedulePreference = "monthly"
)

// DisputeResolutionPreference selects the dispute-resolution clauses.

type DisputeResolutionPreference string

const (
	DisputeResolutionMediation   DisputeResolutionPreference = "mediation"
	DisputeResolutionArbitration DisputeResolutionPreference = "arbitration"
	DisputeResolutionAll         DisputeResolutionPreference = "all"
)

// ContractTerms is the immutable-at-creation snapshot of the commercial and
// legal content of the agreement. It is derived once by the generation
// orchestrator and never rewritten by the workflow use cases.
type ContractTerms struct {
	WorkDescription string  `json:"work_description"`
	TotalValue      float64 `json:"total_value"`
	Currency        string  `json:"currency"`

	PaymentSchedule      []ScheduledPayment        `json:"payment_schedule"`
	SchedulePreference   PaymentSchedulePreference `json:"schedule_preference"`
	RetentionPercentage  float64                   `json:"retention_percentage"`
	Timeline             TimelineTerms             `json:"timeline"`
	Warranty             WarrantyTerms             `json:"warranty"`
	Insurance            InsuranceTerms            `json:"insurance"`
	VariationPolicy      string                    `json:"variation_policy"`
	TerminationPolicy    string                    `json:"termination_policy"`
	StandardClauses      []Clause                  `json:"standard_clauses"`
	LegalCompliance      LegalComplianceTerms      `json:"legal_compliance"`
	ConsumerProtection   ConsumerProtectionTerms   `json:"consumer_protection"`
	DisputeResolution    DisputeResolutionTerms    `json:"dispute_resolution"`
	LegalReviewRequired  bool                      `json:"legal_review_required"`
}

// ScheduledPayment is one entry of the derived payment schedule. Retention
// is withheld from each entry and released per the warranty terms.
type ScheduledPayment struct {
	Label     string    `json:"label"`
	DueDate   time.Time `json:"due_date"`
	Amount    float64   `json:"amount"`
	Retention float64   `json:"retention"`
	Net       float64   `json:"net"`
}

type TimelineTerms struct {
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	DurationDays int       `json:"duration_days"`
	LeadTimeDays int       `json:"lead_time_days"`
}

type WarrantyTerms struct {
	WorkmanshipMonths int    `json:"workmanship_months"`
	MaterialsMonths   int    `json:"materials_months"`
	Notes             string `json:"notes,omitempty"`
}

type InsuranceTerms struct {
	PublicLiabilityMinimum float64 `json:"public_liability_minimum"`
	RequiredBeforeStart    bool    `json:"required_before_start"`
}

// Clause is a fixed-template contractual clause included verbatim.
type Clause struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// LegalComplianceTerms carries the derived compliance flags. Any false flag
// forces LegalReviewRequired on the terms.
type LegalComplianceTerms struct {
	ContractorLicensed    bool `json:"contractor_licensed"`
	InsuranceVerified     bool `json:"insurance_verified"`
	PermitsIdentified     bool `json:"permits_identified"`
	DepositWithinStateCap bool `json:"deposit_within_state_cap"`
}

// AllSatisfied reports whether every compliance flag holds.
func (t LegalComplianceTerms) AllSatisfied() bool {
	return t.ContractorLicensed && t.InsuranceVerified && t.PermitsIdentified && t.DepositWithinStateCap
}

type ConsumerProtectionTerms struct {
	CoolingOffDays    int    `json:"cooling_off_days"`
	DepositCapPercent int    `json:"deposit_cap_percent"`
	Notes             string `json:"notes,omitempty"`
}

type DisputeResolutionTerms struct {
	Preference DisputeResolutionPreference `json:"preference"`
	Steps      []string                    `json:"steps"`
}
