package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Clock and IDGenerator are injected so tests control time and identity.

type Clock func() time.Time

type IDGenerator func() string

func defaultClock() time.Time { return time.Now().UTC() }

func defaultIDGenerator() string { return uuid.NewString() }

const (
	// Lead time between generation and the contractual start date.
	generationLeadTimeDays = 14

	milestoneSpacingDays = 30

	defaultRetentionPercent = 5.0
	defaultWarrantyMonths   = 12
	depositCapPercent       = 10
	coolingOffDays          = 10
)

// GenerateContractRequest identifies the records a contract is assembled from.
type GenerateContractRequest struct {
	ProjectID     string
	ScopeOfWorkID string
	QuoteID       string
	HomeownerID   string
	ContractorID  string
}

// IContractGenerationUseCase assembles and persists a new draft contract.
//
// Generation is all-or-nothing: any validation or lookup failure returns an
// error and persists neither a contract nor an audit entry.

type IContractGenerationUseCase interface {
	Generate(ctx context.Context, req GenerateContractRequest) (entities.Contract, []string, error)
}

type ContractGenerationUseCase struct {
	contracts interfaces.IContractRepository
	audit     interfaces.IAuditRecorder
	quotes    interfaces.IQuoteService
	scopes    interfaces.IScopeOfWorkService
	projects  interfaces.IProjectService
	users     interfaces.IUserService
	now       Clock
	newID     IDGenerator
}

var _ IContractGenerationUseCase = (*ContractGenerationUseCase)(nil)

func NewContractGenerationUseCase(
	contracts interfaces.IContractRepository,
	audit interfaces.IAuditRecorder,
	quotes interfaces.IQuoteService,
	scopes interfaces.IScopeOfWorkService,
	projects interfaces.IProjectService,
	users interfaces.IUserService,
) *ContractGenerationUseCase {
	return &ContractGenerationUseCase{
		contracts: contracts,
		audit:     audit,
		quotes:    quotes,
		scopes:    scopes,
		projects:  projects,
		users:     users,
		now:       defaultClock,
		newID:     defaultIDGenerator,
	}
}

// WithClock overrides the time source. Test hook.
func (u *ContractGenerationUseCase) WithClock(c Clock) *ContractGenerationUseCase {
	u.now = c
	return u
}

// WithIDGenerator overrides identity generation. Test hook.
func (u *ContractGenerationUseCase) WithIDGenerator(g IDGenerator) *ContractGenerationUseCase {
	u.newID = g
	return u
}

func (u *ContractGenerationUseCase) Generate(ctx context.Context, req GenerateContractRequest) (entities.Contract, []string, error) {
	log.Printf("[contract][generate] start project_id=%s quote_id=%s", req.ProjectID, req.QuoteID)

	if msgs := missingIdentifiers(req); len(msgs) > 0 {
		log.Printf("[contract][generate] missing identifiers: %v", msgs)
		return entities.Contract{}, nil, newValidationError(msgs...)
	}

	quote, err := u.quotes.GetQuote(ctx, req.QuoteID)
	if err != nil {
		return entities.Contract{}, nil, storageError("generate contract: load quote", err)
	}
	if quote.ID == "" {
		return entities.Contract{}, nil, fmt.Errorf("quote %s: %w", req.QuoteID, ErrRequiredDataMissing)
	}
	if quote.Status != entities.QuoteStatusSelected {
		log.Printf("[contract][generate] quote not selected quote_id=%s status=%s", quote.ID, quote.Status)
		return entities.Contract{}, nil, newValidationError(ErrQuoteNotSelected.Error())
	}

	var (
		scope      entities.ScopeOfWork
		project    entities.Project
		homeowner  entities.UserProfile
		contractor entities.UserProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		scope, err = u.scopes.GetScopeOfWork(gctx, req.ScopeOfWorkID)
		return err
	})
	g.Go(func() error {
		var err error
		project, err = u.projects.GetProject(gctx, req.ProjectID)
		return err
	})
	g.Go(func() error {
		var err error
		homeowner, err = u.users.GetUser(gctx, req.HomeownerID)
		return err
	})
	g.Go(func() error {
		var err error
		contractor, err = u.users.GetUser(gctx, req.ContractorID)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.Contract{}, nil, storageError("generate contract: load inputs", err)
	}
	if scope.ID == "" || project.ID == "" || homeowner.ID == "" || contractor.ID == "" {
		log.Printf("[contract][generate] input missing scope=%t project=%t homeowner=%t contractor=%t",
			scope.ID == "", project.ID == "", homeowner.ID == "", contractor.ID == "")
		return entities.Contract{}, nil, ErrRequiredDataMissing
	}

	now := u.now()
	contractID := u.newID()

	terms := u.deriveTerms(quote, scope, contractor, homeowner.Preferences, now)
	milestones := u.deriveMilestones(scope, terms)

	c := entities.Contract{
		ID:             contractID,
		ProjectID:      project.ID,
		ScopeOfWorkID:  scope.ID,
		QuoteID:        quote.ID,
		HomeownerID:    homeowner.ID,
		ContractorID:   contractor.ID,
		ContractNumber: contractNumber(now, project.ID, contractID),
		Version:        1,
		Status:         entities.ContractStatusDraft,
		Terms:          terms,
		Milestones:     milestones,
		Signatures: []entities.Signature{
			{
				ID:          u.newID(),
				SignerID:    homeowner.ID,
				SignerEmail: homeowner.Email,
				SignerName:  homeowner.Name,
				Role:        entities.SignerRoleHomeowner,
				Status:      entities.SignatureStatusPending,
				Required:    true,
			},
			{
				ID:          u.newID(),
				SignerID:    contractor.ID,
				SignerEmail: contractor.Email,
				SignerName:  contractor.Name,
				Role:        entities.SignerRoleContractor,
				Status:      entities.SignatureStatusPending,
				Required:    true,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.contracts.Create(ctx, c)
	if err != nil {
		return entities.Contract{}, nil, err
	}

	u.audit.Record(ctx, entities.AuditEntry{
		ID:          u.newID(),
		ContractID:  created.ID,
		Action:      "contract.generated",
		Detail:      fmt.Sprintf("contract %s generated from quote %s", created.ContractNumber, quote.ID),
		PerformedBy: homeowner.ID,
		PerformedAt: now,
	})

	recs := recommendations(created)
	log.Printf("[contract][generate] success contract_id=%s number=%s milestones=%d", created.ID, created.ContractNumber, len(created.Milestones))
	return created, recs, nil
}

func missingIdentifiers(req GenerateContractRequest) []string {
	var msgs []string
	check := func(v, name string) {
		if strings.TrimSpace(v) == "" {
			msgs = append(msgs, name+" is required")
		}
	}
	check(req.ProjectID, "projectId")
	check(req.ScopeOfWorkID, "scopeOfWorkId")
	check(req.QuoteID, "quoteId")
	check(req.HomeownerID, "homeownerId")
	check(req.ContractorID, "contractorId")
	return msgs
}

func (u *ContractGenerationUseCase) deriveTerms(
	quote entities.Quote,
	scope entities.ScopeOfWork,
	contractor entities.UserProfile,
	prefs entities.ContractPreferences,
	now time.Time,
) entities.ContractTerms {
	schedulePref := prefs.PaymentSchedule
	if schedulePref == "" {
		schedulePref = entities.PaymentScheduleMilestone
	}
	retention := prefs.RetentionPercentage
	if retention <= 0 {
		retention = defaultRetentionPercent
	}
	warrantyMonths := prefs.WarrantyMonths
	if quote.WarrantyMonths > warrantyMonths {
		warrantyMonths = quote.WarrantyMonths
	}
	if warrantyMonths <= 0 {
		warrantyMonths = defaultWarrantyMonths
	}

	start := quote.StartDate.AddDate(0, 0, generationLeadTimeDays)
	end := start.AddDate(0, 0, quote.DurationDays)
	timeline := entities.TimelineTerms{
		StartDate:    start,
		EndDate:      end,
		DurationDays: quote.DurationDays,
		LeadTimeDays: generationLeadTimeDays,
	}

	schedule := deriveSchedule(schedulePref, quote.Price, retention, scope, timeline)

	compliance := entities.LegalComplianceTerms{
		ContractorLicensed:    strings.TrimSpace(contractor.LicenseNumber) != "",
		InsuranceVerified:     contractor.InsuranceValidTo != nil && contractor.InsuranceValidTo.After(end),
		PermitsIdentified:     len(scope.Stages) > 0,
		DepositWithinStateCap: depositWithinCap(schedule, quote.Price),
	}

	disputePref := prefs.DisputeResolution
	if disputePref == "" {
		disputePref = entities.DisputeResolutionMediation
	}

	currency := quote.Currency
	if currency == "" {
		currency = "AUD"
	}

	return entities.ContractTerms{
		WorkDescription:     scope.Specification,
		TotalValue:          quote.Price,
		Currency:            currency,
		PaymentSchedule:     schedule,
		SchedulePreference:  schedulePref,
		RetentionPercentage: retention,
		Timeline:            timeline,
		Warranty: entities.WarrantyTerms{
			WorkmanshipMonths: warrantyMonths,
			MaterialsMonths:   defaultWarrantyMonths,
		},
		Insurance: entities.InsuranceTerms{
			PublicLiabilityMinimum: 5_000_000,
			RequiredBeforeStart:    true,
		},
		VariationPolicy:   "All variations must be agreed in writing and numbered before work proceeds.",
		TerminationPolicy: "Either party may terminate for unremedied material breach after 14 days written notice.",
		StandardClauses:   standardClauses(),
		LegalCompliance:   compliance,
		ConsumerProtection: entities.ConsumerProtectionTerms{
			CoolingOffDays:    coolingOffDays,
			DepositCapPercent: depositCapPercent,
		},
		DisputeResolution: entities.DisputeResolutionTerms{
			Preference: disputePref,
			Steps:      disputeSteps(disputePref),
		},
		LegalReviewRequired: !compliance.AllSatisfied(),
	}
}

func deriveSchedule(
	pref entities.PaymentSchedulePreference,
	total, retentionPct float64,
	scope entities.ScopeOfWork,
	timeline entities.TimelineTerms,
) []entities.ScheduledPayment {
	entry := func(label string, due time.Time, amount float64) entities.ScheduledPayment {
		retention := round2(amount * retentionPct / 100)
		return entities.ScheduledPayment{
			Label:     label,
			DueDate:   due,
			Amount:    round2(amount),
			Retention: retention,
			Net:       round2(amount - retention),
		}
	}

	switch pref {
	case entities.PaymentScheduleMonthly:
		months := timeline.DurationDays / 30
		if months < 1 {
			months = 1
		}
		per := total / float64(months)
		out := make([]entities.ScheduledPayment, 0, months)
		for i := 0; i < months; i++ {
			out = append(out, entry(fmt.Sprintf("Month %d", i+1), timeline.StartDate.AddDate(0, i+1, 0), per))
		}
		return out

	case entities.PaymentScheduleStage:
		if len(scope.Stages) == 0 {
			return []entities.ScheduledPayment{entry("Completion", timeline.EndDate, total)}
		}
		out := make([]entities.ScheduledPayment, 0, len(scope.Stages))
		for i, stage := range scope.Stages {
			amount := total * stageShare(scope.Stages, i)
			due := timeline.StartDate.AddDate(0, 0, milestoneSpacingDays*(i+1))
			out = append(out, entry(stage.Name, due, amount))
		}
		return out

	default: // milestone
		deposit := total * float64(depositCapPercent) / 100
		out := []entities.ScheduledPayment{entry("Deposit", timeline.StartDate, deposit)}
		n := len(scope.Stages)
		if n == 0 {
			out = append(out, entry("Completion", timeline.EndDate, total-deposit))
			return out
		}
		per := (total - deposit) / float64(n)
		for i, stage := range scope.Stages {
			due := timeline.StartDate.AddDate(0, 0, milestoneSpacingDays*(i+1))
			out = append(out, entry("Milestone: "+stage.Name, due, per))
		}
		return out
	}
}

// stageShare returns stage i's fraction of the total, falling back to an
// equal split when the scope carries no cost shares.
func stageShare(stages []entities.WorkStage, i int) float64 {
	declared := 0.0
	for _, s := range stages {
		declared += s.ShareOfCost
	}
	if declared > 0 && stages[i].ShareOfCost > 0 {
		return stages[i].ShareOfCost / declared
	}
	return 1 / float64(len(stages))
}

func depositWithinCap(schedule []entities.ScheduledPayment, total float64) bool {
	if len(schedule) == 0 || total <= 0 {
		return true
	}
	return schedule[0].Amount <= total*float64(depositCapPercent)/100+0.01
}

func (u *ContractGenerationUseCase) deriveMilestones(scope entities.ScopeOfWork, terms entities.ContractTerms) []entities.Milestone {
	paymentTrigger := terms.SchedulePreference != entities.PaymentScheduleMonthly
	out := make([]entities.Milestone, 0, len(scope.Stages))
	for i, stage := range scope.Stages {
		out = append(out, entities.Milestone{
			ID:             u.newID(),
			Name:           stage.Name,
			Description:    stage.Description,
			Status:         entities.MilestoneStatusPending,
			TargetDate:     terms.Timeline.StartDate.AddDate(0, 0, milestoneSpacingDays*(i+1)),
			PaymentTrigger: paymentTrigger,
			Amount:         round2(terms.TotalValue * stageShare(scope.Stages, i)),
		})
	}
	return out
}

// contractNumber builds CON-YYYYMM-<8-char-project-prefix>-<3-digit>. The
// trailing digits are derived from the contract id so the number is stable
// for a given contract.
func contractNumber(now time.Time, projectID, contractID string) string {
	prefix := strings.ToUpper(strings.ReplaceAll(projectID, "-", ""))
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	seq := 0
	for _, r := range contractID {
		seq = (seq*31 + int(r)) % 1000
	}
	return fmt.Sprintf("CON-%s-%s-%03d", now.Format("200601"), prefix, seq)
}

func standardClauses() []entities.Clause {
	return []entities.Clause{
		{Title: "Insurance", Body: "The contractor maintains public liability insurance for the duration of the works and provides certificates of currency before commencement."},
		{Title: "Health & Safety", Body: "The contractor complies with all applicable work health and safety legislation and site-specific safety plans."},
		{Title: "Quality Standards", Body: "All work is performed to the relevant building codes and manufacturer specifications."},
		{Title: "Materials", Body: "Materials are new and fit for purpose unless otherwise agreed in writing."},
		{Title: "Subcontracting", Body: "Subcontractors may be engaged only with the homeowner's prior written consent; the contractor remains responsible for their work."},
		{Title: "Intellectual Property", Body: "Designs and documents prepared for the works remain the property of their author; the homeowner receives a licence to use them for the project."},
		{Title: "Confidentiality", Body: "Neither party discloses the other's confidential information except as required to perform the works or by law."},
		{Title: "Force Majeure", Body: "Neither party is liable for delay caused by events beyond its reasonable control; the timeline extends by the period of the event."},
	}
}

func disputeSteps(pref entities.DisputeResolutionPreference) []string {
	switch pref {
	case entities.DisputeResolutionArbitration:
		return []string{"direct negotiation", "binding arbitration"}
	case entities.DisputeResolutionAll:
		return []string{"direct negotiation", "mediation", "binding arbitration", "litigation"}
	default:
		return []string{"direct negotiation", "mediation"}
	}
}

// recommendations are advisory only: they never block generation.
func recommendations(c entities.Contract) []string {
	var recs []string
	if c.Terms.LegalReviewRequired {
		recs = append(recs, "Legal review recommended before requesting signatures")
	}
	if c.Terms.RetentionPercentage <= 0 {
		recs = append(recs, "Consider withholding retention until the warranty period ends")
	}
	if c.Terms.TotalValue >= 20000 && c.Terms.SchedulePreference == entities.PaymentScheduleMonthly {
		recs = append(recs, "Milestone-based payments give better protection on high-value contracts")
	}
	if len(c.Milestones) == 0 {
		recs = append(recs, "Scope of work has no stages; add milestones before activating the contract")
	}
	return recs
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
