package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"renova_contracts/internal/domain/entities"
	mock_interfaces "renova_contracts/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func generationFixture(ctrl *gomock.Controller) (
	*ContractGenerationUseCase,
	*mock_interfaces.MockIContractRepository,
	*mock_interfaces.MockIAuditRecorder,
	*mock_interfaces.MockIQuoteService,
	*mock_interfaces.MockIScopeOfWorkService,
	*mock_interfaces.MockIProjectService,
	*mock_interfaces.MockIUserService,
) {
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	audit := mock_interfaces.NewMockIAuditRecorder(ctrl)
	quotes := mock_interfaces.NewMockIQuoteService(ctrl)
	scopes := mock_interfaces.NewMockIScopeOfWorkService(ctrl)
	projects := mock_interfaces.NewMockIProjectService(ctrl)
	users := mock_interfaces.NewMockIUserService(ctrl)
	uc := NewContractGenerationUseCase(repo, audit, quotes, scopes, projects, users)
	return uc, repo, audit, quotes, scopes, projects, users
}

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func validGenerateRequest() GenerateContractRequest {
	return GenerateContractRequest{
		ProjectID:     "project-1",
		ScopeOfWorkID: "scope-1",
		QuoteID:       "quote-1",
		HomeownerID:   "owner-1",
		ContractorID:  "builder-1",
	}
}

func selectedQuote() entities.Quote {
	return entities.Quote{
		ID:           "quote-1",
		ProjectID:    "project-1",
		ContractorID: "builder-1",
		Price:        40000,
		Currency:     "AUD",
		Status:       entities.QuoteStatusSelected,
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 90,
	}
}

func threeStageScope() entities.ScopeOfWork {
	return entities.ScopeOfWork{
		ID:            "scope-1",
		ProjectID:     "project-1",
		Specification: "Full kitchen renovation",
		Stages: []entities.WorkStage{
			{Name: "Demolition", ShareOfCost: 0.2},
			{Name: "Carpentry", ShareOfCost: 0.5},
			{Name: "Finishes", ShareOfCost: 0.3},
		},
	}
}

func TestContractGenerationUseCase_Generate(t *testing.T) {
	t.Run("missing identifiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, _, _ := generationFixture(ctrl)

		_, _, err := uc.Generate(context.Background(), GenerateContractRequest{ProjectID: "project-1"})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Messages) != 4 {
			t.Fatalf("expected 4 messages, got %v", verr.Messages)
		}
	})

	t.Run("quote lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, quotes, _, _, _ := generationFixture(ctrl)

		quotes.EXPECT().GetQuote(gomock.Any(), "quote-1").Return(entities.Quote{}, errors.New("boom"))

		_, _, err := uc.Generate(context.Background(), validGenerateRequest())
		if err == nil || !strings.Contains(err.Error(), "storage failure") {
			t.Fatalf("expected storage failure, got %v", err)
		}
	})

	t.Run("quote missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, quotes, _, _, _ := generationFixture(ctrl)

		quotes.EXPECT().GetQuote(gomock.Any(), "quote-1").Return(entities.Quote{}, nil)

		_, _, err := uc.Generate(context.Background(), validGenerateRequest())
		if !errors.Is(err, ErrRequiredDataMissing) {
			t.Fatalf("expected ErrRequiredDataMissing, got %v", err)
		}
	})

	t.Run("quote not selected persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, quotes, _, _, _ := generationFixture(ctrl)

		q := selectedQuote()
		q.Status = entities.QuoteStatusSubmitted
		quotes.EXPECT().GetQuote(gomock.Any(), "quote-1").Return(q, nil)

		_, _, err := uc.Generate(context.Background(), validGenerateRequest())
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Messages) != 1 || verr.Messages[0] != "Quote must be selected before generating contract" {
			t.Fatalf("unexpected messages: %v", verr.Messages)
		}
	})

	t.Run("collaborator record missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, quotes, scopes, projects, users := generationFixture(ctrl)

		quotes.EXPECT().GetQuote(gomock.Any(), "quote-1").Return(selectedQuote(), nil)
		scopes.EXPECT().GetScopeOfWork(gomock.Any(), "scope-1").Return(threeStageScope(), nil)
		projects.EXPECT().GetProject(gomock.Any(), "project-1").Return(entities.Project{}, nil)
		users.EXPECT().GetUser(gomock.Any(), "owner-1").Return(entities.UserProfile{ID: "owner-1"}, nil)
		users.EXPECT().GetUser(gomock.Any(), "builder-1").Return(entities.UserProfile{ID: "builder-1"}, nil)

		_, _, err := uc.Generate(context.Background(), validGenerateRequest())
		if !errors.Is(err, ErrRequiredDataMissing) {
			t.Fatalf("expected ErrRequiredDataMissing, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, audit, quotes, scopes, projects, users := generationFixture(ctrl)

		generatedAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
		uc.WithClock(func() time.Time { return generatedAt }).WithIDGenerator(sequentialIDs("id"))

		insured := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)
		quotes.EXPECT().GetQuote(gomock.Any(), "quote-1").Return(selectedQuote(), nil)
		scopes.EXPECT().GetScopeOfWork(gomock.Any(), "scope-1").Return(threeStageScope(), nil)
		projects.EXPECT().GetProject(gomock.Any(), "project-1").Return(entities.Project{ID: "project-1", Name: "Kitchen"}, nil)
		users.EXPECT().GetUser(gomock.Any(), "owner-1").Return(entities.UserProfile{ID: "owner-1", Name: "Ana", Email: "ana@example.com"}, nil)
		users.EXPECT().GetUser(gomock.Any(), "builder-1").Return(entities.UserProfile{
			ID: "builder-1", Name: "Bob Builds", Email: "bob@example.com",
			LicenseNumber: "LIC-123", InsuranceValidTo: &insured,
		}, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.Status != entities.ContractStatusDraft || c.Version != 1 {
					t.Fatalf("unexpected status/version: %s/%d", c.Status, c.Version)
				}
				if len(c.Signatures) != 2 {
					t.Fatalf("expected 2 signature records, got %d", len(c.Signatures))
				}
				for _, s := range c.Signatures {
					if !s.Required || s.Status != entities.SignatureStatusPending {
						t.Fatalf("unexpected signature record: %+v", s)
					}
				}
				if len(c.Milestones) != 3 {
					t.Fatalf("expected 3 milestones, got %d", len(c.Milestones))
				}
				start := c.Terms.Timeline.StartDate
				wantStart := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
				if !start.Equal(wantStart) {
					t.Fatalf("start = %s, want %s", start, wantStart)
				}
				for i, m := range c.Milestones {
					want := start.AddDate(0, 0, 30*(i+1))
					if !m.TargetDate.Equal(want) {
						t.Fatalf("milestone %d target = %s, want %s", i, m.TargetDate, want)
					}
					if !m.PaymentTrigger {
						t.Fatalf("milestone %d should trigger payment", i)
					}
				}
				if c.Milestones[1].Amount != 20000 {
					t.Fatalf("carpentry share = %.2f, want 20000", c.Milestones[1].Amount)
				}
				if c.Terms.TotalValue != 40000 || c.Terms.Currency != "AUD" {
					t.Fatalf("unexpected terms: %+v", c.Terms)
				}
				if !c.Terms.LegalCompliance.AllSatisfied() || c.Terms.LegalReviewRequired {
					t.Fatalf("expected compliant terms: %+v", c.Terms.LegalCompliance)
				}
				if matched, _ := regexp.MatchString(`^CON-202602-PROJECT1-\d{3}$`, c.ContractNumber); !matched {
					t.Fatalf("unexpected contract number %q", c.ContractNumber)
				}
				return c, nil
			},
		)
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entities.AuditEntry) {
			if e.Action != "contract.generated" || e.ContractID == "" {
				t.Fatalf("unexpected audit entry: %+v", e)
			}
		})

		created, recs, err := uc.Generate(context.Background(), validGenerateRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		if len(recs) != 0 {
			t.Fatalf("expected no recommendations for a compliant contract, got %v", recs)
		}
	})

	t.Run("recommendations flag review and missing milestones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, audit, quotes, scopes, projects, users := generationFixture(ctrl)

		scope := entities.ScopeOfWork{ID: "scope-1", ProjectID: "project-1", Specification: "Paint only"}
		quotes.EXPECT().GetQuote(gomock.Any(), "quote-1").Return(selectedQuote(), nil)
		scopes.EXPECT().GetScopeOfWork(gomock.Any(), "scope-1").Return(scope, nil)
		projects.EXPECT().GetProject(gomock.Any(), "project-1").Return(entities.Project{ID: "project-1"}, nil)
		users.EXPECT().GetUser(gomock.Any(), "owner-1").Return(entities.UserProfile{ID: "owner-1", Email: "ana@example.com"}, nil)
		users.EXPECT().GetUser(gomock.Any(), "builder-1").Return(entities.UserProfile{ID: "builder-1", Email: "bob@example.com"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) { return c, nil },
		)
		audit.EXPECT().Record(gomock.Any(), gomock.Any())

		created, recs, err := uc.Generate(context.Background(), validGenerateRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created.Terms.LegalReviewRequired {
			t.Fatalf("expected legal review for unlicensed contractor")
		}
		if len(recs) < 2 {
			t.Fatalf("expected review + milestone recommendations, got %v", recs)
		}
	})

	t.Run("repo create failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, quotes, scopes, projects, users := generationFixture(ctrl)

		quotes.EXPECT().GetQuote(gomock.Any(), "quote-1").Return(selectedQuote(), nil)
		scopes.EXPECT().GetScopeOfWork(gomock.Any(), "scope-1").Return(threeStageScope(), nil)
		projects.EXPECT().GetProject(gomock.Any(), "project-1").Return(entities.Project{ID: "project-1"}, nil)
		users.EXPECT().GetUser(gomock.Any(), "owner-1").Return(entities.UserProfile{ID: "owner-1", Email: "ana@example.com"}, nil)
		users.EXPECT().GetUser(gomock.Any(), "builder-1").Return(entities.UserProfile{ID: "builder-1", Email: "bob@example.com"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contract{}, ErrContractExists)

		_, _, err := uc.Generate(context.Background(), validGenerateRequest())
		if !errors.Is(err, ErrContractExists) {
			t.Fatalf("expected ErrContractExists, got %v", err)
		}
	})
}

func TestDeriveSchedule(t *testing.T) {
	timeline := entities.TimelineTerms{
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 92,
	}

	t.Run("milestone schedule caps deposit", func(t *testing.T) {
		scope := threeStageScope()
		schedule := deriveSchedule(entities.PaymentScheduleMilestone, 40000, 5, scope, timeline)
		if len(schedule) != 4 {
			t.Fatalf("expected deposit + 3 milestones, got %d", len(schedule))
		}
		if schedule[0].Label != "Deposit" || schedule[0].Amount != 4000 {
			t.Fatalf("unexpected deposit: %+v", schedule[0])
		}
		if !depositWithinCap(schedule, 40000) {
			t.Fatalf("deposit should be within cap")
		}
	})

	t.Run("monthly schedule splits by month", func(t *testing.T) {
		schedule := deriveSchedule(entities.PaymentScheduleMonthly, 30000, 0, entities.ScopeOfWork{}, timeline)
		if len(schedule) != 3 {
			t.Fatalf("expected 3 monthly entries, got %d", len(schedule))
		}
		for _, p := range schedule {
			if p.Amount != 10000 {
				t.Fatalf("unexpected monthly amount %.2f", p.Amount)
			}
		}
	})

	t.Run("stage schedule follows cost shares", func(t *testing.T) {
		schedule := deriveSchedule(entities.PaymentScheduleStage, 40000, 5, threeStageScope(), timeline)
		if len(schedule) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(schedule))
		}
		if schedule[1].Amount != 20000 {
			t.Fatalf("carpentry = %.2f, want 20000", schedule[1].Amount)
		}
		if schedule[1].Retention != 1000 || schedule[1].Net != 19000 {
			t.Fatalf("retention split wrong: %+v", schedule[1])
		}
	})

	t.Run("stage schedule without stages falls back to completion", func(t *testing.T) {
		schedule := deriveSchedule(entities.PaymentScheduleStage, 5000, 0, entities.ScopeOfWork{}, timeline)
		if len(schedule) != 1 || schedule[0].Label != "Completion" || schedule[0].Amount != 5000 {
			t.Fatalf("unexpected fallback schedule: %+v", schedule)
		}
	})
}

func TestContractNumber(t *testing.T) {
	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	n1 := contractNumber(at, "project-abc-123", "contract-1")
	if matched, _ := regexp.MatchString(`^CON-202608-PROJECTA-\d{3}$`, n1); !matched {
		t.Fatalf("unexpected number %q", n1)
	}

	// Stable for the same contract, distinct ids almost always differ.
	if n1 != contractNumber(at, "project-abc-123", "contract-1") {
		t.Fatalf("number should be deterministic")
	}
	if n1 == contractNumber(at, "project-abc-123", "contract-2") {
		t.Fatalf("distinct contracts should get distinct trailing digits")
	}
}
