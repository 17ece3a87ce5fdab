package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"renova_contracts/internal/domain/entities"
	mock_interfaces "renova_contracts/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func milestoneFixture(ctrl *gomock.Controller) (*MilestonePaymentUseCase, *mock_interfaces.MockIContractRepository, *mock_interfaces.MockIAuditRecorder, *mock_interfaces.MockIPaymentGateway) {
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	audit := mock_interfaces.NewMockIAuditRecorder(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewMilestonePaymentUseCase(repo, audit, gateway)
	return uc, repo, audit, gateway
}

func activeContract() entities.Contract {
	return entities.Contract{
		ID:      "c-1",
		Status:  entities.ContractStatusActive,
		Version: 3,
		Terms:   entities.ContractTerms{TotalValue: 10000},
		Milestones: []entities.Milestone{
			{ID: "ms-1", Name: "Demolition", Status: entities.MilestoneStatusPending, PaymentTrigger: true, Amount: 4000},
			{ID: "ms-2", Name: "Finishes", Status: entities.MilestoneStatusCompleted, PaymentTrigger: true, Amount: 6000},
		},
	}
}

func TestMilestonePaymentUseCase_CompleteMilestone(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := milestoneFixture(ctrl)

		_, err := uc.CompleteMilestone(context.Background(), "c-1", "ms-1", " ", "")
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("milestone not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := milestoneFixture(ctrl)

		applyMutate(repo, "c-1", activeContract(), nil)

		_, err := uc.CompleteMilestone(context.Background(), "c-1", "ms-404", "owner-1", "")
		if !errors.Is(err, ErrMilestoneNotFound) {
			t.Fatalf("expected ErrMilestoneNotFound, got %v", err)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := milestoneFixture(ctrl)

		applyMutate(repo, "c-1", activeContract(), nil)

		_, err := uc.CompleteMilestone(context.Background(), "c-1", "ms-2", "owner-1", "")
		if !errors.Is(err, ErrMilestoneCompleted) {
			t.Fatalf("expected ErrMilestoneCompleted, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, audit, _ := milestoneFixture(ctrl)

		completedAt := time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)
		uc.WithClock(func() time.Time { return completedAt })

		var updated entities.Contract
		applyMutate(repo, "c-1", activeContract(), &updated)
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entities.AuditEntry) {
			if e.Action != "milestone.completed" {
				t.Fatalf("unexpected action %q", e.Action)
			}
		})

		_, err := uc.CompleteMilestone(context.Background(), "c-1", "ms-1", "owner-1", "looks good")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := updated.MilestoneByID("ms-1")
		if m.Status != entities.MilestoneStatusCompleted || m.ApprovedBy != "owner-1" || m.Notes != "looks good" {
			t.Fatalf("unexpected milestone: %+v", m)
		}
		if m.ActualDate == nil || !m.ActualDate.Equal(completedAt) {
			t.Fatalf("expected actual date stamped, got %v", m.ActualDate)
		}
	})
}

func TestMilestonePaymentUseCase_RecordPayment(t *testing.T) {
	t.Run("invalid amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := milestoneFixture(ctrl)

		cases := []PaymentInput{
			{Amount: 0},
			{Amount: -10},
			{Amount: 100, RetentionHeld: -1},
			{Amount: 100, RetentionHeld: 150},
		}
		for _, in := range cases {
			if _, _, err := uc.RecordPayment(context.Background(), "c-1", in, "owner-1"); !errors.Is(err, ErrInvalidPaymentAmount) {
				t.Fatalf("input %+v: expected ErrInvalidPaymentAmount, got %v", in, err)
			}
		}
	})

	t.Run("unknown milestone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := milestoneFixture(ctrl)

		applyMutate(repo, "c-1", activeContract(), nil)

		_, _, err := uc.RecordPayment(context.Background(), "c-1", PaymentInput{MilestoneID: "ms-404", Amount: 100}, "owner-1")
		if !errors.Is(err, ErrMilestoneNotFound) {
			t.Fatalf("expected ErrMilestoneNotFound, got %v", err)
		}
	})

	t.Run("payment over the ceiling is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := milestoneFixture(ctrl)

		seed := activeContract()
		seed.Payments = []entities.Payment{{Amount: 9000}}
		applyMutate(repo, "c-1", seed, nil)

		_, _, err := uc.RecordPayment(context.Background(), "c-1", PaymentInput{Amount: 1500}, "owner-1")
		if !errors.Is(err, ErrPaymentExceedsValue) {
			t.Fatalf("expected ErrPaymentExceedsValue, got %v", err)
		}
	})

	t.Run("approved variations lift the ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, audit, _ := milestoneFixture(ctrl)

		seed := activeContract()
		seed.Payments = []entities.Payment{{Amount: 9000}}
		seed.Variations = []entities.Variation{{Status: entities.VariationStatusApproved, CostDelta: 2000}}
		var updated entities.Contract
		applyMutate(repo, "c-1", seed, &updated)
		audit.EXPECT().Record(gomock.Any(), gomock.Any())

		_, payment, err := uc.RecordPayment(context.Background(), "c-1", PaymentInput{Amount: 1500, RetentionHeld: 75}, "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.NetAmount != 1425 {
			t.Fatalf("net = %.2f, want 1425", payment.NetAmount)
		}
		if len(updated.Payments) != 2 {
			t.Fatalf("expected payment appended, got %d", len(updated.Payments))
		}
	})

	t.Run("collect now without gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRecorder(ctrl)
		uc := NewMilestonePaymentUseCase(repo, audit, nil)

		_, _, err := uc.RecordPayment(context.Background(), "c-1", PaymentInput{Amount: 100, CollectNow: true}, "owner-1")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("collect now charges the provider before the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, audit, gateway := milestoneFixture(ctrl)

		payload := json.RawMessage(`{"transaction_amount":100}`)
		gateway.EXPECT().CreatePayment(gomock.Any(), payload).Return("mp-123", "approved", json.RawMessage(`{"id":123}`), nil)
		var updated entities.Contract
		applyMutate(repo, "c-1", activeContract(), &updated)
		audit.EXPECT().Record(gomock.Any(), gomock.Any())

		_, payment, err := uc.RecordPayment(context.Background(), "c-1", PaymentInput{
			MilestoneID:     "ms-1",
			Amount:          100,
			CollectNow:      true,
			ProviderPayload: payload,
		}, "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.ProviderPaymentID != "mp-123" || payment.ProviderStatus != "approved" {
			t.Fatalf("unexpected provider fields: %+v", payment)
		}
	})

	t.Run("gateway failure records nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, gateway := milestoneFixture(ctrl)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("declined"))

		_, _, err := uc.RecordPayment(context.Background(), "c-1", PaymentInput{Amount: 100, CollectNow: true}, "owner-1")
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}
