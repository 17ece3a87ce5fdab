package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase/interfaces"
)

// PaymentInput is a payment to record against a contract. When CollectNow is
// set and a gateway is configured, the amount is collected through the
// payment provider first and the provider reference stored on the record.
type PaymentInput struct {
	MilestoneID   string
	Amount        float64
	RetentionHeld float64
	Method        string
	Reference     string

	CollectNow      bool
	ProviderPayload json.RawMessage
}

type IMilestonePaymentUseCase interface {
	CompleteMilestone(ctx context.Context, contractID, milestoneID, completedBy, notes string) (entities.Contract, error)
	RecordPayment(ctx context.Context, contractID string, in PaymentInput, recordedBy string) (entities.Contract, entities.Payment, error)
}

type MilestonePaymentUseCase struct {
	contracts interfaces.IContractRepository
	audit     interfaces.IAuditRecorder
	gateway   interfaces.IPaymentGateway
	now       Clock
	newID     IDGenerator
}

var _ IMilestonePaymentUseCase = (*MilestonePaymentUseCase)(nil)

func NewMilestonePaymentUseCase(contracts interfaces.IContractRepository, audit interfaces.IAuditRecorder, gateway interfaces.IPaymentGateway) *MilestonePaymentUseCase {
	return &MilestonePaymentUseCase{
		contracts: contracts,
		audit:     audit,
		gateway:   gateway,
		now:       defaultClock,
		newID:     defaultIDGenerator,
	}
}

// WithClock overrides the time source. Test hook.
func (u *MilestonePaymentUseCase) WithClock(c Clock) *MilestonePaymentUseCase {
	u.now = c
	return u
}

func (u *MilestonePaymentUseCase) CompleteMilestone(ctx context.Context, contractID, milestoneID, completedBy, notes string) (entities.Contract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if strings.TrimSpace(completedBy) == "" {
		return entities.Contract{}, ErrInvalidActor
	}

	now := u.now()
	var milestoneName string
	updated, err := u.contracts.Update(ctx, contractID, completedBy, func(c *entities.Contract) error {
		m := c.MilestoneByID(milestoneID)
		if m == nil {
			return ErrMilestoneNotFound
		}
		if m.Status == entities.MilestoneStatusCompleted {
			return ErrMilestoneCompleted
		}
		milestoneName = m.Name

		m.Status = entities.MilestoneStatusCompleted
		actual := now
		m.ActualDate = &actual
		m.ApprovedBy = completedBy
		approvedAt := now
		m.ApprovedAt = &approvedAt
		if notes != "" {
			m.Notes = notes
		}
		return nil
	})
	if err != nil {
		return entities.Contract{}, err
	}

	u.audit.Record(ctx, entities.AuditEntry{
		ID:          u.newID(),
		ContractID:  contractID,
		Action:      "milestone.completed",
		Detail:      fmt.Sprintf("milestone %q completed by %s", milestoneName, completedBy),
		PerformedBy: completedBy,
		PerformedAt: now,
	})

	log.Printf("[milestone][usecase] completed contract_id=%s milestone_id=%s", contractID, milestoneID)
	return updated, nil
}

func (u *MilestonePaymentUseCase) RecordPayment(ctx context.Context, contractID string, in PaymentInput, recordedBy string) (entities.Contract, entities.Payment, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, entities.Payment{}, ErrInvalidContractID
	}
	if strings.TrimSpace(recordedBy) == "" {
		return entities.Contract{}, entities.Payment{}, ErrInvalidActor
	}
	if in.Amount <= 0 || in.RetentionHeld < 0 || in.RetentionHeld > in.Amount {
		return entities.Contract{}, entities.Payment{}, ErrInvalidPaymentAmount
	}

	now := u.now()
	payment := entities.Payment{
		ID:            u.newID(),
		MilestoneID:   strings.TrimSpace(in.MilestoneID),
		Amount:        in.Amount,
		RetentionHeld: in.RetentionHeld,
		NetAmount:     round2(in.Amount - in.RetentionHeld),
		Method:        in.Method,
		Reference:     in.Reference,
		RecordedBy:    recordedBy,
		RecordedAt:    now,
	}

	// Collection through the provider happens before the write so that a
	// storage conflict never leaves a charged but unrecorded payment loop.
	if in.CollectNow {
		if u.gateway == nil {
			return entities.Contract{}, entities.Payment{}, fmt.Errorf("record payment: %w", ErrGatewayNotConfigured)
		}
		payload := in.ProviderPayload
		if len(payload) == 0 {
			payload = json.RawMessage("{}")
		}
		providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[payment][usecase] gateway collect failed contract_id=%s err=%v", contractID, err)
			return entities.Contract{}, entities.Payment{}, fmt.Errorf("record payment: collect: %w", err)
		}
		payment.ProviderPaymentID = providerID
		payment.ProviderStatus = providerStatus
		payment.ProviderPayload = string(providerResp)
	}

	updated, err := u.contracts.Update(ctx, contractID, recordedBy, func(c *entities.Contract) error {
		if payment.MilestoneID != "" && c.MilestoneByID(payment.MilestoneID) == nil {
			return ErrMilestoneNotFound
		}
		ceiling := c.Terms.TotalValue + c.ApprovedVariationTotal()
		if c.PaidTotal()+payment.Amount > ceiling+0.01 {
			return fmt.Errorf("%w: paid %.2f + %.2f over ceiling %.2f",
				ErrPaymentExceedsValue, c.PaidTotal(), payment.Amount, ceiling)
		}
		c.Payments = append(c.Payments, payment)
		return nil
	})
	if err != nil {
		return entities.Contract{}, entities.Payment{}, err
	}

	u.audit.Record(ctx, entities.AuditEntry{
		ID:          u.newID(),
		ContractID:  contractID,
		Action:      "payment.recorded",
		Detail:      fmt.Sprintf("payment of %.2f (net %.2f) recorded by %s", payment.Amount, payment.NetAmount, recordedBy),
		PerformedBy: recordedBy,
		PerformedAt: now,
	})

	log.Printf("[payment][usecase] recorded contract_id=%s payment_id=%s amount=%.2f", contractID, payment.ID, payment.Amount)
	return updated, payment, nil
}
