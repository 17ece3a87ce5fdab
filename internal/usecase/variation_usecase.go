package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase/interfaces"
)

// VariationInput describes a requested change order.
type VariationInput struct {
	Description string
	CostDelta   float64
	TimeDelta   int
}

type IVariationUseCase interface {
	AddVariation(ctx context.Context, contractID string, in VariationInput, requestedBy string) (entities.Contract, entities.Variation, error)
	ApproveVariation(ctx context.Context, contractID, variationID, approvedBy string) (entities.Contract, error)
}

type VariationUseCase struct {
	contracts interfaces.IContractRepository
	audit     interfaces.IAuditRecorder
	now       Clock
	newID     IDGenerator
}

var _ IVariationUseCase = (*VariationUseCase)(nil)

func NewVariationUseCase(contracts interfaces.IContractRepository, audit interfaces.IAuditRecorder) *VariationUseCase {
	return &VariationUseCase{
		contracts: contracts,
		audit:     audit,
		now:       defaultClock,
		newID:     defaultIDGenerator,
	}
}

// WithClock overrides the time source. Test hook.
func (u *VariationUseCase) WithClock(c Clock) *VariationUseCase {
	u.now = c
	return u
}

// AddVariation appends a numbered change order. Numbers come from the
// contract's durable sequence counter, bumped inside the version-checked
// update, so they stay strictly increasing and unique even when two callers
// race or an old variation is removed.
func (u *VariationUseCase) AddVariation(ctx context.Context, contractID string, in VariationInput, requestedBy string) (entities.Contract, entities.Variation, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, entities.Variation{}, ErrInvalidContractID
	}
	if strings.TrimSpace(requestedBy) == "" {
		return entities.Contract{}, entities.Variation{}, ErrInvalidActor
	}
	if strings.TrimSpace(in.Description) == "" {
		return entities.Contract{}, entities.Variation{}, newValidationError("variation description is required")
	}

	now := u.now()
	var added entities.Variation
	updated, err := u.contracts.Update(ctx, contractID, requestedBy, func(c *entities.Contract) error {
		c.VariationSeq++
		added = entities.Variation{
			ID:          u.newID(),
			Number:      fmt.Sprintf("VAR-%03d", c.VariationSeq),
			Description: strings.TrimSpace(in.Description),
			CostDelta:   in.CostDelta,
			TimeDelta:   in.TimeDelta,
			Status:      entities.VariationStatusProposed,
			RequestedBy: requestedBy,
			RequestedAt: now,
		}
		c.Variations = append(c.Variations, added)
		return nil
	})
	if err != nil {
		return entities.Contract{}, entities.Variation{}, err
	}

	u.audit.Record(ctx, entities.AuditEntry{
		ID:          u.newID(),
		ContractID:  contractID,
		Action:      "variation.added",
		Detail:      fmt.Sprintf("variation %s requested by %s (cost delta %.2f)", added.Number, requestedBy, added.CostDelta),
		PerformedBy: requestedBy,
		PerformedAt: now,
	})

	log.Printf("[variation][usecase] added contract_id=%s number=%s", contractID, added.Number)
	return updated, added, nil
}

func (u *VariationUseCase) ApproveVariation(ctx context.Context, contractID, variationID, approvedBy string) (entities.Contract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if strings.TrimSpace(approvedBy) == "" {
		return entities.Contract{}, ErrInvalidActor
	}

	now := u.now()
	var number string
	updated, err := u.contracts.Update(ctx, contractID, approvedBy, func(c *entities.Contract) error {
		for i := range c.Variations {
			v := &c.Variations[i]
			if v.ID != variationID {
				continue
			}
			v.Status = entities.VariationStatusApproved
			v.ApprovedBy = approvedBy
			approvedAt := now
			v.ApprovedAt = &approvedAt
			number = v.Number
			return nil
		}
		return ErrVariationNotFound
	})
	if err != nil {
		return entities.Contract{}, err
	}

	u.audit.Record(ctx, entities.AuditEntry{
		ID:          u.newID(),
		ContractID:  contractID,
		Action:      "variation.approved",
		Detail:      fmt.Sprintf("variation %s approved by %s", number, approvedBy),
		PerformedBy: approvedBy,
		PerformedAt: now,
	})
	return updated, nil
}
