package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase/interfaces"
)

// PartyStatistics summarizes one party's contract book.
type PartyStatistics struct {
	Total        int                             `json:"total"`
	TotalValue   float64                         `json:"total_value"`
	AverageValue float64                         `json:"average_value"`
	ByStatus     map[entities.ContractStatus]int `json:"by_status"`
}

type IContractLifecycleUseCase interface {
	GetContract(ctx context.Context, id string) (entities.Contract, error)
	ListByParty(ctx context.Context, partyID string, role entities.PartyRole, statusPrefix string) ([]entities.Contract, error)
	Activate(ctx context.Context, contractID, actor string) (entities.Contract, error)
	Transition(ctx context.Context, contractID string, to entities.ContractStatus, actor, reason string) (entities.Contract, error)
	GetStatistics(ctx context.Context, partyID string, role entities.PartyRole) (PartyStatistics, error)
	GetAuditTrail(ctx context.Context, contractID string, limit int32) ([]entities.AuditEntry, error)
}

type ContractLifecycleUseCase struct {
	contracts interfaces.IContractRepository
	audit     interfaces.IAuditRecorder
	projects  interfaces.IProjectService
	now       Clock
	newID     IDGenerator
}

var _ IContractLifecycleUseCase = (*ContractLifecycleUseCase)(nil)

func NewContractLifecycleUseCase(contracts interfaces.IContractRepository, audit interfaces.IAuditRecorder, projects interfaces.IProjectService) *ContractLifecycleUseCase {
	return &ContractLifecycleUseCase{
		contracts: contracts,
		audit:     audit,
		projects:  projects,
		now:       defaultClock,
		newID:     defaultIDGenerator,
	}
}

// WithClock overrides the time source. Test hook.
func (u *ContractLifecycleUseCase) WithClock(c Clock) *ContractLifecycleUseCase {
	u.now = c
	return u
}

func (u *ContractLifecycleUseCase) GetContract(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.contracts.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractLifecycleUseCase) ListByParty(ctx context.Context, partyID string, role entities.PartyRole, statusPrefix string) ([]entities.Contract, error) {
	partyID = strings.TrimSpace(partyID)
	if partyID == "" {
		return nil, newValidationError("partyId is required")
	}
	return u.contracts.ListByParty(ctx, partyID, role, statusPrefix)
}

// Activate moves a fully signed contract to active and flips the linked
// project to active as a side effect. The project update happens after the
// contract write; project-service failures are logged, not rolled back.
func (u *ContractLifecycleUseCase) Activate(ctx context.Context, contractID, actor string) (entities.Contract, error) {
	updated, err := u.Transition(ctx, contractID, entities.ContractStatusActive, actor, "contract activated")
	if err != nil {
		return entities.Contract{}, err
	}
	if err := u.projects.SetProjectStatus(ctx, updated.ProjectID, "active"); err != nil {
		log.Printf("[contract][lifecycle] project activation failed contract_id=%s project_id=%s err=%v", updated.ID, updated.ProjectID, err)
	}
	return updated, nil
}

// Transition moves the contract along one legal edge. The repository is the
// authority on edge legality; this method just stamps the bookkeeping.
func (u *ContractLifecycleUseCase) Transition(ctx context.Context, contractID string, to entities.ContractStatus, actor, reason string) (entities.Contract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if strings.TrimSpace(actor) == "" {
		return entities.Contract{}, ErrInvalidActor
	}

	now := u.now()
	var from entities.ContractStatus
	updated, err := u.contracts.Update(ctx, contractID, actor, func(c *entities.Contract) error {
		from = c.Status
		c.Status = to
		if to == entities.ContractStatusTerminated || to == entities.ContractStatusCancelled {
			terminatedAt := now
			c.TerminatedAt = &terminatedAt
		}
		return nil
	})
	if err != nil {
		return entities.Contract{}, err
	}

	u.audit.Record(ctx, entities.AuditEntry{
		ID:          u.newID(),
		ContractID:  contractID,
		Action:      "contract." + string(to),
		Detail:      fmt.Sprintf("status %s -> %s by %s: %s", from, to, actor, reason),
		PerformedBy: actor,
		PerformedAt: now,
	})

	log.Printf("[contract][lifecycle] transition contract_id=%s from=%s to=%s", contractID, from, to)
	return updated, nil
}

func (u *ContractLifecycleUseCase) GetStatistics(ctx context.Context, partyID string, role entities.PartyRole) (PartyStatistics, error) {
	partyID = strings.TrimSpace(partyID)
	if partyID == "" {
		return PartyStatistics{}, newValidationError("partyId is required")
	}

	contracts, err := u.contracts.ListByParty(ctx, partyID, role, "")
	if err != nil {
		return PartyStatistics{}, err
	}

	stats := PartyStatistics{ByStatus: map[entities.ContractStatus]int{}}
	for _, c := range contracts {
		stats.Total++
		stats.TotalValue += c.Terms.TotalValue
		stats.ByStatus[c.Status]++
	}
	if stats.Total > 0 {
		stats.AverageValue = stats.TotalValue / float64(stats.Total)
	}
	return stats, nil
}

func (u *ContractLifecycleUseCase) GetAuditTrail(ctx context.Context, contractID string, limit int32) ([]entities.AuditEntry, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	return u.audit.List(ctx, contractID, limit)
}
