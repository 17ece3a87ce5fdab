package interfaces

import (
	"context"

	"renova_contracts/internal/domain/entities"
)

//go:generate mockgen -source=contract_repository_interface.go -destination=mocks/contract_repository_mock.go -package=mock_interfaces

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// Update is a version-checked read-modify-write: the implementation re-reads
// the contract, applies mutate, validates any status change against the
// state machine, bumps UpdatedAt and Version, and writes conditionally on
// the version it read. A conditional-check failure retries the whole cycle.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	Update(ctx context.Context, id, actor string, mutate func(*entities.Contract) error) (entities.Contract, error)
	ListByParty(ctx context.Context, partyID string, role entities.PartyRole, statusPrefix string) ([]entities.Contract, error)
	ListByStatuses(ctx context.Context, statuses []entities.ContractStatus) ([]entities.Contract, error)
}
