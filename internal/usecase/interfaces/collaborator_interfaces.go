package interfaces

import (
	"context"

	"renova_contracts/internal/domain/entities"
)

//go:generate mockgen -source=collaborator_interfaces.go -destination=mocks/collaborator_mocks.go -package=mock_interfaces

// Lookup interfaces over the neighbouring services the contracts service
// consumes. Absent values are reported as zero values with a nil error; the
// use cases translate those into their own not-found sentinels.

type IQuoteService interface {
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
}

type IScopeOfWorkService interface {
	GetScopeOfWork(ctx context.Context, id string) (entities.ScopeOfWork, error)
}

type IProjectService interface {
	GetProject(ctx context.Context, id string) (entities.Project, error)
	SetProjectStatus(ctx context.Context, id, status string) error
}

type IUserService interface {
	GetUser(ctx context.Context, id string) (entities.UserProfile, error)
}
