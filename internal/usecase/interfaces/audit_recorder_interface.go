package interfaces

import (
	"context"

	"renova_contracts/internal/domain/entities"
)

//go:generate mockgen -source=audit_recorder_interface.go -destination=mocks/audit_recorder_mock.go -package=mock_interfaces

// IAuditRecorder is the append-only audit trail.
//
// Record is fire-and-forget: implementations must never block the caller on
// the underlying write and must never surface its failure. A lost audit
// entry never invalidates the mutation it describes.
type IAuditRecorder interface {
	Record(ctx context.Context, e entities.AuditEntry)
	List(ctx context.Context, contractID string, limit int32) ([]entities.AuditEntry, error)
}
