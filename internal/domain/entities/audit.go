package entities

import "time"

// AuditEntry is one append-only record of a state-changing action on a
// contract, kept for evidentiary purposes.
//
// Storage model (DynamoDB):
//   - PK: contract_id
//   - SK: entry_key ("performedAt#auditID"), queried newest-first
//
// Entries are immutable once written. Their absence never invalidates the
// mutation they describe: audit writes are best-effort.
type AuditEntry struct {
	ID          string            `json:"id"`
	ContractID  string            `json:"contract_id"`
	Action      string            `json:"action"`
	Detail      string            `json:"detail,omitempty"`
	PerformedBy string            `json:"performed_by"`
	PerformedAt time.Time         `json:"performed_at"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
