package audit

import (
	"context"
	"log"
	"sync"
	"time"

	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase/interfaces"
)

const (
	defaultQueueSize    = 256
	defaultWriteTimeout = 5 * time.Second
)

// Appender is the persistence half of the audit trail.
type Appender interface {
	Append(ctx context.Context, e entities.AuditEntry) error
	List(ctx context.Context, contractID string, limit int32) ([]entities.AuditEntry, error)
}

// Sink is a best-effort, fire-and-forget audit recorder. Record enqueues and
// returns immediately; a single worker drains the queue into the store.
// Write failures and queue overflow are logged and dropped: audit logging
// must never fail or delay the mutation it describes.
type Sink struct {
	store Appender
	queue chan entities.AuditEntry
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

var _ interfaces.IAuditRecorder = (*Sink)(nil)

func NewSink(store Appender) *Sink {
	s := &Sink{
		store: store,
		queue: make(chan entities.AuditEntry, defaultQueueSize),
		done:  make(chan struct{}),
	}
	go s.drain()
	return s
}

func (s *Sink) Record(_ context.Context, e entities.AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		log.Printf("[audit][sink] closed, dropping entry contract_id=%s action=%s", e.ContractID, e.Action)
		return
	}
	select {
	case s.queue <- e:
	default:
		log.Printf("[audit][sink] queue full, dropping entry contract_id=%s action=%s", e.ContractID, e.Action)
	}
}

func (s *Sink) List(ctx context.Context, contractID string, limit int32) ([]entities.AuditEntry, error) {
	return s.store.List(ctx, contractID, limit)
}

// Close stops accepting entries and drains what is already queued.
// Entries recorded after Close are dropped with a log line.
func (s *Sink) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()
	<-s.done
}

func (s *Sink) drain() {
	defer close(s.done)
	for e := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), defaultWriteTimeout)
		if err := s.store.Append(ctx, e); err != nil {
			log.Printf("[audit][sink] write failed contract_id=%s action=%s err=%v", e.ContractID, e.Action, err)
		}
		cancel()
	}
}
