package service

import (
	"context"
	"time"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"
	"github.com/madouyatt95/laserpark/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AuditService is the write/read facade over the audit log.
//
// Record is fire-and-forget: a failure to log never blocks the business
// operation that triggered it. With a dispatcher wired, entries go through
// the redis queue and the worker pool; without one (unit tests, degraded
// mode) they are written synchronously, best-effort.
type AuditService interface {
	Record(ctx context.Context, entry dto.AuditEntry)
	Recent(ctx context.Context, parkID uuid.UUID, limit int) ([]dto.AuditLogResponse, error)
	ByDate(ctx context.Context, parkID uuid.UUID, from, to time.Time) ([]dto.AuditLogResponse, error)
}

type auditService struct {
	repo       repository.AuditRepository
	dispatcher *worker.Dispatcher
}

func NewAuditService(repo repository.AuditRepository, dispatcher *worker.Dispatcher) AuditService {
	return &auditService{repo: repo, dispatcher: dispatcher}
}

func (s *auditService) Record(ctx context.Context, entry dto.AuditEntry) {
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueAudit(ctx, entry); err == nil {
			return
		} else {
			log.Warn().Err(err).Str("action", entry.Action).Msg("audit enqueue failed, falling back to direct write")
		}
	}
	if err := s.repo.Create(ctx, worker.AuditEntryToModel(entry)); err != nil {
		log.Warn().Err(err).Str("action", entry.Action).Msg("audit write failed")
	}
}

func (s *auditService) Recent(ctx context.Context, parkID uuid.UUID, limit int) ([]dto.AuditLogResponse, error) {
	logs, err := s.repo.ListRecent(ctx, parkID, limit)
	if err != nil {
		return nil, err
	}
	return auditToResponses(logs), nil
}

func (s *auditService) ByDate(ctx context.Context, parkID uuid.UUID, from, to time.Time) ([]dto.AuditLogResponse, error) {
	logs, err := s.repo.ListByDate(ctx, parkID, from, to)
	if err != nil {
		return nil, err
	}
	return auditToResponses(logs), nil
}

func auditToResponses(logs []model.AuditLogEntry) []dto.AuditLogResponse {
	out := make([]dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		resp := dto.AuditLogResponse{
			ID:          l.ID.String(),
			ParkID:      l.ParkID.String(),
			UserID:      l.UserID.String(),
			UserName:    l.UserName,
			Action:      l.Action,
			EntityType:  l.EntityType,
			Description: l.Description,
			Metadata:    l.Metadata,
			CreatedAt:   l.CreatedAt.Format(time.RFC3339),
		}
		if l.EntityID != nil {
			resp.EntityID = l.EntityID.String()
		}
		out = append(out, resp)
	}
	return out
}
