package worker

import (
	"context"
	"encoding/json"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"

	"github.com/google/uuid"
)

// AuditWorker consumes audit jobs: insert the entry, then prune the park's
// log back down to the configured ring size (oldest evicted first).
type AuditWorker struct {
	repo repository.AuditRepository
	cap  int
}

func NewAuditWorker(repo repository.AuditRepository, cap int) *AuditWorker {
	return &AuditWorker{repo: repo, cap: cap}
}

func (w *AuditWorker) Handle(ctx context.Context, payload json.RawMessage) error {
	var entry dto.AuditEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return err
	}
	row := AuditEntryToModel(entry)
	if err := w.repo.Create(ctx, row); err != nil {
		return err
	}
	return w.repo.PruneToCap(ctx, row.ParkID, w.cap)
}

// AuditEntryToModel converts the queue payload into a row. Unparseable IDs
// fall back to zero UUIDs rather than dropping the entry — a malformed audit
// row is better than a missing one.
func AuditEntryToModel(entry dto.AuditEntry) *model.AuditLogEntry {
	parkID, _ := uuid.Parse(entry.ParkID)
	userID, _ := uuid.Parse(entry.UserID)
	row := &model.AuditLogEntry{
		ParkID:      parkID,
		UserID:      userID,
		UserName:    entry.UserName,
		Action:      entry.Action,
		EntityType:  entry.EntityType,
		Description: entry.Description,
		Metadata:    "{}",
	}
	if entry.EntityID != "" {
		if id, err := uuid.Parse(entry.EntityID); err == nil {
			row.EntityID = &id
		}
	}
	if len(entry.Metadata) > 0 {
		if raw, err := json.Marshal(entry.Metadata); err == nil {
			row.Metadata = string(raw)
		}
	}
	return row
}
