package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ringAuditRepo keeps entries in insertion order and applies the same
// keep-the-newest eviction contract as the SQL PruneToCap.
type ringAuditRepo struct {
	entries []model.AuditLogEntry
}

func (r *ringAuditRepo) Create(_ context.Context, e *model.AuditLogEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *ringAuditRepo) ListRecent(_ context.Context, parkID uuid.UUID, limit int) ([]model.AuditLogEntry, error) {
	var out []model.AuditLogEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].ParkID == parkID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *ringAuditRepo) ListByDate(_ context.Context, parkID uuid.UUID, from, to time.Time) ([]model.AuditLogEntry, error) {
	var out []model.AuditLogEntry
	for _, e := range r.entries {
		if e.ParkID == parkID && !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *ringAuditRepo) PruneToCap(_ context.Context, parkID uuid.UUID, cap int) error {
	var kept, park []model.AuditLogEntry
	for _, e := range r.entries {
		if e.ParkID == parkID {
			park = append(park, e)
		} else {
			kept = append(kept, e)
		}
	}
	if len(park) > cap {
		park = park[len(park)-cap:]
	}
	r.entries = append(kept, park...)
	return nil
}

func (r *ringAuditRepo) byPark(parkID uuid.UUID) []model.AuditLogEntry {
	var out []model.AuditLogEntry
	for _, e := range r.entries {
		if e.ParkID == parkID {
			out = append(out, e)
		}
	}
	return out
}

func auditPayload(t *testing.T, parkID uuid.UUID, description string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      uuid.NewString(),
		UserName:    "Awa Koné",
		Action:      "create",
		EntityType:  "activity",
		Description: description,
	})
	require.NoError(t, err)
	return raw
}

func TestHandleInsertsEntry(t *testing.T) {
	repo := &ringAuditRepo{}
	w := NewAuditWorker(repo, 100)
	parkID := uuid.New()

	require.NoError(t, w.Handle(context.Background(), auditPayload(t, parkID, "Vente enregistrée")))

	entries := repo.byPark(parkID)
	require.Len(t, entries, 1)
	assert.Equal(t, "Vente enregistrée", entries[0].Description)
	assert.Equal(t, "{}", entries[0].Metadata)
}

func TestHandleRejectsGarbagePayload(t *testing.T) {
	repo := &ringAuditRepo{}
	w := NewAuditWorker(repo, 100)

	err := w.Handle(context.Background(), json.RawMessage(`{not json`))
	assert.Error(t, err)
	assert.Empty(t, repo.entries)
}

func TestHandleEvictsOldestBeyondCap(t *testing.T) {
	repo := &ringAuditRepo{}
	w := NewAuditWorker(repo, 5)
	parkID := uuid.New()
	otherPark := uuid.New()

	require.NoError(t, w.Handle(context.Background(), auditPayload(t, otherPark, "autre parc")))
	for i := 1; i <= 8; i++ {
		payload := auditPayload(t, parkID, fmt.Sprintf("entrée %d", i))
		require.NoError(t, w.Handle(context.Background(), payload))
	}

	// Only the 5 newest of the busy park survive; the quiet park keeps its one.
	entries := repo.byPark(parkID)
	require.Len(t, entries, 5)
	assert.Equal(t, "entrée 4", entries[0].Description)
	assert.Equal(t, "entrée 8", entries[4].Description)
	assert.Len(t, repo.byPark(otherPark), 1)
}
