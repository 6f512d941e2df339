package repository

import (
	"context"
	"fmt"
	"time"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/cache"
	"locksmith_invoicing/internal/usecase/interfaces"
)

// JobReceiptMemoryRepository keeps receipts for JobReceiptRetention in memory.
type JobReceiptMemoryRepository struct {
	receipts *cache.TTLCache[string, entities.JobReceipt]
}

var _ interfaces.IJobReceiptRepository = (*JobReceiptMemoryRepository)(nil)

func NewJobReceiptMemoryRepository() *JobReceiptMemoryRepository {
	return &JobReceiptMemoryRepository{receipts: cache.NewTTLCache[string, entities.JobReceipt]()}
}

func (r *JobReceiptMemoryRepository) Reserve(_ context.Context, rec entities.JobReceipt) (entities.JobReceipt, error) {
	var existing entities.JobReceipt
	exists := false
	r.receipts.Update(rec.ID, JobReceiptRetention, func(cur entities.JobReceipt, found bool) (entities.JobReceipt, bool) {
		if found {
			existing, exists = cur, true
			return cur, true
		}
		rec.Status = entities.JobReceiptPending
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now()
		}
		return rec, true
	})
	if exists {
		return existing, fmt.Errorf("%w: %s", interfaces.ErrJobReceiptExists, rec.ID)
	}
	return rec, nil
}

func (r *JobReceiptMemoryRepository) Complete(_ context.Context, rec entities.JobReceipt) (entities.JobReceipt, error) {
	var out entities.JobReceipt
	r.receipts.Update(rec.ID, JobReceiptRetention, func(cur entities.JobReceipt, found bool) (entities.JobReceipt, bool) {
		if !found {
			return cur, false
		}
		cur.Status = entities.JobReceiptCompleted
		cur.InvoiceID = rec.InvoiceID
		cur.DocNumber = rec.DocNumber
		cur.CompletedAt = rec.CompletedAt
		out = cur
		return cur, true
	})
	return out, nil
}

func (r *JobReceiptMemoryRepository) Release(_ context.Context, id string) error {
	r.receipts.Update(id, JobReceiptRetention, func(cur entities.JobReceipt, found bool) (entities.JobReceipt, bool) {
		return cur, found && cur.Status != entities.JobReceiptPending
	})
	return nil
}
