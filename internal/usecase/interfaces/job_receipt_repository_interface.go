package interfaces

import (
	"context"

	"locksmith_invoicing/internal/domain/entities"
)

// IJobReceiptRepository stores idempotency receipts for job submissions.
//
//   - Reserve creates a pending receipt; if one already exists it returns the
//     stored receipt and ErrJobReceiptExists.
//   - Complete records the invoice the job landed on.
//   - Release removes a pending receipt after a failed attempt.
type IJobReceiptRepository interface {
	Reserve(ctx context.Context, r entities.JobReceipt) (entities.JobReceipt, error)
	Complete(ctx context.Context, r entities.JobReceipt) (entities.JobReceipt, error)
	Release(ctx context.Context, id string) error
}
