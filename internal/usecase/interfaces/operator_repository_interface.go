package interfaces

import (
	"context"

	"locksmith_invoicing/internal/domain/entities"
)

// IOperatorRepository abstracts persistence for operators.
//
// GetByEmail returns a zero Operator (empty Email) when nothing matches.
type IOperatorRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.Operator, error)
	Upsert(ctx context.Context, op entities.Operator) (entities.Operator, error)
	UpdatePasswordHash(ctx context.Context, email, hash string) (entities.Operator, error)
}
