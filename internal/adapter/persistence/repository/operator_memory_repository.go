package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase/interfaces"
)

// OperatorMemoryRepository keeps operators in process memory, seeded at
// startup. Password changes do not survive a restart.
type OperatorMemoryRepository struct {
	mu        sync.RWMutex
	operators map[string]entities.Operator
}

var _ interfaces.IOperatorRepository = (*OperatorMemoryRepository)(nil)

func NewOperatorMemoryRepository(seed ...entities.Operator) *OperatorMemoryRepository {
	r := &OperatorMemoryRepository{operators: make(map[string]entities.Operator, len(seed))}
	for _, op := range seed {
		op.Email = normalizeEmail(op.Email)
		r.operators[op.Email] = op
	}
	return r
}

func (r *OperatorMemoryRepository) GetByEmail(_ context.Context, email string) (entities.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.operators[normalizeEmail(email)], nil
}

func (r *OperatorMemoryRepository) Upsert(_ context.Context, op entities.Operator) (entities.Operator, error) {
	op.Email = normalizeEmail(op.Email)
	r.mu.Lock()
	r.operators[op.Email] = op
	r.mu.Unlock()
	return op, nil
}

func (r *OperatorMemoryRepository) UpdatePasswordHash(_ context.Context, email, hash string) (entities.Operator, error) {
	email = normalizeEmail(email)
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.operators[email]
	if !ok {
		return entities.Operator{}, nil
	}
	op.PasswordHash = hash
	r.operators[email] = op
	return op, nil
}

type operatorSeed struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role"`
}

// ParseOperatorsJSON reads the OPERATORS_JSON seed: a JSON array of
// {email, password_hash, first_name, last_name, role}. Hashes are bcrypt.
func ParseOperatorsJSON(raw string) ([]entities.Operator, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var seeds []operatorSeed
	if err := json.Unmarshal([]byte(raw), &seeds); err != nil {
		return nil, fmt.Errorf("parse OPERATORS_JSON: %w", err)
	}
	out := make([]entities.Operator, 0, len(seeds))
	for i, s := range seeds {
		if normalizeEmail(s.Email) == "" || s.PasswordHash == "" {
			return nil, fmt.Errorf("parse OPERATORS_JSON: entry %d needs email and password_hash", i)
		}
		role := entities.OperatorRole(strings.ToLower(s.Role))
		if role == "" {
			role = entities.OperatorRoleLocksmith
		}
		out = append(out, entities.Operator{
			Email:        normalizeEmail(s.Email),
			PasswordHash: s.PasswordHash,
			FirstName:    s.FirstName,
			LastName:     s.LastName,
			Role:         role,
		})
	}
	return out, nil
}
