package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/acadsched-api/internal/models"
)

// PolicyRepository handles persistence for term-scoped policies.
type PolicyRepository struct {
	db *sqlx.DB
}

// NewPolicyRepository creates a new repository instance.
func NewPolicyRepository(db *sqlx.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

// ListByTerm returns all policy entries for a term (or the GLOBAL sentinel).
func (r *PolicyRepository) ListByTerm(ctx context.Context, termID string) ([]models.Policy, error) {
	const query = `SELECT term_id, key, value, description, created_at, updated_at FROM policies WHERE term_id = $1 ORDER BY key ASC`
	var policies []models.Policy
	if err := r.db.SelectContext(ctx, &policies, query, termID); err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	return policies, nil
}

// Find loads one policy entry by its composite key.
func (r *PolicyRepository) Find(ctx context.Context, termID, key string) (*models.Policy, error) {
	const query = `SELECT term_id, key, value, description, created_at, updated_at FROM policies WHERE term_id = $1 AND key = $2`
	var policy models.Policy
	if err := r.db.GetContext(ctx, &policy, query, termID, key); err != nil {
		return nil, err
	}
	return &policy, nil
}

// Upsert creates or replaces a policy entry.
func (r *PolicyRepository) Upsert(ctx context.Context, policy *models.Policy) error {
	now := time.Now().UTC()
	policy.UpdatedAt = now
	const query = `INSERT INTO policies (term_id, key, value, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (term_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, policy.TermID, policy.Key, policy.Value, policy.Description, now); err != nil {
		return fmt.Errorf("upsert policy: %w", err)
	}
	return nil
}
