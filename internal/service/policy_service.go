package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type policyRepository interface {
	ListByTerm(ctx context.Context, termID string) ([]models.Policy, error)
	Find(ctx context.Context, termID, key string) (*models.Policy, error)
	Upsert(ctx context.Context, policy *models.Policy) error
}

// PolicyService manages term-scoped configuration values. Lookups fall back
// to the GLOBAL sentinel term when the requested term has no entry.
type PolicyService struct {
	repo         policyRepository
	validator    *validator.Validate
	globalTermID string
	logger       *zap.Logger
}

// NewPolicyService creates a new policy service.
func NewPolicyService(repo policyRepository, validate *validator.Validate, globalTermID string, logger *zap.Logger) *PolicyService {
	if validate == nil {
		validate = validator.New()
	}
	if globalTermID == "" {
		globalTermID = models.PolicyGlobalTermID
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PolicyService{repo: repo, validator: validate, globalTermID: globalTermID, logger: logger}
}

// ListByTerm returns the policies stored directly under a term.
func (s *PolicyService) ListByTerm(ctx context.Context, termID string) ([]models.Policy, error) {
	policies, err := s.repo.ListByTerm(ctx, termID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list policies")
	}
	return policies, nil
}

// Resolve returns the policy value for a term, falling back to the GLOBAL
// entry when the term has none.
func (s *PolicyService) Resolve(ctx context.Context, termID, key string) (*models.Policy, error) {
	policy, err := s.repo.Find(ctx, termID, key)
	if err == nil {
		return policy, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve policy")
	}

	policy, err = s.repo.Find(ctx, s.globalTermID, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "policy not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve policy")
	}
	return policy, nil
}

// Upsert stores a policy value under a term or the GLOBAL sentinel.
func (s *PolicyService) Upsert(ctx context.Context, req dto.UpsertPolicyRequest) (*models.Policy, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid policy payload")
	}
	policy := &models.Policy{
		TermID:      req.TermID,
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
	}
	if err := s.repo.Upsert(ctx, policy); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save policy")
	}
	s.logger.Info("policy saved", zap.String("term_id", policy.TermID), zap.String("key", policy.Key))
	return policy, nil
}
