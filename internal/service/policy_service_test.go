package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type policyRepoStub struct {
	items map[string]models.Policy
}

func policyKey(termID, key string) string { return termID + "/" + key }

func (s *policyRepoStub) ListByTerm(ctx context.Context, termID string) ([]models.Policy, error) {
	var out []models.Policy
	for _, p := range s.items {
		if p.TermID == termID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *policyRepoStub) Find(ctx context.Context, termID, key string) (*models.Policy, error) {
	if p, ok := s.items[policyKey(termID, key)]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

func (s *policyRepoStub) Upsert(ctx context.Context, policy *models.Policy) error {
	if s.items == nil {
		s.items = make(map[string]models.Policy)
	}
	s.items[policyKey(policy.TermID, policy.Key)] = *policy
	return nil
}

func TestPolicyServiceResolvePrefersTermValue(t *testing.T) {
	stub := &policyRepoStub{items: map[string]models.Policy{
		policyKey("term-1", "max_daily_hours"): {TermID: "term-1", Key: "max_daily_hours", Value: "6"},
		policyKey("GLOBAL", "max_daily_hours"): {TermID: "GLOBAL", Key: "max_daily_hours", Value: "8"},
	}}
	svc := NewPolicyService(stub, nil, "GLOBAL", nil)

	policy, err := svc.Resolve(context.Background(), "term-1", "max_daily_hours")
	require.NoError(t, err)
	assert.Equal(t, "6", policy.Value)
}

func TestPolicyServiceResolveFallsBackToGlobal(t *testing.T) {
	stub := &policyRepoStub{items: map[string]models.Policy{
		policyKey("GLOBAL", "max_daily_hours"): {TermID: "GLOBAL", Key: "max_daily_hours", Value: "8"},
	}}
	svc := NewPolicyService(stub, nil, "GLOBAL", nil)

	policy, err := svc.Resolve(context.Background(), "term-1", "max_daily_hours")
	require.NoError(t, err)
	assert.Equal(t, "GLOBAL", policy.TermID)
	assert.Equal(t, "8", policy.Value)
}

func TestPolicyServiceResolveMissingEverywhere(t *testing.T) {
	svc := NewPolicyService(&policyRepoStub{}, nil, "GLOBAL", nil)

	_, err := svc.Resolve(context.Background(), "term-1", "unknown")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
