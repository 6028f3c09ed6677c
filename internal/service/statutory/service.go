package statutory

import (
	"context"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
)

type RuleSetServiceImpl struct {
	repo statutory.RuleSetRepository
}

func NewRuleSetService(repo statutory.RuleSetRepository) statutory.RuleSetService {
	return &RuleSetServiceImpl{repo: repo}
}

func (s *RuleSetServiceImpl) List(ctx context.Context) ([]statutory.RuleSetResponse, error) {
	ruleSets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]statutory.RuleSetResponse, 0, len(ruleSets))
	for _, ruleSet := range ruleSets {
		responses = append(responses, statutory.NewRuleSetResponse(ruleSet))
	}
	return responses, nil
}
