package statutory

import "context"

// RuleSetService exposes the published rule-set versions. Versions are
// seeded by migration and immutable afterwards, so reads are all it offers.
type RuleSetService interface {
	List(ctx context.Context) ([]RuleSetResponse, error)
}
