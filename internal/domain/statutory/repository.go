package statutory

import (
	"context"
	"time"
)

// RuleSetRepository loads statutory rule-set versions. There is no company
// scoping here: the rules are jurisdiction-wide, not per tenant.
type RuleSetRepository interface {
	GetByID(ctx context.Context, id string) (RuleSet, error)
	// GetForDate returns the version whose effective range covers date.
	GetForDate(ctx context.Context, date time.Time) (RuleSet, error)
	List(ctx context.Context) ([]RuleSet, error)
	Create(ctx context.Context, ruleSet RuleSet) (RuleSet, error)
}
