package statutory

import "errors"

var (
	ErrRuleSetNotFound    = errors.New("statutory rule set not found")
	ErrNoRuleSetForDate   = errors.New("no statutory rule set covers the requested date")
	ErrEffectiveFromTaken = errors.New("a statutory rule set with this effective date already exists")
)
