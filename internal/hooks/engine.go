package hooks

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ruleEngine runs rules in order and stops at the first block.
type ruleEngine struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewRuleEngine creates a new rule engine with the given rules.
func NewRuleEngine(logger zerolog.Logger, rules ...Rule) *ruleEngine {
	return &ruleEngine{
		rules:  rules,
		logger: logger,
	}
}

// Evaluate evaluates all rules against the tool input.
// Returns the first blocking result, or an allowed result if no rules block.
func (e *ruleEngine) Evaluate(input *ToolInput) (*RuleResult, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	e.logger.Debug().
		Str("tool_name", input.ToolName).
		Int("rules", len(e.rules)).
		Msg("evaluating tool call")

	for _, rule := range e.rules {
		result, err := rule.Evaluate(input)
		if err != nil {
			return nil, fmt.Errorf("rule %s failed: %w", rule.Name(), err)
		}
		if result == nil {
			return nil, fmt.Errorf("rule %s returned no result", rule.Name())
		}

		if !result.Allowed {
			e.logger.Debug().
				Str("tool_name", input.ToolName).
				Str("rule", result.RuleName).
				Msg("tool call blocked")
			return result, nil
		}
	}

	e.logger.Debug().Str("tool_name", input.ToolName).Msg("tool call allowed")
	return NewAllowedResult(), nil
}
