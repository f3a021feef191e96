package hooks

// RuleResult is the decision for a single tool invocation.
type RuleResult struct {
	// Allowed reports whether the host may execute the tool call.
	Allowed bool

	// Message is shown to the operator when the call is blocked.
	Message string

	// RuleName identifies the rule that blocked the call.
	RuleName string
}

// NewAllowedResult creates a result that lets the tool call through.
func NewAllowedResult() *RuleResult {
	return &RuleResult{
		Allowed: true,
	}
}

// NewBlockedResult creates a result that suppresses the tool call.
func NewBlockedResult(ruleName, message string) *RuleResult {
	return &RuleResult{
		Allowed:  false,
		Message:  message,
		RuleName: ruleName,
	}
}
