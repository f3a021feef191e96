package hooks

//go:generate mockgen -source=rule.go -destination=mock_rule.go -package=hooks

// Rule decides whether a tool invocation should be allowed.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Description returns a human-readable description of what this rule does.
	Description() string

	// Evaluate checks if the tool input should be allowed.
	Evaluate(input *ToolInput) (*RuleResult, error)
}

// DefaultRules returns the rules installed by the pre-tool-use command.
func DefaultRules() []Rule {
	return []Rule{
		NewScreenshotFormatRule(),
	}
}
