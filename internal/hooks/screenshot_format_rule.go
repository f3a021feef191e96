package hooks

import (
	"fmt"
	"strings"
)

const (
	// screenshotToolMarker matches namespaced tool names such as
	// mcp_chrome_take_screenshot or mcp__chrome-devtools__take_screenshot.
	screenshotToolMarker = "take_screenshot"

	requiredScreenshotFormat = "jpeg"
	defaultScreenshotFormat  = "png"
)

// screenshotFormatRule blocks screenshot captures that do not request JPEG output.
type screenshotFormatRule struct{}

// NewScreenshotFormatRule creates a new rule that requires format='jpeg' on take_screenshot calls.
func NewScreenshotFormatRule() Rule {
	return &screenshotFormatRule{}
}

// Name returns the unique identifier for this rule.
func (r *screenshotFormatRule) Name() string {
	return "screenshot-format"
}

// Description returns a human-readable description of what this rule does.
func (r *screenshotFormatRule) Description() string {
	return "Blocks take_screenshot calls unless format is 'jpeg'"
}

// Evaluate checks the format parameter of screenshot tool calls.
// A missing format is treated as the browser default, png.
func (r *screenshotFormatRule) Evaluate(input *ToolInput) (*RuleResult, error) {
	if !strings.Contains(input.ToolName, screenshotToolMarker) {
		return NewAllowedResult(), nil
	}

	if format, ok := input.GetStringArg("format"); ok && format == requiredScreenshotFormat {
		return NewAllowedResult(), nil
	}

	// non-string values are reported as sent
	var format interface{} = defaultScreenshotFormat
	if value, ok := input.GetArg("format"); ok {
		format = value
	}

	return NewBlockedResult(r.Name(), screenshotFormatMessage(format)), nil
}

func screenshotFormatMessage(format interface{}) string {
	lines := []string{
		fmt.Sprintf("BLOCKED: %s called with format='%v'", screenshotToolMarker, format),
		"Bug: the browser automation server returns screenshots in this format that the host cannot process, which breaks the session.",
		fmt.Sprintf("Current: format='%v'", format),
		fmt.Sprintf("Required: format='%s'", requiredScreenshotFormat),
		fmt.Sprintf("Fix: retry the same %s call with format='%s'.", screenshotToolMarker, requiredScreenshotFormat),
	}
	return strings.Join(lines, "\n")
}
