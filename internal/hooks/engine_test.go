package hooks

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRuleEngine(t *testing.T) {
	tests := []struct {
		name      string
		ruleCount int
	}{
		{
			name:      "creates engine with no rules",
			ruleCount: 0,
		},
		{
			name:      "creates engine with one rule",
			ruleCount: 1,
		},
		{
			name:      "creates engine with multiple rules",
			ruleCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			rules := make([]Rule, 0, tt.ruleCount)
			for i := 0; i < tt.ruleCount; i++ {
				rules = append(rules, NewMockRule(ctrl))
			}

			got := NewRuleEngine(zerolog.Nop(), rules...)
			assert.NotNil(t, got)
			assert.Len(t, got.rules, tt.ruleCount)
		})
	}
}

func TestRuleEngine_Evaluate(t *testing.T) {
	input := &ToolInput{ToolName: "mcp_chrome_take_screenshot"}

	tests := []struct {
		name       string
		setupRules func(ctrl *gomock.Controller) []Rule
		input      *ToolInput
		want       *RuleResult
		wantErr    string
	}{
		{
			name: "no rules returns allowed",
			setupRules: func(ctrl *gomock.Controller) []Rule {
				return nil
			},
			input: input,
			want:  NewAllowedResult(),
		},
		{
			name: "all rules allow returns allowed",
			setupRules: func(ctrl *gomock.Controller) []Rule {
				rule1 := NewMockRule(ctrl)
				rule1.EXPECT().Evaluate(input).Return(NewAllowedResult(), nil)
				rule2 := NewMockRule(ctrl)
				rule2.EXPECT().Evaluate(input).Return(NewAllowedResult(), nil)
				return []Rule{rule1, rule2}
			},
			input: input,
			want:  NewAllowedResult(),
		},
		{
			name: "first rule blocks and second rule is not evaluated",
			setupRules: func(ctrl *gomock.Controller) []Rule {
				rule1 := NewMockRule(ctrl)
				rule1.EXPECT().Evaluate(input).Return(NewBlockedResult("rule1", "blocked by rule1"), nil)
				rule2 := NewMockRule(ctrl)
				return []Rule{rule1, rule2}
			},
			input: input,
			want:  NewBlockedResult("rule1", "blocked by rule1"),
		},
		{
			name: "second rule blocks returns blocked",
			setupRules: func(ctrl *gomock.Controller) []Rule {
				rule1 := NewMockRule(ctrl)
				rule1.EXPECT().Evaluate(input).Return(NewAllowedResult(), nil)
				rule2 := NewMockRule(ctrl)
				rule2.EXPECT().Evaluate(input).Return(NewBlockedResult("rule2", "blocked by rule2"), nil)
				return []Rule{rule1, rule2}
			},
			input: input,
			want:  NewBlockedResult("rule2", "blocked by rule2"),
		},
		{
			name: "rule error is wrapped with rule name",
			setupRules: func(ctrl *gomock.Controller) []Rule {
				rule1 := NewMockRule(ctrl)
				rule1.EXPECT().Evaluate(input).Return(nil, errors.New("evaluation failed"))
				rule1.EXPECT().Name().Return("rule1")
				return []Rule{rule1}
			},
			input:   input,
			wantErr: "rule rule1 failed: evaluation failed",
		},
		{
			name: "nil result from rule returns error",
			setupRules: func(ctrl *gomock.Controller) []Rule {
				rule1 := NewMockRule(ctrl)
				rule1.EXPECT().Evaluate(input).Return(nil, nil)
				rule1.EXPECT().Name().Return("rule1")
				rule2 := NewMockRule(ctrl)
				return []Rule{rule1, rule2}
			},
			input:   input,
			wantErr: "rule rule1 returned no result",
		},
		{
			name: "nil input returns error",
			setupRules: func(ctrl *gomock.Controller) []Rule {
				return []Rule{NewMockRule(ctrl)}
			},
			input:   nil,
			wantErr: "input cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			engine := NewRuleEngine(zerolog.Nop(), tt.setupRules(ctrl)...)
			got, err := engine.Evaluate(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleEngine_Evaluate_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	engine := NewRuleEngine(logger, DefaultRules()...)
	got, err := engine.Evaluate(&ToolInput{ToolName: "mcp_chrome_take_screenshot"})
	require.NoError(t, err)
	assert.False(t, got.Allowed)

	assert.Contains(t, buf.String(), `"tool_name":"mcp_chrome_take_screenshot"`)
	assert.Contains(t, buf.String(), `"rule":"screenshot-format"`)
	assert.Contains(t, buf.String(), "tool call blocked")
}

func TestRuleEngine_Evaluate_NopLoggerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.Disabled)

	engine := NewRuleEngine(logger, DefaultRules()...)
	got, err := engine.Evaluate(&ToolInput{ToolName: "read_file"})
	require.NoError(t, err)
	assert.True(t, got.Allowed)
	assert.Empty(t, buf.String())
}
