package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/michael-freling/claude-screenshot-guard/internal/hooks"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	exitFailure = 1
	// exitBlocked tells the host to suppress the tool call.
	exitBlocked = 2
)

// blockedError is returned when a rule intentionally blocks the tool call.
type blockedError struct {
	result *hooks.RuleResult
}

func (e *blockedError) Error() string {
	return fmt.Sprintf("blocked by rule %s", e.result.RuleName)
}

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	os.Exit(exitCode(rootCmd.ErrOrStderr(), err))
}

// exitCode maps the command error to a process exit status.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var blocked *blockedError
	if errors.As(err, &blocked) {
		return exitBlocked
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	return exitFailure
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "screenshot-guard",
		Short:         "Claude Code hook that enforces JPEG browser screenshots",
		Long:          `A CLI tool that runs as a Claude Code PreToolUse hook and blocks take_screenshot calls unless they request format='jpeg'.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newPreToolUseCmd())
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

func newPreToolUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "pre-tool-use",
		Short:         "Evaluate rules before tool execution",
		Long:          `Reads tool input from stdin as JSON and evaluates configured rules. Returns exit code 0 to allow, exit code 2 to block.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			toolInput, err := hooks.ParseToolInput(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to parse tool input: %w", err)
			}

			engine := hooks.NewRuleEngine(logger, hooks.DefaultRules()...)
			result, err := engine.Evaluate(toolInput)
			if err != nil {
				return fmt.Errorf("failed to evaluate rules: %w", err)
			}

			if !result.Allowed {
				fmt.Fprintln(cmd.ErrOrStderr(), result.Message)
				return &blockedError{result: result}
			}

			return nil
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules evaluated by pre-tool-use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, rule := range hooks.DefaultRules() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", rule.Name(), rule.Description()); err != nil {
					return fmt.Errorf("failed to write rules: %w", err)
				}
			}
			return nil
		},
	}
}

// newLogger returns a console logger on stderr when --debug is set.
// Without it nothing is logged, so an allowed call produces no output.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil || !debug {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
