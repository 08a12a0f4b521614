// Package cli wires the sqlfront binary's cobra command tree around the
// parser, lexer, and printer packages. It owns no parsing logic of its
// own — every subcommand is a thin adapter over the public packages.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-sqlfront/sqlfront/internal/cli/commands"
	"github.com/go-sqlfront/sqlfront/internal/cli/logctx"
	"github.com/spf13/cobra"
)

var jsonOutput bool

// NewRootCmd builds the root "sqlfront" command and its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sqlfront",
		Short: "sqlfront tokenizes and parses SQL text",
		Long: `sqlfront is a command-line driver for a SQL lexer and predictive
recursive-descent parser. It reads SQL from a file or stdin and can print
the tokenized lexeme stream, the parsed AST, or a canonical re-print of
the parsed statement.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			cmd.SetContext(logctx.With(cmd.Context(), logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON output")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(commands.NewParseCommand())
	root.AddCommand(commands.NewFormatCommand())
	root.AddCommand(commands.NewLexCommand())

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

