package commands

import (
	"encoding/json"
	"fmt"

	"github.com/go-sqlfront/sqlfront/internal/cli/logctx"
	"github.com/go-sqlfront/sqlfront/parser"
	"github.com/go-sqlfront/sqlfront/printer"
	"github.com/spf13/cobra"
)

// NewFormatCommand builds "sqlfront fmt [file]": parse a SQL statement and
// print its canonical re-print.
func NewFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse and re-print a SQL statement in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(args)
			if err != nil {
				return err
			}

			logger := logctx.From(cmd.Context())

			stmt, err := parser.Parse(sql)
			if err != nil {
				logger.Error("parse failed", "error", err)
				if jsonFlag(cmd) {
					enc, _ := json.MarshalIndent(newErrorEnvelope(err), "", "  ")
					fmt.Fprintln(cmd.OutOrStdout(), string(enc))
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), printer.Print(stmt))
			return nil
		},
	}
	return cmd
}
