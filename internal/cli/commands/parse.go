package commands

import (
	"encoding/json"
	"fmt"

	"github.com/go-sqlfront/sqlfront/internal/cli/logctx"
	"github.com/go-sqlfront/sqlfront/parser"
	"github.com/spf13/cobra"
)

// NewParseCommand builds "sqlfront parse [file]": parse a SQL statement
// and print its AST.
func NewParseCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a SQL statement and print its AST",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(args)
			if err != nil {
				return err
			}

			logger := logctx.From(cmd.Context())
			logger.Debug("parsing statement", "bytes", len(sql))

			stmt, err := parser.Parse(sql)
			if err != nil {
				if jsonFlag(cmd) || asJSON {
					enc, _ := json.MarshalIndent(newErrorEnvelope(err), "", "  ")
					fmt.Fprintln(cmd.OutOrStdout(), string(enc))
					return err
				}
				return err
			}

			if jsonFlag(cmd) || asJSON {
				enc, err := json.MarshalIndent(stmt, "", "  ")
				if err != nil {
					return fmt.Errorf("encode ast: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(enc))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", stmt)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "ast-json", false, "alias for the persistent --json flag")
	return cmd
}

func jsonFlag(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
