package commands

import (
	"encoding/json"
	"fmt"

	"github.com/go-sqlfront/sqlfront/lexer"
	"github.com/go-sqlfront/sqlfront/token"
	"github.com/spf13/cobra"
)

// NewLexCommand builds "sqlfront lex [file]": dump the raw lexeme stream
// with source positions, without invoking the parser.
func NewLexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Tokenize a SQL statement and print its lexeme stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(args)
			if err != nil {
				return err
			}

			lx := lexer.New(sql)
			var lexemes []lexer.Lexeme
			for {
				lm, err := lx.Next()
				if err != nil {
					if jsonFlag(cmd) {
						enc, _ := json.MarshalIndent(newErrorEnvelope(err), "", "  ")
						fmt.Fprintln(cmd.OutOrStdout(), string(enc))
					}
					return err
				}
				lexemes = append(lexemes, lm)
				if lm.Class == token.EndOfInput {
					break
				}
			}

			if jsonFlag(cmd) {
				enc, err := json.MarshalIndent(lexemes, "", "  ")
				if err != nil {
					return fmt.Errorf("encode lexemes: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(enc))
				return nil
			}

			for _, lm := range lexemes {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d:%-3d %-14s %-12s %q\n",
					lm.Line, lm.Column, lm.Class, lm.Tok, lm.Text)
			}
			return nil
		},
	}
	return cmd
}
