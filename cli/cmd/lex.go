package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/labstack/gommon/color"
	"github.com/spf13/cobra"

	"github.com/brio-lang/brio/lexer"
)

var (
	rawTokens bool

	lexCmd = &cobra.Command{
		Use:   "lex file",
		Short: "Dump the token stream of a single source file to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument <file>")
			}

			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			doc := lexer.ScanString(lexer.FileRef(args[0]), string(buf))

			if rawTokens {
				fmt.Println(repr.String(doc.Tokens, repr.Indent("  ")))
				return nil
			}

			for _, t := range doc.Tokens {
				fmt.Printf("%4d  %-22s %s\n", t.Line, t.Kind, colorizeLexeme(t))
			}

			if doc.HasErrors() {
				return fmt.Errorf("%d lexical error(s) in %s", len(doc.Errors), args[0])
			}
			return nil
		},
	}
)

func colorizeLexeme(t lexer.Token) string {
	switch {
	case t.Kind == lexer.ErrorToken:
		return color.Red(t.Lexeme)
	case t.Kind == lexer.NumberToken || t.Kind == lexer.StringToken:
		return color.Green(t.Lexeme)
	case t.Kind.IsKeyword():
		return color.Blue(t.Lexeme)
	}
	return t.Lexeme
}

func init() {
	lexCmd.Flags().BoolVar(&rawTokens, "raw", false, "dump tokens as Go values instead of the table format")
	rootCmd.AddCommand(lexCmd)
}
