package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brio-lang/brio"
	"github.com/brio-lang/brio/lexer"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Scan the source tree and report every lexical error",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := []string{directory}
			cfg, err := LoadConfig()
			switch {
			case errors.Is(err, ErrConfigNotFound):
				// no brio.yaml; scan the whole --directory tree
			case err != nil:
				// a config exists but is broken, refuse to guess
				return err
			case len(cfg.Sources) > 0:
				sources = nil
				for _, src := range cfg.Sources {
					sources = append(sources, path.Join(directory, src))
				}
			}

			var fslst []fs.FS
			for _, src := range sources {
				fslst = append(fslst, os.DirFS(src))
			}

			// partial results: we render the errors ourselves, with context
			codebase, err := brio.Load(brio.Options{
				PartialScanResults: true,
				Extension:          cfg.Extension,
			}, fslst...)
			if err != nil {
				return err
			}

			errorCount := 0
			for _, doc := range codebase.Documents {
				for _, t := range doc.Tokens {
					if t.Kind != lexer.ErrorToken {
						continue
					}
					errorCount++
					pos := doc.Pos(t)
					fmt.Printf("%s:%d:%d: %s\n", pos.File, pos.Line, pos.Col, color.Red(t.Lexeme))
					fmt.Println("    " + doc.SourceLine(t))
					fmt.Println("    " + strings.Repeat(" ", pos.Col-1) + "^")
				}
			}

			logrus.WithFields(logrus.Fields{
				"files":  len(codebase.ScannedFiles),
				"errors": errorCount,
			}).Info("lexical check finished")

			if errorCount > 0 {
				return fmt.Errorf("%d lexical error(s)", errorCount)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(checkCmd)
}
