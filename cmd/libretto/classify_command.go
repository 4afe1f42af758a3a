package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"libretto/internal/align"
	"libretto/internal/classify"
	"libretto/internal/model"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var elementsPath string
	var outPath string
	var bilingual bool
	var title string
	var composer string
	var librettist string
	var language string
	var year int

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Build a base libretto from scraped content elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if elementsPath == "" {
				return errors.New("--elements is required")
			}

			logger := ctx.ensureLogger("classify")

			base := model.NewBaseLibretto(model.OperaMetadata{
				Title:      title,
				Composer:   composer,
				Librettist: librettist,
				Language:   language,
				Year:       year,
			})

			if bilingual {
				var acquired model.AcquiredLibretto
				inPath, err := readDocument(elementsPath, &acquired)
				if err != nil {
					return err
				}
				result := classify.Run(acquired.Lang1Stream())
				translated := classify.Run(acquired.Lang2Stream())
				align.Numbers(result.Numbers, translated.Numbers)
				base.Cast = result.Cast
				base.Numbers = result.Numbers
				if base.Opera.Language == "" {
					base.Opera.Language = acquired.Lang1
				}
				base.Opera.TranslationLanguage = acquired.Lang2
				logger.Info("classified bilingual acquisition",
					"input", inPath,
					"rows", len(acquired.Rows),
					"numbers", len(base.Numbers))
			} else {
				var elements []model.ContentElement
				inPath, err := readDocument(elementsPath, &elements)
				if err != nil {
					return err
				}
				result := classify.Run(elements)
				base.Cast = result.Cast
				base.Numbers = result.Numbers
				logger.Info("classified element stream",
					"input", inPath,
					"elements", len(elements),
					"numbers", len(base.Numbers))
			}

			if outPath == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				outPath, err = defaultDocumentPath(cfg, base.Opera.Title, "base.json")
				if err != nil {
					return err
				}
			}
			written, err := writeDocument(outPath, base)
			if err != nil {
				return err
			}

			segments := 0
			for _, n := range base.Numbers {
				segments += len(n.Segments)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote base libretto to %s\n", written)
			fmt.Fprintf(out, "Cast members: %d, numbers: %d, segments: %d\n",
				len(base.Cast), len(base.Numbers), segments)
			return nil
		},
	}

	cmd.Flags().StringVar(&elementsPath, "elements", "", "Input content element JSON file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default: <library>/<title>/base.json)")
	cmd.Flags().BoolVar(&bilingual, "bilingual", false, "Treat input as a bilingual acquisition and align translations")
	cmd.Flags().StringVar(&title, "title", "", "Opera title")
	cmd.Flags().StringVar(&composer, "composer", "", "Composer name")
	cmd.Flags().StringVar(&librettist, "librettist", "", "Librettist name")
	cmd.Flags().StringVar(&language, "language", "", "ISO 639-1 language code of the original text")
	cmd.Flags().IntVar(&year, "year", 0, "Premiere year")
	return cmd
}
