package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"libretto/internal/merge"
)

func newScaffoldCommand(ctx *commandContext) *cobra.Command {
	var basePath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate a template timing overlay from a base libretto",
		RunE: func(cmd *cobra.Command, args []string) error {
			if basePath == "" {
				return errors.New("--base is required")
			}

			base, resolvedBase, err := readBase(basePath)
			if err != nil {
				return err
			}
			if outPath == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				outPath, err = defaultDocumentPath(cfg, base.Opera.Title, "overlay.json")
				if err != nil {
					return err
				}
			}

			overlay := merge.ScaffoldOverlay(base, resolvedBase)
			written, err := writeDocument(outPath, overlay)
			if err != nil {
				return err
			}

			ctx.ensureLogger("scaffold").Info("scaffolded overlay",
				"base", resolvedBase,
				"tracks", len(overlay.TrackTimings))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote overlay template to %s\n", written)
			fmt.Fprintf(out, "Tracks scaffolded: %d (one per number; fill in durations and reorder to match the recording)\n",
				len(overlay.TrackTimings))
			return nil
		},
	}

	cmd.Flags().StringVar(&basePath, "base", "", "Base libretto JSON file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default: <library>/<title>/overlay.json)")
	return cmd
}
