package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"libretto/internal/merge"
	"libretto/internal/validate"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var basePath string
	var overlayPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge a base libretto and timing overlay into an interchange document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if basePath == "" || overlayPath == "" {
				return errors.New("--base and --overlay are required")
			}

			base, _, err := readBase(basePath)
			if err != nil {
				return err
			}
			if outPath == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				outPath, err = defaultDocumentPath(cfg, base.Opera.Title, "interchange.json")
				if err != nil {
					return err
				}
			}
			overlay, resolvedOverlay, err := readOverlay(overlayPath)
			if err != nil {
				return err
			}

			// A merge over invalid inputs produces a misleading document,
			// so every validation error blocks it.
			if errs := validate.Overlay(overlay, base); len(errs) > 0 {
				errOut := cmd.ErrOrStderr()
				for _, e := range errs {
					fmt.Fprintf(errOut, "%s: %s\n", e.Code, e.Message)
				}
				return fmt.Errorf("overlay failed validation with %d error(s)", len(errs))
			}

			result := merge.Documents(base, overlay)

			written, err := writeDocument(outPath, result.Libretto)
			if err != nil {
				return err
			}

			ctx.ensureLogger("merge").Info("merged documents",
				"overlay", resolvedOverlay,
				"tracks", result.Stats.Tracks,
				"segments", result.Stats.MergedSegments,
				"warnings", len(result.Warnings))

			printWarnings(cmd.ErrOrStderr(), result.Warnings)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote interchange libretto to %s\n", written)
			fmt.Fprintf(out, "Tracks: %d, merged segments: %d (of %d base, %d referenced)\n",
				result.Stats.Tracks, result.Stats.MergedSegments,
				result.Stats.BaseSegments, result.Stats.OverlayReferences)
			return nil
		},
	}

	cmd.Flags().StringVar(&basePath, "base", "", "Base libretto JSON file")
	cmd.Flags().StringVar(&overlayPath, "overlay", "", "Timing overlay JSON file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default: <library>/<title>/interchange.json)")
	return cmd
}
