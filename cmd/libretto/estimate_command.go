package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"libretto/internal/estimate"
)

func newEstimateCommand(ctx *commandContext) *cobra.Command {
	var basePath string
	var overlayPath string
	var write bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate segment start times from word weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			if basePath == "" || overlayPath == "" {
				return errors.New("--base and --overlay are required")
			}

			base, _, err := readBase(basePath)
			if err != nil {
				return err
			}
			overlay, resolvedOverlay, err := readOverlay(overlayPath)
			if err != nil {
				return err
			}

			result := estimate.Timings(base, overlay)

			ctx.ensureLogger("estimate").Info("estimated timings",
				"overlay", resolvedOverlay,
				"tracks_estimated", len(result.Stats),
				"warnings", len(result.Warnings))

			if asJSON {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(result.Stats))
				for _, s := range result.Stats {
					rows = append(rows, []string{
						trackLabel(s.DiscNumber, s.TrackNumber),
						s.TrackTitle,
						formatSeconds(s.Duration),
						strconv.Itoa(s.SegmentsEstimated),
						fmt.Sprintf("%.1f", s.TotalWordWeight),
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(out,
					[]string{"Track", "Title", "Duration", "Segments", "Word Weight"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight}))
			}

			printWarnings(cmd.ErrOrStderr(), result.Warnings)

			if write {
				written, err := writeDocument(overlayPath, result.Overlay)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated overlay written to %s\n", written)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&basePath, "base", "", "Base libretto JSON file")
	cmd.Flags().StringVar(&overlayPath, "overlay", "", "Timing overlay JSON file")
	cmd.Flags().BoolVar(&write, "write", false, "Write estimated times back to the overlay file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the estimation report as JSON")
	return cmd
}
