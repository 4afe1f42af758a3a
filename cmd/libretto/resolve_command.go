package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"libretto/internal/anchor"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var basePath string
	var overlayPath string
	var write bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve track start segments from quoted title anchors",
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

			result := anchor.Resolve(base, overlay)

			logger := ctx.ensureLogger("resolve")
			resolved := 0
			for _, r := range result.Resolutions {
				if r.SegmentID != "" {
					resolved++
				}
			}
			logger.Info("resolved anchors",
				"overlay", resolvedOverlay,
				"tracks", len(result.Resolutions),
				"resolved", resolved,
				"warnings", len(result.Warnings))

			if asJSON {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(result.Resolutions))
				for _, r := range result.Resolutions {
					segment := r.SegmentID
					if segment == "" {
						segment = "-"
					}
					method := string(r.Method)
					if method == "" {
						method = "-"
					}
					rows = append(rows, []string{
						trackLabel(r.DiscNumber, r.TrackNumber),
						r.TrackTitle,
						strings.Join(r.Anchors, " | "),
						segment,
						method,
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(out,
					[]string{"Track", "Title", "Anchors", "Start Segment", "Method"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}))
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
	cmd.Flags().BoolVar(&write, "write", false, "Write resolved start segments back to the overlay file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the resolution report as JSON")
	return cmd
}
