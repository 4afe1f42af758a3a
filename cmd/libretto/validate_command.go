package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"libretto/internal/config"
	"libretto/internal/model"
	"libretto/internal/validate"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var basePath string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a base libretto or timing overlay",
		Long: "Validate a document and report every violation found. Overlays are\n" +
			"checked standalone, or against their base libretto when --base is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, raw, err := readRaw(args[0])
			if err != nil {
				return err
			}

			var errs []validate.Error
			out := cmd.OutOrStdout()

			switch detectDocumentKind(raw) {
			case "base":
				var base model.BaseLibretto
				if err := json.Unmarshal(raw, &base); err != nil {
					return fmt.Errorf("parse %s: %w", path, err)
				}
				errs = validate.BaseLibretto(&base)
			case "overlay":
				var overlay model.TimingOverlay
				if err := json.Unmarshal(raw, &overlay); err != nil {
					return fmt.Errorf("parse %s: %w", path, err)
				}
				if basePath == "" {
					errs = validate.OverlayStandalone(&overlay)
				} else {
					base, _, err := readBase(basePath)
					if err != nil {
						return err
					}
					errs = validate.Overlay(&overlay, base)
					report := validate.Coverage(&overlay, base)
					fmt.Fprintf(out, "Coverage: %d/%d numbers covered, %d omitted, %d unaccounted\n",
						report.Covered, report.Total, report.Omitted, report.Unaccounted)
				}
			default:
				return fmt.Errorf("%s: unrecognized document (expected a base libretto or timing overlay)", path)
			}

			ctx.ensureLogger("validate").Info("validated document",
				"path", path,
				"errors", len(errs))

			if len(errs) == 0 {
				fmt.Fprintf(out, "%s: valid\n", path)
				return nil
			}
			for _, e := range errs {
				fmt.Fprintf(out, "%s: %s\n", e.Code, e.Message)
			}
			return fmt.Errorf("%s: %d validation error(s)", path, len(errs))
		},
	}

	cmd.Flags().StringVar(&basePath, "base", "", "Base libretto to validate overlay references against")
	return cmd
}

func readRaw(path string) (string, []byte, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", nil, fmt.Errorf("resolve path %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", expanded, err)
	}
	return expanded, data, nil
}

// detectDocumentKind inspects top-level keys rather than trusting file
// names. Overlays always carry track_timings; bases always carry numbers.
func detectDocumentKind(raw []byte) string {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	if _, ok := probe["track_timings"]; ok {
		return "overlay"
	}
	if _, ok := probe["numbers"]; ok {
		return "base"
	}
	return ""
}
