package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"libretto/internal/catalog"
	"libretto/internal/model"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Library catalog maintenance",
	}

	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogListCommand(ctx))

	return catalogCmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Record documents in the library catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := catalog.Open(cfg.LibraryDir)
			if err != nil {
				return err
			}
			defer store.Close()

			unlock, err := store.LockImport()
			if err != nil {
				return err
			}
			defer unlock()

			logger := ctx.ensureLogger("catalog")
			out := cmd.OutOrStdout()
			for _, arg := range args {
				path, raw, err := readRaw(arg)
				if err != nil {
					return err
				}
				rec, err := recordForDocument(cfg.LibraryDir, path, raw)
				if err != nil {
					return err
				}
				if err := store.Upsert(cmd.Context(), rec); err != nil {
					return fmt.Errorf("import %s: %w", path, err)
				}
				logger.Info("imported document",
					"path", rec.Path,
					"kind", string(rec.Kind),
					"title", rec.Title)
				fmt.Fprintf(out, "Imported %s (%s): %s\n", rec.Path, rec.Kind, rec.Title)
			}
			return nil
		},
	}
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogued documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			kind := catalog.Kind(strings.TrimSpace(kindFlag))
			switch kind {
			case "", catalog.KindBase, catalog.KindOverlay, catalog.KindInterchange:
			default:
				return fmt.Errorf("unknown kind %q (expected base, overlay, or interchange)", kindFlag)
			}

			store, err := catalog.Open(cfg.LibraryDir)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), kind)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, records)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "Catalog is empty")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					string(rec.Kind),
					rec.Title,
					rec.Composer,
					rec.Language,
					strconv.Itoa(rec.Numbers),
					strconv.Itoa(rec.Tracks),
					strconv.Itoa(rec.Segments),
					rec.Path,
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Kind", "Title", "Composer", "Lang", "Numbers", "Tracks", "Segments", "Path"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "", "Filter by document kind (base, overlay, interchange)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit records as JSON")
	return cmd
}

// recordForDocument sniffs the document type and builds its catalog
// record. Paths inside the library root are stored relative to it.
func recordForDocument(libraryDir, path string, raw []byte) (catalog.Record, error) {
	stored := path
	if rel, err := filepath.Rel(libraryDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		stored = rel
	}

	switch detectDocumentKind(raw) {
	case "base":
		var base model.BaseLibretto
		if err := json.Unmarshal(raw, &base); err != nil {
			return catalog.Record{}, fmt.Errorf("parse %s: %w", path, err)
		}
		return catalog.RecordForBase(stored, &base), nil
	case "overlay":
		var overlay model.TimingOverlay
		if err := json.Unmarshal(raw, &overlay); err != nil {
			return catalog.Record{}, fmt.Errorf("parse %s: %w", path, err)
		}
		return catalog.RecordForOverlay(stored, &overlay), nil
	default:
		var doc model.InterchangeLibretto
		if err := json.Unmarshal(raw, &doc); err != nil || len(doc.Tracks) == 0 {
			return catalog.Record{}, fmt.Errorf("%s: unrecognized document", path)
		}
		return catalog.RecordForInterchange(stored, &doc), nil
	}
}
