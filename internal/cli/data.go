package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/impex"
)

func newImportCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv|file.json|file.xlsx>",
		Short: "Import words from a CSV, JSON or XLSX file",
		Long: "CSV and XLSX rows are [word, part, headword, more words...]; a blank side is\n" +
			"looked up when word lookup is on. JSON replaces the whole set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := e.open(ctx, e.studyOptions())
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			out := cmd.OutOrStdout()
			switch ext := strings.ToLower(filepath.Ext(args[0])); ext {
			case ".json":
				n, err := e.c.Impex.ImportJSON(ctx, ws.Pair(), f)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d words imported\n", n)
				return nil
			case ".csv", ".xlsx":
				importer := e.c.Impex.ImportCSV
				if ext == ".xlsx" {
					importer = e.c.Impex.ImportXLSX
				}
				res, err := importer(ctx, ws.Pair(), f, ws.Lookup)
				if err != nil {
					return err
				}
				printImport(out, res)
				return nil
			default:
				return domain.NewValidationError("file", "unsupported extension "+ext)
			}
		},
	}
}

func printImport(w io.Writer, res impex.ImportResult) {
	fmt.Fprintf(w, "%d rows read\n", res.Rows)
	if len(res.Missed) > 0 {
		fmt.Fprintln(w, "The following words were not imported because a translation could not be determined and was not explicitly provided:")
		for _, m := range res.Missed {
			fmt.Fprintln(w, m)
		}
	}
	fmt.Fprintf(w, "%d words imported\n", len(res.Imported))
}

func newExportCommand(e *env) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the vocabulary as CSV, JSON or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := e.open(ctx, e.studyOptions())
			if err != nil {
				return err
			}

			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
			}
			var export func(ctx context.Context, pair domain.LangPair, w io.Writer) error
			switch format {
			case "", "csv":
				export = e.c.Impex.ExportCSV
			case "json":
				export = e.c.Impex.ExportJSON
			case "xlsx":
				export = e.c.Impex.ExportXLSX
			default:
				return domain.NewValidationError("format", "must be csv, json or xlsx")
			}

			if out == "" || out == "-" {
				return export(ctx, ws.Pair(), cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := export(ctx, ws.Pair(), f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "csv, json or xlsx (default from --out extension, else csv)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newCountCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of saved words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := e.open(ctx, e.studyOptions())
			if err != nil {
				return err
			}
			n, err := e.c.Vocab.Count(ctx, ws.Pair())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s TO %s words saved\n", n, ws.Meta.KeyLangName, ws.Meta.ValLangName)
			return nil
		},
	}
}

func newLangsCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List the languages available for translation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			langs, err := e.c.Workspaces.Languages(cmd.Context())
			if errors.Is(err, domain.ErrProviderUnavailable) {
				fmt.Fprintln(out, "Language list unavailable: word lookup is off or the translation service cannot be reached.")
				return nil
			}
			if err != nil {
				return err
			}

			codes := make([]string, 0, len(langs))
			for code := range langs {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			fmt.Fprintln(out, "Available languages for translation")
			fmt.Fprintln(out, "Code\t\tName")
			for _, code := range codes {
				fmt.Fprintf(out, "%s\t\t%s\n", code, langs[code].Name)
			}
			return nil
		},
	}
}

func newDeleteCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <headword>...",
		Short: "Delete entries by headword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := e.open(ctx, e.studyOptions())
			if err != nil {
				return err
			}
			deleted, err := e.c.Vocab.Delete(ctx, ws.Pair(), args)
			if err != nil {
				return err
			}
			if len(deleted) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", strings.Join(deleted, ", "))
			return nil
		},
	}
}

func newRestoreCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Replace the vocabulary with its backup copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := e.open(ctx, e.studyOptions())
			if err != nil {
				return err
			}
			set, err := e.c.Vocab.RestoreBackup(ctx, ws.Pair())
			if errors.Is(err, domain.ErrNoData) {
				fmt.Fprintln(cmd.OutOrStdout(), "No backup to restore")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d words from backup\n", set.Len())
			return nil
		},
	}
}

func newSnapshotCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Write a dated JSON snapshot of every language pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := e.c.Snapshots.TakeAll(cmd.Context())
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return err
		},
	}
}
