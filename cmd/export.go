package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/waterlog/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every record as JSON",
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Append records from a JSON export (use - for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var w io.Writer = os.Stdout
	if flagExportOut != "" && flagExportOut != "-" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOut, err)
		}
		defer f.Close()
		w = f
	}

	n, err := store.Export(st, w)
	if err != nil {
		return err
	}
	log.Debug().Int("records", n).Str("path", flagExportOut).Msg("export done")
	if flagExportOut != "" && flagExportOut != "-" {
		info("  Exported %d records to %s\n", n, flagExportOut)
	}
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := store.Import(st, r)
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}
	log.Debug().Int("records", n).Str("path", args[0]).Msg("import done")
	fmt.Printf("  Imported %d records\n", n)
	return nil
}
