package main

import (
	"errors"
	"fmt"
	"os"
	"portfolio/internal/di"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	exportOut  string
	importFile string
	assumeYes  bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the export document to a file or stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := di.InitToolkit(&flags)
		if err != nil {
			return err
		}
		defer tk.Close()

		data, err := tk.Transfer.ExportJSON()
		if err != nil {
			return err
		}
		if exportOut == "" || exportOut == "-" {
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return fmt.Errorf("unable to write %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
		return nil
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate an export document and, with --yes, replace all content with it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importFile == "" {
			return errors.New("--file is required")
		}
		data, err := os.ReadFile(importFile)
		if err != nil {
			return err
		}

		tk, err := di.InitToolkit(&flags)
		if err != nil {
			return err
		}
		defer tk.Close()

		out := cmd.OutOrStdout()
		preview, err := tk.Transfer.Preview(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Document contains %d projects, %d skills, %d experiences, %d education entries\n",
			preview.Counts.Projects, preview.Counts.Skills, preview.Counts.Experiences, preview.Counts.Education)

		if !assumeYes {
			fmt.Fprintln(out, "This replaces ALL existing content. Re-run with --yes to apply.")
			return nil
		}
		if _, err := tk.Transfer.Apply(data); err != nil {
			return err
		}
		fmt.Fprintln(out, "Import applied")
		return nil
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all content and restore the default about section",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes {
			return errors.New("reset deletes all content; pass --yes to confirm")
		}
		tk, err := di.InitToolkit(&flags)
		if err != nil {
			return err
		}
		defer tk.Close()

		if err := tk.Transfer.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All content reset")
		return nil
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace all content with the newest backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes {
			return errors.New("restore replaces all content; pass --yes to confirm")
		}
		tk, err := di.InitToolkit(&flags)
		if err != nil {
			return err
		}
		defer tk.Close()

		if err := tk.Backups.Restore(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Restored from newest backup")
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "export document, plain or zstd-compressed")
	importCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "apply without asking")
	resetCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "confirm the reset")
	restoreCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "confirm the restore")
}
