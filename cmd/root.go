package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"diskpie/internal/chart"
	"diskpie/internal/cleaner"
	"diskpie/internal/config"
	"diskpie/internal/format"
	"diskpie/internal/scanner"
	"diskpie/internal/session"
	"diskpie/internal/ui"
)

var (
	Version = "1.0.0"
)

const secondsPerDay = 86400

var rootCmd = &cobra.Command{
	Use:   "diskpie [flags] DIR",
	Short: "Find and delete the largest old files in a directory tree",
	Long: `diskpie scans a directory recursively, ranks the files it finds by
size and draws a pie chart of the biggest ones. Files can be filtered
by how long ago they were created, modified or last accessed, and
deleted one at a time from an interactive prompt.

The chart always shows how much of the remaining bytes each file
accounts for, so it shrinks as you delete.`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	root := args[0]
	printActiveFilters(cmd.OutOrStdout(), cfg)

	spinner, _ := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgLightBlue)).
		WithRemoveWhenDone(true).
		Start(fmt.Sprintf("Searching for files in %s ...", root))

	result, err := scanner.New(root).Scan(scanner.Options{
		MinCreated:  days(cfg.MinCreatedDays),
		MinModified: days(cfg.MinModifiedDays),
		MinAccessed: days(cfg.MinAccessedDays),
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nTotal size: %s\n", format.Size(result.TotalSize))
	fmt.Fprintf(out, "Found %s candidate files.\n\n", humanize.Comma(int64(len(result.Files))))

	deleter, err := cleaner.New(root)
	if err != nil {
		return fmt.Errorf("failed to initialize cleaner: %w", err)
	}

	pie := ui.PieOptions{
		Radius:      cfg.Chart.Radius,
		AspectRatio: cfg.Chart.AspectRatio,
	}
	draw := func(w io.Writer, slices []chart.Slice) {
		ui.DrawPie(w, slices, pie)
	}

	return session.New(result, deleter, cmd.InOrStdin(), out, draw).Run()
}

func printActiveFilters(w io.Writer, cfg *config.Config) {
	filters := []struct {
		name string
		days uint64
	}{
		{"created", cfg.MinCreatedDays},
		{"modified", cfg.MinModifiedDays},
		{"accessed", cfg.MinAccessedDays},
	}

	for _, f := range filters {
		if f.days > 0 {
			fmt.Fprintln(w, ui.MutedTextStyle().Render(
				fmt.Sprintf("Only showing files that were %s at least %d days ago.", f.name, f.days)))
		}
	}
}

func days(n uint64) time.Duration {
	return time.Duration(n) * secondsPerDay * time.Second
}
