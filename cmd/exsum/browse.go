package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"exsum/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse FILE",
	Short: "Explore a document's summary interactively",
	Long:  "Opens a terminal browser over FILE: change the number of sentences, toggle document order and inspect each selected sentence's per-feature scores.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if _, err := a.service.Ingest(args[0]); err != nil {
		return err
	}
	m := tui.New(a.service, filepath.Base(args[0]), a.cfg.Summarizer.TopN, a.cfg.Summarizer.Reorder)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
