package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topWordsCmd = &cobra.Command{
	Use:   "topwords FILE [N]",
	Short: "Print the most frequent content words of a document",
	Long:  "Prints the N most frequent lemmas of FILE after stop words and punctuation are removed, with their counts. N defaults to summarizer.thematic_words from the config.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runTopWords,
}

func init() {
	rootCmd.AddCommand(topWordsCmd)
}

func runTopWords(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	n, err := countArg(args, 1, a.cfg.Summarizer.ThematicWords)
	if err != nil {
		return err
	}
	if _, err := a.service.Ingest(args[0]); err != nil {
		return err
	}
	words, err := a.service.TopWords(n)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, w := range words {
		fmt.Fprintf(out, "%s\t%d\n", w.Word, w.Frequency)
	}
	return nil
}
