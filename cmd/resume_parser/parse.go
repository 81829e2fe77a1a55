package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/textsource"
)

var (
	parseVerbose bool
	parseOutPath string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file-or-url>",
	Short: "Extract structured data from one resume",
	Long:  `Run the extraction pipeline on a local PDF file or a remote URL and print the structured record as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseVerbose, "verbose", false, "Print a human-readable extraction summary to stderr")
	parseCmd.Flags().StringVar(&parseOutPath, "out", "", "Write the JSON record to a file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	record, err := pipeline.Run(cmd.Context(), pipeline.Options{
		FileURL: args[0],
		Source:  textsource.NewClient(0),
	})
	if err != nil {
		return err
	}

	if parseVerbose {
		observability.NewPrinter(os.Stderr).PrintResumeRecord(record)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if parseOutPath != "" {
		if err := os.WriteFile(parseOutPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", parseOutPath, err)
		}
		return nil
	}

	fmt.Println(string(data))
	return nil
}
