package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/textsource"
)

var checkVerbose bool

var checkCmd = &cobra.Command{
	Use:   "check <file-or-url>",
	Short: "Check resume readability and ATS compliance",
	Long:  `Classify whether a PDF is machine-readable and report which essential ATS fields it carries.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkVerbose, "verbose", false, "Print a human-readable report to stderr")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	report, err := pipeline.Check(cmd.Context(), pipeline.Options{
		FileURL: args[0],
		Source:  textsource.NewClient(0),
	})
	if err != nil {
		// An image-only document still produces a (negative) report.
		var rejection *pipeline.RejectionError
		if !errors.As(err, &rejection) || report == nil {
			return err
		}
		fmt.Fprintln(os.Stderr, rejection.Error())
	}

	if checkVerbose {
		observability.NewPrinter(os.Stderr).PrintReadabilityReport(report)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
