package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"backupaudit/internal/diagnostic"
	"backupaudit/internal/redact"
	"backupaudit/internal/render"
	"backupaudit/internal/report"
	"backupaudit/internal/rules"
	"backupaudit/internal/ruleset"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type analyzeFlags struct {
	mock          string
	format        string
	out           string
	rulesetName   string
	redactEnabled bool
	verbose       bool
	failOn        string
}

func newAnalyzeCmd() *cobra.Command {
	f := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze [diagnostics-file]",
		Short: "Score a diagnostic record for corruption indicators",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runAnalyze(cmd.OutOrStdout(), path, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.mock, "mock", "", "Use a built-in mock record: corrupted or valid")
	flags.Lookup("mock").NoOptDefVal = "corrupted"
	flags.StringVar(&f.format, "format", "text", "Console output format: text, json, or md")
	flags.StringVarP(&f.out, "out", "o", "", "Write the JSON report to this path")
	flags.StringVar(&f.rulesetName, "ruleset", "default", "Built-in ruleset name")
	flags.BoolVar(&f.redactEnabled, "redact", true, "Mask account identifiers in output")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Per-issue detail and debug logging")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit non-zero if the assessment meets this band")

	return cmd
}

func runAnalyze(stdout io.Writer, path string, f *analyzeFlags) error {
	level := zerolog.WarnLevel
	if f.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	// 1. Load the record
	var (
		src *diagnostic.Source
		err error
	)
	switch {
	case f.mock != "":
		logger.Debug().Str("mock", f.mock).Msg("loading built-in mock record")
		src, err = diagnostic.LoadMock(f.mock)
	case path != "":
		logger.Debug().Str("path", path).Msg("loading diagnostic record")
		src, err = diagnostic.Load(path)
	default:
		return exitError(3, "no input: supply a diagnostics file or --mock")
	}
	if err != nil {
		var fe *diagnostic.FormatError
		if errors.As(err, &fe) {
			return exitError(3, "failed to load record: %v", err)
		}
		return exitError(3, "%v", err)
	}
	logger.Debug().Str("hash", src.Hash).Msg("record loaded")

	// 2. Load the ruleset
	rs, err := ruleset.LoadBuiltin(f.rulesetName)
	if err != nil {
		return exitError(3, "failed to load ruleset: %v", err)
	}
	logger.Debug().Str("ruleset", rs.Name).Msg("ruleset loaded")

	// 3. Score
	rep := rules.Run(src.Record, rs)
	logger.Debug().
		Int("findings", rep.Summary.TotalFindings).
		Int("score", rep.Summary.CorruptionScore).
		Str("assessment", string(rep.Summary.Assessment)).
		Msg("analysis complete")

	// 4. Fill metadata
	rep.Tool = "backupaudit"
	rep.Version = version
	rep.Input = report.Input{
		RecordFile: src.FilePath,
		RecordHash: src.Hash,
		Ruleset:    f.rulesetName,
		Mock:       f.mock != "",
	}
	rep.Meta = report.Meta{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// 5. Console output
	var output string
	switch f.format {
	case "text":
		output = render.Text(&rep, f.verbose)
	case "md":
		output = render.Markdown(&rep)
	case "json":
		data, err := json.MarshalIndent(&rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	default:
		return exitError(3, "unknown format: %s", f.format)
	}
	if f.redactEnabled {
		output = redact.Redact(output)
	}
	fmt.Fprint(stdout, output)

	// 6. Machine report
	if f.out != "" {
		data, err := json.MarshalIndent(&rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		body := string(data) + "\n"
		if f.redactEnabled {
			body = redact.Redact(body)
		}
		if err := os.WriteFile(f.out, []byte(body), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info().Str("path", f.out).Msg("report saved")
	}

	// 7. Optional gating; the tool reports, it does not gate by default
	if f.failOn != "" && assessmentMeetsThreshold(rep.Summary.Assessment, f.failOn) {
		return exitError(2, "assessment %s meets fail threshold %s", rep.Summary.Assessment, f.failOn)
	}

	return nil
}

func assessmentLevel(a report.Assessment) int {
	switch a {
	case report.AssessmentClean:
		return 0
	case report.AssessmentMild:
		return 1
	case report.AssessmentModerate:
		return 2
	case report.AssessmentSevere:
		return 3
	default:
		return 0
	}
}

func assessmentMeetsThreshold(a report.Assessment, failOn string) bool {
	threshold := report.Assessment(strings.ToUpper(failOn))
	if !threshold.Valid() {
		threshold = report.AssessmentSevere
	}
	return assessmentLevel(a) >= assessmentLevel(threshold)
}
