package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"backupaudit/internal/report"
	"backupaudit/internal/ruleset"
	"backupaudit/internal/schema"

	"github.com/spf13/cobra"
)

type verifyFlags struct {
	rulesetName string
}

func newVerifyCmd() *cobra.Command {
	f := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify <report-file>",
		Short: "Check a saved JSON report for internal consistency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.OutOrStdout(), args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.rulesetName, "ruleset", "", "Ruleset to check weights against (default: the one named in the report)")

	return cmd
}

func runVerify(stdout io.Writer, path string, f *verifyFlags) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return exitError(3, "failed to read report: %v", err)
	}

	var rep report.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return exitError(3, "failed to parse report: %v", err)
	}

	name := f.rulesetName
	if name == "" {
		name = rep.Input.Ruleset
	}
	if name == "" {
		name = "default"
	}
	rs, err := ruleset.LoadBuiltin(name)
	if err != nil {
		return exitError(3, "failed to load ruleset: %v", err)
	}

	errs := schema.Validate(&rep, rs.Weights)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return exitError(2, "report failed validation (%d errors)", len(errs))
	}

	fmt.Fprintf(stdout, "OK: %s (score %d, %s)\n", path, rep.Summary.CorruptionScore, rep.Summary.Assessment)
	return nil
}
