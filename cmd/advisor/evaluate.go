package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/services"
)

type evaluateOptions struct {
	gpa       string
	language  string
	sat       string
	volunteer string
	asJSON    bool
}

func newEvaluateCmd() *cobra.Command {
	opts := &evaluateOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Place a student profile into a readiness tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := services.EvaluationInput{
				GPA:                   models.ParseNumber(opts.gpa),
				LanguageScore:         models.ParseNumber(opts.language),
				StandardizedTestScore: models.ParseNumber(opts.sat),
				VolunteerHours:        models.ParseNumber(opts.volunteer),
			}
			result := services.NewProfileScorer().Score(input)

			out := cmd.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(models.EvaluateResponse{
					Tier:       string(result.Tier),
					Advisories: result.Advisories,
				})
			}

			fmt.Fprintf(out, "Tier: %s\n", result.Tier)
			for _, advice := range result.Advisories {
				fmt.Fprintf(out, "- %s\n", advice)
			}
			return nil
		},
	}

	// Strings so that malformed values score as 0 instead of failing.
	cmd.Flags().StringVar(&opts.gpa, "gpa", "", "grade point average (4.0 scale)")
	cmd.Flags().StringVar(&opts.language, "language", "", "language test score (IELTS)")
	cmd.Flags().StringVar(&opts.sat, "sat", "", "standardized test score (SAT)")
	cmd.Flags().StringVar(&opts.volunteer, "volunteer", "", "volunteer hours")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	return cmd
}
