package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plotforma/admissions-guide/internal/services"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var showBranch bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question the way the chat assistant does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			reply := services.NewResponseMatcher(cat.Universities).Match(strings.Join(args, " "))

			out := cmd.OutOrStdout()
			if showBranch {
				fmt.Fprintf(out, "[%s]\n", reply.Branch)
			}
			fmt.Fprintln(out, reply.Text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showBranch, "branch", false, "print the matched rule before the reply")

	return cmd
}
