package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"basegraph.app/growthplan/internal/http/dto"
)

func newSchemaCmd() *cobra.Command {
	var request bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var schema any = dto.PlanSchema()
			if request {
				schema = dto.PlanRequestSchema()
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(schema)
		},
	}
	cmd.Flags().BoolVar(&request, "request", false, "print the plan request schema instead")

	return cmd
}
