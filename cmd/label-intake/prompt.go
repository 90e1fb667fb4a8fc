package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/label-intake/internal/export"
	"github.com/joseph-ayodele/label-intake/internal/vision"
)

func newPromptCmd() *cobra.Command {
	var schema, batch bool

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the vision-model system prompt or its output schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case batch:
				return export.Encode(cmd.OutOrStdout(), export.FormatJSON, vision.BatchSchema())
			case schema:
				return export.Encode(cmd.OutOrStdout(), export.FormatJSON, vision.LabelSchema())
			default:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), vision.SystemPrompt())
				return err
			}
		},
	}
	cmd.Flags().BoolVar(&schema, "schema", false, "print the JSON schema of one label object")
	cmd.Flags().BoolVar(&batch, "batch", false, "print the JSON schema of a label array")
	return cmd
}
