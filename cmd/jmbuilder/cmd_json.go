package main

import (
	"encoding/json"
	"fmt"

	"github.com/mitsuki31/jmbuilder/config"
	"github.com/spf13/cobra"
)

func newJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json <file>",
		Short: "Validate and pretty-print a JSON configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := config.ParseJSON(args[0])
			if err != nil {
				return fmt.Errorf("parse json: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(d); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}

	return cmd
}
