package main

import (
	"fmt"

	"github.com/mitsuki31/jmbuilder/properties"
	"github.com/spf13/cobra"
)

func newPropsCmd(a *app) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "props <file>",
		Short: "Print a properties file as key: value lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("encoding") && a.opts.Manifest.InputEncoding != "" {
				encoding = a.opts.Manifest.InputEncoding
			}

			t, err := properties.Load(args[0], properties.WithEncoding(encoding))
			if err != nil {
				return fmt.Errorf("load properties: %w", err)
			}
			_, err = t.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "UTF-8", "input encoding")

	return cmd
}
