package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mitsuki31/jmbuilder/pom"
	"github.com/spf13/cobra"
)

var errNotFound = errors.New("not found")

func newPOMCmd() *cobra.Command {
	var pomPath string

	cmd := &cobra.Command{
		Use:   "pom",
		Short: "Query a Maven project descriptor",
	}
	cmd.PersistentFlags().StringVarP(&pomPath, "file", "f", defaultPOM, "project descriptor")

	cmd.AddCommand(newPOMGetCmd(&pomPath))
	cmd.AddCommand(newPOMPropertyCmd(&pomPath))
	cmd.AddCommand(newPOMInfoCmd(&pomPath))

	return cmd
}

func newPOMGetCmd(pomPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Print the text of the element at a dotted path",
		Long: `Print the text of the element at a dotted path. A leading "project"
segment is optional.

Examples:
  jmbuilder pom get version
  jmbuilder pom get project.developers.developer.name`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := pom.Parse(*pomPath)
			if err != nil {
				return fmt.Errorf("parse descriptor: %w", err)
			}
			n := d.Get(args[0])
			if n == nil {
				return fmt.Errorf("%s: %w", args[0], errNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), pom.TextOf(n))
			return nil
		},
	}
}

func newPOMPropertyCmd(pomPath *string) *cobra.Command {
	var noDots bool

	cmd := &cobra.Command{
		Use:   "property <key>",
		Short: "Print a value from the <properties> section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := pom.Parse(*pomPath)
			if err != nil {
				return fmt.Errorf("parse descriptor: %w", err)
			}
			v, err := d.Property(args[0], !noDots)
			if err != nil {
				return err
			}
			s, ok := v.Get()
			if !ok {
				return fmt.Errorf("property %s: %w", args[0], errNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDots, "no-dots", false, "treat the key as a literal element name first")

	return cmd
}

func newPOMInfoCmd(pomPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the project's identity, author and license",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := pom.Parse(*pomPath)
			if err != nil {
				return fmt.Errorf("parse descriptor: %w", err)
			}
			printInfo(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func printInfo(w io.Writer, d *pom.Descriptor) {
	author := d.Author()
	license := d.License()

	fmt.Fprintf(w, "Name:      %s\n", d.Name())
	fmt.Fprintf(w, "Version:   %s\n", d.Version())
	fmt.Fprintf(w, "ID:        %s\n", d.ID())
	fmt.Fprintf(w, "URL:       %s\n", d.URL())
	fmt.Fprintf(w, "Inception: %s\n", d.InceptionYear())
	fmt.Fprintf(w, "Author:    %s (%s)\n", author.Name, author.URL)
	fmt.Fprintf(w, "License:   %s (%s)\n", license.Name, license.URL)
}
