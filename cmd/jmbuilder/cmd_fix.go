package main

import (
	"fmt"

	"github.com/mitsuki31/jmbuilder/manifest"
	"github.com/spf13/cobra"
)

const (
	defaultPOM      = "pom.xml"
	defaultManifest = "META-INF/MANIFEST.MF"
)

func newFixManifestCmd(a *app) *cobra.Command {
	var pomPath, inPath, outPath, encoding string

	cmd := &cobra.Command{
		Use:   "fix-manifest",
		Short: "Resolve ${token} placeholders in a manifest template",
		Long: `Resolve the ${token} placeholders of a manifest template using values
from the project descriptor.

Only values that are exactly one placeholder are replaced. The ID entry
always becomes <groupId>:<artifactId>. Unknown tokens are left as is.

Examples:
  jmbuilder fix-manifest
  jmbuilder fix-manifest --in META-INF/MANIFEST.MF --out target/MANIFEST.MF`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.opts.Manifest
			if !cmd.Flags().Changed("pom") && m.POM != "" {
				pomPath = m.POM
			}
			if !cmd.Flags().Changed("in") && m.Input != "" {
				inPath = m.Input
			}
			if !cmd.Flags().Changed("out") && m.Output != "" {
				outPath = m.Output
			}
			if !cmd.Flags().Changed("encoding") && m.Encoding != "" {
				encoding = m.Encoding
			}

			opts := []manifest.Option{manifest.WithEncoding(encoding)}
			if m.InputEncoding != "" {
				opts = append(opts, manifest.WithInputEncoding(m.InputEncoding))
			}
			if m.DescriptorEncoding != "" {
				opts = append(opts, manifest.WithDescriptorEncoding(m.DescriptorEncoding))
			}

			if err := manifest.Fix(pomPath, inPath, outPath, opts...); err != nil {
				return fmt.Errorf("fix manifest: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pomPath, "pom", defaultPOM, "project descriptor")
	cmd.Flags().StringVar(&inPath, "in", defaultManifest, "manifest template")
	cmd.Flags().StringVar(&outPath, "out", "", "output manifest (default: overwrite --in)")
	cmd.Flags().StringVar(&encoding, "encoding", "UTF-8", "output encoding")

	return cmd
}
