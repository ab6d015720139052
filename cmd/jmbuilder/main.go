package main

import (
	"fmt"
	"os"

	"github.com/mitsuki31/jmbuilder/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jmbuilder.cmd")

// app holds the settings shared by every subcommand. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	configPath string
	verbosity  int
	logFile    string

	paths config.Paths
	setup *config.Setup
	opts  config.Options
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var showVersion, onlyVersion bool

	rootCmd := &cobra.Command{
		Use:   "jmbuilder",
		Short: "Build helper for JMatrix manifests and project descriptors",
		Long: `jmbuilder reads Maven project descriptors, properties and JSON
files, and fills ${token} placeholders in a JAR manifest template.

Settings are read from jmbuilder.yaml in the configuration directory
($JMBUILDER_HOME/.config) or from the file given with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case onlyVersion:
				fmt.Fprintf(cmd.OutOrStdout(), "v%s\n", a.setup.Version)
				return nil
			case showVersion:
				printVersion(cmd, a.setup)
				return nil
			}
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "options file (default <confdir>/jmbuilder.yaml)")
	flags.CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print version and license information")
	rootCmd.Flags().BoolVarP(&onlyVersion, "only-version", "W", false, "print only the version number")

	rootCmd.AddCommand(newFixManifestCmd(a))
	rootCmd.AddCommand(newPropsCmd(a))
	rootCmd.AddCommand(newJSONCmd())
	rootCmd.AddCommand(newPOMCmd())

	return rootCmd
}

// load resolves the configuration directory, reads setup.json and the
// options file, and configures logging. Flags override the options file.
func (a *app) load() error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("resolve paths: %w", err)
	}
	a.paths = paths

	a.setup, err = config.LoadSetup(paths)
	if err != nil {
		return fmt.Errorf("load setup: %w", err)
	}

	optsPath := a.configPath
	if optsPath == "" {
		if _, err := os.Stat(paths.OptionsFile()); err == nil {
			optsPath = paths.OptionsFile()
		}
	}
	if optsPath != "" {
		opts, err := config.LoadOptions(optsPath)
		if err != nil {
			return fmt.Errorf("load options: %w", err)
		}
		a.opts = *opts
	}
	a.opts = a.opts.Merge(config.Options{
		Log: config.LogOptions{Verbosity: a.verbosity, File: a.logFile},
	})

	var logFile *string
	if a.opts.Log.File != "" {
		logFile = &a.opts.Log.File
	}
	commonlog.Configure(a.opts.Log.Verbosity, logFile)

	log.Debugf("base directory %s", paths.BaseDir)
	if optsPath != "" {
		log.Debugf("options from %s", optsPath)
	}
	return nil
}

func printVersion(cmd *cobra.Command, s *config.Setup) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s v%s - %s\n", s.ProgramName, s.Version, s.License)
	fmt.Fprintf(out, "Copyright (C) 2023 by %s.\n", s.Author)
}
