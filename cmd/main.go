// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"passport-audit/internal/audit"
	"passport-audit/internal/config"
	"passport-audit/internal/formatters"
	_ "passport-audit/internal/formatters/json"
	_ "passport-audit/internal/formatters/text"
	_ "passport-audit/internal/formatters/yaml"
	"passport-audit/internal/help"
	"passport-audit/internal/observability"
	"passport-audit/internal/version"
)

// configFlags holds command line flag values
type configFlags struct {
	configFile          string
	profileName         string
	listProfiles        bool
	outputFormat        string
	verbose             bool
	debug               bool
	noColor             bool
	showRecords         bool
	enablePreprocessors bool
	showVersion         bool
	showHelp            bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format              string
	verbose             bool
	debug               bool
	noColor             bool
	showRecords         bool
	enablePreprocessors bool
}

func parseFlags() *configFlags {
	flags := &configFlags{}
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	flag.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles in config file")
	flag.StringVar(&flags.outputFormat, "format", "text", "Output format: text, json, yaml")
	flag.BoolVar(&flags.verbose, "verbose", false, "Show per-record audit status")
	flag.BoolVar(&flags.debug, "debug", false, "Write pipeline timing as JSON lines to stderr")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.showRecords, "show-records", false, "Echo each fully valid record")
	flag.BoolVar(&flags.enablePreprocessors, "enable-preprocessors", true, "Extract text from PDF inputs before parsing")
	flag.BoolVar(&flags.showVersion, "version", false, "Print version information and exit")
	flag.BoolVar(&flags.showHelp, "help", false, "Show help")
	flag.Parse()
	return flags
}

// isFlagSet reports whether the named flag was explicitly provided.
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// resolveConfiguration resolves final configuration values from config file,
// profile, and command line flags, in that order of precedence.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Verbose
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Show records
	if cfg != nil {
		final.showRecords = cfg.Defaults.ShowRecords
	}
	if activeProfile != nil {
		final.showRecords = activeProfile.ShowRecords
	}
	if isFlagSet("show-records") {
		final.showRecords = flags.showRecords
	}

	// Enable preprocessors
	final.enablePreprocessors = true // default fallback
	if cfg != nil {
		final.enablePreprocessors = cfg.Defaults.EnablePreprocessors
	}
	if activeProfile != nil {
		final.enablePreprocessors = activeProfile.EnablePreprocessors
	}
	if isFlagSet("enable-preprocessors") {
		final.enablePreprocessors = flags.enablePreprocessors
	}

	return final
}

// handleProfiles handles profile listing and selection.
func handleProfiles(cfg *config.Config, flags *configFlags) *config.Profile {
	if flags.listProfiles {
		profiles := cfg.ListProfiles()
		if len(profiles) == 0 {
			fmt.Println("No profiles defined in configuration file.")
		} else {
			fmt.Println("Available profiles:")
			for _, name := range profiles {
				profile := cfg.GetProfile(name)
				if profile != nil && profile.Description != "" {
					fmt.Printf("  - %s: %s\n", name, profile.Description)
				} else {
					fmt.Printf("  - %s\n", name)
				}
			}
		}
		os.Exit(0)
	}

	if flags.profileName == "" {
		return nil
	}
	activeProfile := cfg.GetProfile(flags.profileName)
	if activeProfile == nil {
		fmt.Fprintf(os.Stderr, "Error: profile '%s' not found in configuration\n", flags.profileName)
		os.Exit(1)
	}
	return activeProfile
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	cfg := config.LoadConfigOrDefault(flags.configFile)
	activeProfile := handleProfiles(cfg, flags)
	final := resolveConfiguration(cfg, activeProfile, flags)

	// Color output only makes sense on a terminal.
	if final.noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	if flags.showHelp {
		help.NewSystem(final.noColor).ShowGeneralHelp()
		os.Exit(0)
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: input filename is required")
		fmt.Fprintln(os.Stderr, "Usage: passport-audit [options] <path-to-batch-file>")
		os.Exit(1)
	}
	filePath := flag.Arg(0)

	level := observability.Metrics
	if final.debug {
		level = observability.Debug
	}
	observer := observability.NewObserver(level, os.Stderr)

	result, err := audit.Run(audit.Config{
		FilePath:            filePath,
		EnablePreprocessors: final.enablePreprocessors,
		Observer:            observer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output, err := formatters.Export(final.format, result, formatters.FormatterOptions{
		Verbose:     final.verbose,
		NoColor:     final.noColor,
		ShowRecords: final.showRecords,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(output)
}
