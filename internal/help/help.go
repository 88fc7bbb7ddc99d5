// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"passport-audit/internal/formatters"
)

// System renders help output for the CLI.
type System struct {
	colors map[string]*color.Color
}

// NewSystem creates a new help system.
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}
	return &System{
		colors: map[string]*color.Color{
			"title":  color.New(color.FgWhite, color.Bold),
			"header": color.New(color.FgBlue, color.Bold),
			"item":   color.New(color.FgCyan),
		},
	}
}

// ShowGeneralHelp displays general help information.
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Passport Audit - Batch Record Validation Tool")
	fmt.Println("=============================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  passport-audit [options] <path-to-batch-file>")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  -config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  -profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  -list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  -format\t<format>\tOutput format: text, json, yaml (default: text)")
	fmt.Fprintln(w, "  -show-records\t\tEcho each fully valid record")
	fmt.Fprintln(w, "  -verbose\t\tShow per-record audit status")
	fmt.Fprintln(w, "  -debug\t\tWrite pipeline timing as JSON lines to stderr")
	fmt.Fprintln(w, "  -no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  -enable-preprocessors\t\tExtract text from PDF inputs before parsing (default: true)")
	fmt.Fprintln(w, "  -version\t\tPrint version information and exit")
	fmt.Fprintln(w, "  -help\t\tShow this help")
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("INPUT FORMAT:")
	fmt.Println("  Records are groups of key:value fields separated by blank lines;")
	fmt.Println("  fields within a record are separated by spaces or newlines.")
	fmt.Println()

	h.colors["header"].Println("OUTPUT FORMATS:")
	for _, name := range formatters.List() {
		if f, ok := formatters.Get(name); ok {
			h.colors["item"].Printf("  %s", name)
			fmt.Printf(" - %s\n", f.Description())
		}
	}
}
