// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

// Command simple-expak extracts resources from Quake-style pak files.
//
// Any argument ending in ".pak" (case-insensitive) is treated as a pak file
// path; every other argument is a resource name to extract. With no resource
// names, everything is extracted. Resources that were not found (or not
// successfully extracted) are listed when the run finishes.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/neogeographica/expak"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var (
	outDir   string
	listOnly bool
	quiet    bool

	rootCmd = &cobra.Command{
		Use:   "simple-expak <file.pak> [<file.pak> ...] [<resource> ...]",
		Short: "Extract resources from Quake-style pak files",
		Long: `simple-expak extracts resources from Quake-style pak files.

Pak file paths and resource names can be freely intermingled: any argument
ending in ".pak" (case-insensitive) is a pak file, anything else a resource
name. If no resource names are given, all resources are extracted.

Extracted resources are created under the output directory, with
slash-separated name segments becoming nested directories.`,
		Example: `  simple-expak pak0.pak pak1.pak
  simple-expak pak1.pak sound/misc/basekey.wav
  simple-expak --list pak0.pak`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for extracted resources")
	rootCmd.Flags().BoolVarP(&listOnly, "list", "l", false, "list resource names instead of extracting")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostic output")
}

func run(cmd *cobra.Command, args []string) error {
	expak.SetQuiet(quiet)

	paks, targets := splitArgs(args)
	if len(paks) == 0 {
		return fmt.Errorf("no pak files among arguments")
	}

	if listOnly {
		return listNames(cmd, paks)
	}

	var sel expak.Selection = expak.All
	if len(targets) > 0 {
		sel = targets
	}

	err := expak.ExtractTo(outDir, paks, sel)
	if len(targets) > 0 {
		reportLeftovers(cmd, targets)
	}

	return err
}

// splitArgs separates command arguments into pak paths and resource names.
func splitArgs(args []string) ([]string, expak.NameSet) {
	var paks []string
	targets := expak.NewNameSet()
	for _, arg := range args {
		if strings.HasSuffix(strings.ToLower(arg), ".pak") {
			paks = append(paks, arg)
			continue
		}

		targets[arg] = struct{}{}
	}

	return paks, targets
}

// listNames prints the union of resource names across the given paks.
func listNames(cmd *cobra.Command, paks []string) error {
	names, err := expak.Names(paks...)
	if err != nil {
		return err
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}

	sort.Strings(sorted)
	for _, name := range sorted {
		cmd.Println(name)
	}

	return nil
}

// reportLeftovers prints requested resources that were never satisfied.
func reportLeftovers(cmd *cobra.Command, targets expak.NameSet) {
	if targets.Empty() {
		return
	}

	cmd.Println("not found (or not successfully extracted):")
	for _, name := range targets.Names() {
		cmd.Printf("    %s\n", name)
	}
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
