// Package cmd implements the command-line interface for lonesnake-release.
package cmd

import (
	"os"

	"github.com/pwalch/lonesnake-release/release"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(currentProgVersionCmd)
	currentProgVersionCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(nextProgVersionCmd)
	nextProgVersionCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(overwriteProgVersionCmd)
}

// currentProgVersionCmd prints the PROG_VERSION of the lonesnake script.
var currentProgVersionCmd = &cobra.Command{
	Use:   "current-prog-version",
	Short: "Get the PROG_VERSION from lonesnake script",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v, err := release.CurrentProgVersion(release.OptionsFromConfig())
		handleErr(err)
		cmd.Println(v)
	},
}

// nextProgVersionCmd prints the PROG_VERSION that the next release would carry.
var nextProgVersionCmd = &cobra.Command{
	Use:   "next-prog-version",
	Short: "Get the next PROG_VERSION by adding 1 minor version to existing PROG_VERSION from lonesnake script",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v, err := release.NextProgVersion(release.OptionsFromConfig())
		handleErr(err)
		cmd.Println(v)
	},
}

// overwriteProgVersionCmd stamps a new PROG_VERSION into the scripts and the README.
var overwriteProgVersionCmd = &cobra.Command{
	Use:     "overwrite-prog-version <prog_version>",
	Short:   "Overwrite the PROG_VERSION in lonesnake and lonesnake-kit and README",
	Args:    cobra.ExactArgs(1),
	Example: "  lonesnake-release overwrite-prog-version 1.5.0",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(release.OverwriteProgVersion(release.OptionsFromConfig(), args[0]))
	},
}
