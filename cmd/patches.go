// Package cmd implements the command-line interface for lonesnake-release.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/pwalch/lonesnake-release/release"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(isNewUpdateAvailableCmd)
	isNewUpdateAvailableCmd.Flags().BoolP("json", "j", false, "Print the report as JSON")
	isNewUpdateAvailableCmd.SetOut(os.Stdout)

	isNewUpdateAvailableCmd.AddCommand(updateReportSchemaCmd)
	updateReportSchemaCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(overwriteLatestPatchBlockCmd)
}

// isNewUpdateAvailableCmd compares python.org against the latest patch block of the lonesnake script.
var isNewUpdateAvailableCmd = &cobra.Command{
	Use:   "is-new-update-available",
	Short: "Check if new updates are available on python.org compared to lonesnake script patch block",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		updates, err := release.CheckUpdates(cmd.Context(), release.OptionsFromConfig())
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(release.NewUpdateReport(updates)))
			return
		}

		for _, line := range release.Report(updates) {
			cmd.Println(line)
		}
	},
}

// updateReportSchemaCmd prints the JSON schema of the --json report.
var updateReportSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the report printed with --json",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&release.UpdateReport{})))
	},
}

// overwriteLatestPatchBlockCmd rewrites the latest patch block of the lonesnake script from python.org.
var overwriteLatestPatchBlockCmd = &cobra.Command{
	Use:   "overwrite-latest-patch-block",
	Short: "Overwrite the latest patch block in lonesnake script",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(release.OverwriteLatestPatchBlock(cmd.Context(), release.OptionsFromConfig()))
	},
}
