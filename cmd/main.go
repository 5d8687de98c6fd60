/**************************************************************************************************
** Main entry point for the photo-retag CLI application. This tool batch-renames JPEG images
** and rewrites their EXIF date taken from a filename template and a relative or fixed
** date rule.
**************************************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"
)

/**************************************************************************************************
** Application entry point. Sets up the CLI command structure using Cobra, including all
** available commands and their associated flags. Handles command execution and error
** reporting.
**************************************************************************************************/
func main() {
	var rootCmd = &cobra.Command{
		Use:   "photo-retag [paths...]",
		Short: "Photo Retag CLI",
		Long:  "A tool to batch-rename photos and rewrite their EXIF date taken from a filename template.",
		Run:   runRename,
	}

	var tagsCmd = &cobra.Command{
		Use:   "tags",
		Short: "List template tags",
		Long:  "List the placeholder tags available in filename templates.",
		Run:   runTags,
	}

	var inspectCmd = &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show EXIF attributes",
		Long:  "Display the EXIF attributes of a single image file.",
		Args:  cobra.ExactArgs(1),
		Run:   runInspect,
	}

	rootCmd.PersistentFlags().StringVar(&template, "template", "", "Filename template, e.g. '[YYYY]-[MM]-[DD]_[ORG]' (or set TEMPLATE env var)")
	rootCmd.PersistentFlags().IntVar(&offsetSeconds, "offset", 0, "Relative date offset in signed seconds (or set OFFSET_SECONDS env var)")
	rootCmd.PersistentFlags().StringVar(&specificDate, "date", "", "Fixed date taken, RFC3339 or '2006-01-02 15:04:05' (or set SPECIFIC_DATE env var)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file path (or set SETTINGS_PATH env var)")
	rootCmd.PersistentFlags().BoolVar(&saveSettings, "save-settings", false, "Persist the template and offset used for this run")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the plan without touching any file (or set DRY_RUN=true)")

	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
