/**************************************************************************************************
** Inspect command implementation for the photo-retag CLI application. Displays the EXIF
** attribute table of a single image file, the way the original preview pane presented it.
**************************************************************************************************/

package main

import (
	"github.com/majorfi/photo-retag/pkg/exifmeta"
	"github.com/majorfi/photo-retag/pkg/utils"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** runInspect reads one image file and prints its labeled attributes. Absent attributes are
** shown as a dash rather than omitted, so the table shape is stable across files.
**
** @param cmd - Cobra command context
** @param args - Command line arguments, exactly one file path
**************************************************************************************************/
func runInspect(cmd *cobra.Command, args []string) {
	logger := loadEnv()

	img, err := exifmeta.Read(args[0], logger)
	if err != nil {
		logger.Fatalf("Cannot read '%s': %v", args[0], err)
	}

	for _, field := range exifmeta.Fields(img) {
		utils.Field(field.Title, field.Value)
	}
}
