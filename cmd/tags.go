/**************************************************************************************************
** Tags command implementation for the photo-retag CLI application. Lists the placeholder
** tags available in filename templates, with their descriptions.
**************************************************************************************************/

package main

import (
	"fmt"

	"github.com/majorfi/photo-retag/pkg/retag"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** runTags prints the supported template tags in display order. Arg-bearing tags show their
** argument slot so the listing doubles as syntax documentation.
**
** @param cmd - Cobra command context
** @param args - Command line arguments (unused)
**************************************************************************************************/
func runTags(cmd *cobra.Command, args []string) {
	for _, tag := range retag.Tags() {
		syntax := "[" + tag.Tag + "]"
		if tag.HasArg {
			syntax = "[" + tag.Tag + "text]"
		}
		fmt.Printf("%-12s %s\n", syntax, tag.Description)
	}
}
