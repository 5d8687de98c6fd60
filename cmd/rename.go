/**************************************************************************************************
** Rename command implementation for the photo-retag CLI application. Drives the batch
** conversion: collects JPEG files, reads their metadata, runs the conversion core and
** applies the resulting renames and date-taken writes one file at a time.
**************************************************************************************************/

package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/majorfi/photo-retag/pkg/exifmeta"
	"github.com/majorfi/photo-retag/pkg/retag"
	"github.com/majorfi/photo-retag/pkg/settings"
	"github.com/majorfi/photo-retag/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** isJpeg checks whether a path has one of the recognized JPEG extensions.
**************************************************************************************************/
func isJpeg(path string) bool {
	return utils.Contains(utils.JpegExtensions, strings.ToLower(filepath.Ext(path)))
}

/**************************************************************************************************
** collectImages expands the command arguments into a list of JPEG file paths. A directory
** argument contributes its JPEG entries (non-recursive, like the original file list view);
** a file argument is taken as-is when it looks like a JPEG. Unusable arguments are skipped
** with a warning.
**
** @param args - Command line arguments (files or directories)
** @param logger - Logger instance for warnings
** @return []string - JPEG file paths in argument order
**************************************************************************************************/
func collectImages(args []string, logger *logrus.Logger) []string {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			logger.Warnf("Cannot find '%s', skipping", arg)
			continue
		}
		if !info.IsDir() {
			if isJpeg(arg) {
				paths = append(paths, arg)
			} else {
				logger.Warnf("'%s' is not a JPEG file, skipping", arg)
			}
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			logger.Warnf("Cannot read directory '%s', skipping: %v", arg, err)
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() && isJpeg(entry.Name()) {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return paths
}

/**************************************************************************************************
** buildDateRule selects the active date rule from the merged flag/env configuration.
** A fixed date wins over a relative offset (loadEnv rejects having both); with neither,
** the date taken passes through unchanged.
**
** @param logger - Logger instance for fatal reporting on an unparseable date
** @return retag.DateRule - The active date rule
**************************************************************************************************/
func buildDateRule(logger *logrus.Logger) retag.DateRule {
	if specificDate != "" {
		ts, ok := parseSpecificDate(specificDate)
		if !ok {
			logger.Fatalf("Cannot parse date '%s'", specificDate)
		}
		return retag.SpecificRule(ts)
	}
	if offsetSet {
		return retag.RelativeRuleFromSeconds(offsetSeconds)
	}
	return retag.UnchangedRule()
}

/**************************************************************************************************
** runRename executes the batch conversion. Metadata for every collected file is read first,
** the pure conversion core computes the per-image results, and a sequential apply loop
** performs the date writes and renames. SIGINT stops the run cooperatively between images.
**
** @param cmd - Cobra command context
** @param args - Command line arguments (files or directories)
**************************************************************************************************/
func runRename(cmd *cobra.Command, args []string) {
	offsetSet = cmd.Flags().Changed("offset")
	logger := loadEnv()

	stored, err := settings.Load(settingsPath)
	if err != nil {
		logger.Fatalf("Failed to load settings: %v", err)
	}
	if template == "" {
		template = stored.Template
	}

	tokens, err := retag.ParseTemplate(template)
	if err != nil {
		logger.Fatalf("Invalid template '%s': %v", template, err)
	}
	rule := buildDateRule(logger)

	paths := collectImages(args, logger)
	if len(paths) == 0 {
		logger.Warn("No JPEG images to process")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	stopped := func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}

	// Read all metadata up front; unreadable files are skipped, not fatal
	images := make([]utils.TImage, 0, len(paths))
	for _, path := range paths {
		img, err := exifmeta.Read(path, logger)
		if err != nil {
			logger.Warnf("Cannot read '%s', skipping: %v", path, err)
			continue
		}
		images = append(images, img)
	}

	if logger.Level == logrus.DebugLevel {
		utils.Pretty(tokens, rule)
	}

	results := retag.ConvertAll(images, tokens, rule,
		retag.WithLogger(logger),
		retag.WithStop(stopped),
	)

	modified := 0
	for i, result := range results {
		if stopped() {
			logger.Warnf("Interrupted after %d/%d images", i, len(images))
			break
		}
		if applyConversion(images[i], result, logger) {
			modified++
		}
		logger.Infof("%d/%d images processed", i+1, len(images))
	}

	if dryRun {
		utils.Success("%d/%d images would be modified", modified, len(images))
	} else {
		utils.Success("%d/%d images modified", modified, len(images))
	}

	if saveSettings {
		stored.Template = template
		if offsetSet {
			stored.Offset = settings.OffsetFromSeconds(offsetSeconds)
		}
		if err := settings.Save(settingsPath, stored); err != nil {
			logger.Warnf("Failed to save settings: %v", err)
		}
	}
}

/**************************************************************************************************
** applyConversion applies one conversion result to its file: the date-taken write first,
** then the rename. A computed name equal to the file's canonical current name (current
** basename with any -N disambiguation suffix stripped) is not a rename. In dry-run mode
** the plan is printed instead.
**
** @param img - The image the result belongs to
** @param result - The conversion result to apply
** @param logger - Logger instance for per-item failure reporting
** @return bool - True if the file was (or would be) modified
**************************************************************************************************/
func applyConversion(img utils.TImage, result utils.TConversion, logger *logrus.Logger) bool {
	currentName := utils.StripCopySuffix(img.Basename) + img.Extension
	newName := currentName
	if result.NewFilename != nil {
		newName = *result.NewFilename
	}
	renames := newName != currentName
	writesDate := result.NewDateTaken != nil

	if dryRun {
		if renames {
			utils.Plan(img.Filename, newName)
		} else {
			utils.Unchanged(img.Filename)
		}
		return renames || writesDate
	}

	if writesDate {
		if err := exifmeta.WriteDateTaken(img.Path, *result.NewDateTaken, logger); err != nil {
			logger.Warnf("Failed to update date taken of '%s', skipping: %v", img.Filename, err)
			return false
		}
	}
	if renames {
		dest, err := exifmeta.SaveAs(img.Path, newName)
		if err != nil {
			logger.Warnf("Failed to rename '%s', skipping: %v", img.Filename, err)
			return writesDate
		}
		logger.Debugf("Renamed %s to %s", img.Filename, filepath.Base(dest))
	}
	return renames || writesDate
}
