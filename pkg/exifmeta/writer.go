package exifmeta

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/majorfi/photo-retag/pkg/utils"
	"github.com/sirupsen/logrus"
)

// exiftoolBin is the external metadata writer. goexif can only decode, so all EXIF writes
// are delegated to the exiftool command line.
const exiftoolBin = "exiftool"

// maxCollisionProbes bounds the numeric suffix search when resolving name collisions.
const maxCollisionProbes = 1000

/**************************************************************************************************
** dateTakenArgs builds the exiftool argument list for a date-taken write. The same value
** goes to all three EXIF datetime fields, under exiftool's names for them: ModifyDate
** (0x0132), DateTimeOriginal (0x9003) and CreateDate (0x9004). -overwrite_original prevents
** exiftool backup files and -P preserves the file modification time.
**
** @param path - Path to the image file
** @param stamp - The timestamp in EXIF "YYYY:MM:DD hh:mm:ss" form
** @return []string - The exiftool arguments
**************************************************************************************************/
func dateTakenArgs(path string, stamp string) []string {
	return []string{
		"-ModifyDate=" + stamp,
		"-DateTimeOriginal=" + stamp,
		"-CreateDate=" + stamp,
		"-overwrite_original",
		"-P",
		path,
	}
}

/**************************************************************************************************
** WriteDateTaken rewrites the capture timestamp of an image in place, via exiftool.
**
** @param path - Path to the image file
** @param ts - The new capture timestamp
** @param logger - Logger instance for debug output
** @return error - An error if exiftool is missing or the write fails
**************************************************************************************************/
func WriteDateTaken(path string, ts time.Time, logger *logrus.Logger) error {
	stamp := ts.Format(utils.ExifTimeFormat)
	cmd := exec.Command(exiftoolBin, dateTakenArgs(path, stamp)...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to write date taken to %s: %w (output: %s)", path, err, strings.TrimSpace(string(output)))
	}

	logger.Debugf("Wrote date taken %s to %s", stamp, filepath.Base(path))
	return nil
}

/**************************************************************************************************
** UniqueDestination returns a path in dir for name that does not collide with an existing
** file. On collision a numeric suffix "-1", "-2", ... is appended before the extension until
** a free name is found.
**
** @param dir - Target directory
** @param name - Desired file name with extension
** @return string - A free path inside dir
** @return error - An error when no free name exists within the probe limit
**************************************************************************************************/
func UniqueDestination(dir string, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	if !fileExists(candidate) {
		return candidate, nil
	}

	base, ext := utils.SplitFilename(name)
	for n := 1; n < maxCollisionProbes; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, n, ext))
		if !fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free name for %s in %s after %d attempts", name, dir, maxCollisionProbes)
}

/**************************************************************************************************
** SaveAs renames an image file within its directory. Collisions with existing files are
** resolved through UniqueDestination, never by overwriting. Renaming a file to its current
** name is a no-op.
**
** @param path - Current path of the image file
** @param newName - Desired new file name with extension
** @return string - The final path the file now lives at
** @return error - An error if the rename fails
**************************************************************************************************/
func SaveAs(path string, newName string) (string, error) {
	dir := filepath.Dir(path)
	if filepath.Join(dir, newName) == path {
		return path, nil
	}

	dest, err := UniqueDestination(dir, newName)
	if err != nil {
		return "", err
	}
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("failed to rename %s to %s: %w", path, dest, err)
	}
	return dest, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
