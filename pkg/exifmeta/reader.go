// Package exifmeta is the image metadata collaborator: it reads EXIF attributes into
// utils.TImage snapshots, writes the date-taken fields back through exiftool, and performs
// the rename-with-disambiguation save step. It is the only package that touches image files.
package exifmeta

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/majorfi/photo-retag/pkg/utils"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/sirupsen/logrus"
)

/**************************************************************************************************
** Read builds a metadata snapshot for one image file. The name fields are always populated
** from the path; the EXIF-derived fields stay nil when the file carries no EXIF block or
** lacks the individual attribute. A file without EXIF is not an error: the conversion core
** treats absent attributes as per-field resolution misses.
**
** @param path - Path to the image file
** @param logger - Logger instance for debug output
** @return utils.TImage - The metadata snapshot
** @return error - An error if the file cannot be opened
**************************************************************************************************/
func Read(path string, logger *logrus.Logger) (utils.TImage, error) {
	img := utils.TImage{Path: path, Filename: filepath.Base(path)}
	img.Basename, img.Extension = utils.SplitFilename(img.Filename)

	f, err := os.Open(path)
	if err != nil {
		return img, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		logger.Debugf("No EXIF metadata in %s: %v", img.Filename, err)
		return img, nil
	}

	if dt, err := x.DateTime(); err == nil {
		img.DateTaken = &dt
	}
	img.CameraMaker = stringField(x, exif.Make)
	img.CameraModel = stringField(x, exif.Model)
	img.FStop = fStopField(x)
	img.ExposureTime = exposureField(x)
	img.ISO = isoField(x)
	img.FocalLength = focalLengthField(x)
	img.Resolution = resolutionField(x)

	return img, nil
}

/**************************************************************************************************
** Fields returns the display attribute table for one image, in the order the preview pane
** presents them. Absent attributes have an empty Value.
**
** @param img - The metadata snapshot to display
** @return []utils.TField - Ordered labeled attribute list
**************************************************************************************************/
func Fields(img utils.TImage) []utils.TField {
	dateTaken := ""
	if img.DateTaken != nil {
		dateTaken = img.DateTaken.Format("2006-01-02 15:04:05")
	}
	return []utils.TField{
		{Title: "File name", Value: img.Filename},
		{Title: "Date taken", Value: dateTaken},
		{Title: "Camera maker", Value: deref(img.CameraMaker)},
		{Title: "Camera model", Value: deref(img.CameraModel)},
		{Title: "F-stop", Value: deref(img.FStop)},
		{Title: "Exposure time", Value: deref(img.ExposureTime)},
		{Title: "ISO speed", Value: deref(img.ISO)},
		{Title: "Focal length", Value: deref(img.FocalLength)},
		{Title: "Resolution", Value: deref(img.Resolution)},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// stringField reads an EXIF string tag, nil when absent or unreadable.
func stringField(x *exif.Exif, name exif.FieldName) *string {
	tag, err := x.Get(name)
	if err != nil {
		return nil
	}
	value, err := tag.StringVal()
	if err != nil {
		return nil
	}
	return &value
}

// ratField reads an EXIF rational tag as a float, false when absent or malformed.
func ratField(x *exif.Exif, name exif.FieldName) (float64, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, false
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

func fStopField(x *exif.Exif) *string {
	value, ok := ratField(x, exif.FNumber)
	if !ok {
		return nil
	}
	formatted := formatFStop(value)
	return &formatted
}

func exposureField(x *exif.Exif) *string {
	value, ok := ratField(x, exif.ExposureTime)
	if !ok || value <= 0 {
		return nil
	}
	formatted := formatExposure(value)
	return &formatted
}

func isoField(x *exif.Exif) *string {
	tag, err := x.Get(exif.ISOSpeedRatings)
	if err != nil {
		return nil
	}
	iso, err := tag.Int(0)
	if err != nil {
		return nil
	}
	formatted := strconv.Itoa(iso)
	return &formatted
}

func focalLengthField(x *exif.Exif) *string {
	value, ok := ratField(x, exif.FocalLength)
	if !ok {
		return nil
	}
	formatted := formatFocalLength(value)
	return &formatted
}

func resolutionField(x *exif.Exif) *string {
	xTag, err := x.Get(exif.PixelXDimension)
	if err != nil {
		return nil
	}
	yTag, err := x.Get(exif.PixelYDimension)
	if err != nil {
		return nil
	}
	width, errX := xTag.Int(0)
	height, errY := yTag.Int(0)
	if errX != nil || errY != nil {
		return nil
	}
	formatted := fmt.Sprintf("%dx%d", width, height)
	return &formatted
}

// formatFStop renders an aperture value as "f/2.8".
func formatFStop(value float64) string {
	return "f/" + strconv.FormatFloat(value, 'g', -1, 64)
}

// formatExposure renders an exposure time as the photographic "1/250 s" fraction, or as
// plain seconds once the exposure reaches a full second.
func formatExposure(value float64) string {
	if value >= 1 {
		return strconv.FormatFloat(value, 'g', -1, 64) + " s"
	}
	return fmt.Sprintf("1/%d s", int(math.Round(1/value)))
}

// formatFocalLength renders a focal length as "50 mm".
func formatFocalLength(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64) + " mm"
}
