package utils

/**************************************************************************************************
** ExifTimeFormat is the timestamp layout used by EXIF DateTime, DateTimeOriginal and
** DateTimeDigitized fields. All EXIF date reads and writes go through this layout.
**************************************************************************************************/
const ExifTimeFormat = "2006:01:02 15:04:05"

/**************************************************************************************************
** DefaultSettingsFile is the settings file used when no --settings flag or SETTINGS_PATH
** env var is provided. It lives next to the working directory so that per-folder template
** preferences travel with the photos.
**************************************************************************************************/
const DefaultSettingsFile = ".photo-retag.yaml"

/**************************************************************************************************
** JpegExtensions lists the file extensions (lowercase, with dot) treated as JPEG images
** when collecting files from a directory.
**************************************************************************************************/
var JpegExtensions = []string{".jpg", ".jpeg"}

/**************************************************************************************************
** SecondsPerDay / SecondsPerHour / SecondsPerMinute are used when converting the persisted
** total-seconds relative offset to and from its day/time components.
**************************************************************************************************/
const (
	SecondsPerDay    = 86400
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)
