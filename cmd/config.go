/**************************************************************************************************
** Configuration and environment management for the photo-retag CLI application.
** Handles logger configuration, environment variable loading, and global configuration state.
**************************************************************************************************/

package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/majorfi/photo-retag/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Global configuration variables
var template string
var offsetSeconds int
var offsetSet bool
var specificDate string
var settingsPath string
var saveSettings bool
var dryRun bool

/**************************************************************************************************
** Configures the logger based on environment variables. Sets up the log level and format
** according to LOG_LEVEL and LOG_FORMAT environment variables.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func configureLogger() *logrus.Logger {
	logger := logrus.New()

	// Set log level from environment variable
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsedLevel, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(parsedLevel)
		} else {
			logger.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", level)
			logger.SetLevel(logrus.InfoLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Set log format from environment variable
	if format := os.Getenv("LOG_FORMAT"); format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			FullTimestamp:    false,
			TimestampFormat:  time.RFC3339,
		})
	}

	return logger
}

/**************************************************************************************************
** Loads environment variables and command-line flags, with flags taking precedence over env
** variables. Handles the template, date rule selection and settings location.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func loadEnv() *logrus.Logger {
	_ = godotenv.Load()
	logger := configureLogger()

	if template == "" {
		template = os.Getenv("TEMPLATE")
	}
	if !offsetSet {
		if val := os.Getenv("OFFSET_SECONDS"); val != "" {
			if intVal, err := strconv.Atoi(val); err == nil {
				offsetSeconds = intVal
				offsetSet = true
			} else {
				logger.Warnf("Invalid OFFSET_SECONDS '%s', ignoring", val)
			}
		}
	}
	if specificDate == "" {
		specificDate = os.Getenv("SPECIFIC_DATE")
	}
	if offsetSet && specificDate != "" {
		logger.Fatal("Only one of --offset and --date may be used at a time")
	}
	if settingsPath == "" {
		settingsPath = os.Getenv("SETTINGS_PATH")
	}
	if settingsPath == "" {
		settingsPath = utils.DefaultSettingsFile
	}
	if !dryRun {
		dryRun = os.Getenv("DRY_RUN") == "true"
	}
	if dryRun {
		logger.Info("DRY_RUN is set to true, no changes will be applied")
	}
	return logger
}

/**************************************************************************************************
** parseSpecificDate parses a user-entered fixed timestamp. Both RFC3339 and the plain
** "2006-01-02 15:04:05" form are accepted; a bare date gets a midnight time.
**
** @param value - The raw date string
** @return time.Time - The parsed timestamp
** @return bool - True if the value parsed under one of the accepted layouts
**************************************************************************************************/
func parseSpecificDate(value string) (time.Time, bool) {
	layouts := []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
