// Package utils provides the shared types, constants and small helpers used across the
// photo-retag packages, plus a few colored console helpers for user-facing output. Structured
// diagnostics go through logrus; these helpers are only for the interactive plan/result lines.
package utils

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

var colorGreen = color.New(color.FgGreen).Add(color.Bold).SprintFunc()
var colorRed = color.New(color.FgRed).Add(color.Bold).SprintFunc()
var colorYellow = color.New(color.FgYellow).Add(color.Bold).SprintFunc()
var colorCyan = color.New(color.FgCyan).SprintFunc()

// Success function prints a green result line
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorGreen(`[OK]`), fmt.Sprintf(format, args...))
}

// Warning function prints a yellow warning line
func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorYellow(`[WARN]`), fmt.Sprintf(format, args...))
}

// Plan function prints a dry-run rename line as "old -> new"
func Plan(oldName string, newName string) {
	fmt.Printf("%s %s %s %s\n", colorYellow(`[PLAN]`), oldName, colorCyan(`->`), colorGreen(newName))
}

// Unchanged function prints a dry-run line for a file that keeps its name
func Unchanged(name string) {
	fmt.Printf("%s %s\n", colorYellow(`[PLAN]`), name)
}

// Field function prints a labeled attribute line for the inspect view
func Field(title string, value string) {
	if value == "" {
		value = colorRed(`-`)
	}
	fmt.Printf("%-16s %s\n", colorCyan(title), value)
}

// Pretty function disasemble a variable and display it's struct and values
func Pretty(variable ...interface{}) {
	spew.Config.Indent = "    "
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
	for _, each := range variable {
		spew.Dump(each)
	}
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
}
