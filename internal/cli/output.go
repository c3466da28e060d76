package cli

import (
	"fmt"
	"os"
	"strings"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("✓ %s\n", msg)
	} else {
		fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, msg)
	}
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("⚠ %s\n", msg)
	} else {
		fmt.Printf("%s⚠%s %s\n", colorYellow, colorReset, msg)
	}
}

// printStatusLine prints one per-file status record, graying out the
// lines that did no work so the interesting ones stand out.
func printStatusLine(line string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("- %s\n", line)
		return
	}
	if strings.HasPrefix(line, "SKIPPED") || strings.HasPrefix(line, "UP-TO-DATE") {
		fmt.Printf("%s- %s%s\n", colorGray, line, colorReset)
	} else {
		fmt.Printf("- %s\n", line)
	}
}

// printStatusLines prints a generation pass report.
func printStatusLines(lines []string) {
	for _, line := range lines {
		printStatusLine(line)
	}
}

// printError prints an error message to stderr
func printError(err error) {
	if globalNoColor {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", colorRed, colorReset, err)
	}
}
