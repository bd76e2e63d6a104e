package cmdUtils

import (
	"fmt"
	"io"
	"os"
	"time"
)

var (
	errPrefix   string = "ERR"
	fatalPrefix string = "FATAL"
)

const (
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

func LogError(reason string, err error) {
	// Print in yellow
	fmt.Fprintf(os.Stderr, "%s%s%s %s%s\n", yellow, errPrefix, reset, reason, err)
}

func LogFatalError(reason string, err error) {
	// Print in red
	fmt.Fprintf(os.Stderr, "%s%s%s %s%s\n", red, fatalPrefix, reset, reason, err)
	os.Exit(1)
}

// ReportArgError prints a command-line problem followed by the usage text.
// Both go to w (stdout for the front ends); the caller exits normally.
func ReportArgError(w io.Writer, prog string, err error, keys ...string) {
	fmt.Fprintf(w, "%s: %v\n\n", prog, err)
	Usage(w, prog, keys...)
}

// PrintProgress rewrites a single status line every howOften frames.
func PrintProgress(w io.Writer, startTime time.Time, frameCount uint64, howOften uint64) {
	if howOften == 0 || frameCount%howOften != 0 {
		return
	}

	if frameCount > howOften {
		// clear last line
		fmt.Fprint(w, "\033[1A\033[K")
	}

	framesPerSec := float64(frameCount) / time.Since(startTime).Seconds()

	fmt.Fprintf(w, "%s rendered %d frames (%.1f frames/s)\n",
		"xsframes: ", frameCount, framesPerSec)
}
