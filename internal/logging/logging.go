package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ColorBlue   = "\033[1;34m"
	ColorGreen  = "\033[1;36m"
	ColorYellow = "\033[1;33m"
	ColorRed    = "\033[1;31m"
	ColorReset  = "\033[0m"

	ColorSuccess = ColorGreen
	ColorWarning = ColorYellow
	ColorInfo    = ColorBlue
	ColorFailure = ColorRed
)

// Output receives every user-facing message. Tests swap it for a buffer.
var Output io.Writer = os.Stdout

func Colorize(color, text string) string {
	return strings.Join([]string{color, text, ColorReset}, "")
}

func userMessage(color, msg string, format ...interface{}) {
	fmt.Fprintln(Output, Colorize(color, fmt.Sprintf(msg, format...)))
}

// UserSuccess prints a colorized success message
func UserSuccess(msg string, format ...interface{}) {
	userMessage(ColorSuccess, msg, format...)
}

// UserWarning prints a colorized warning message
func UserWarning(msg string, format ...interface{}) {
	userMessage(ColorWarning, "WARNING: "+msg, format...)
}

// UserInfo prints a colorized informational message
func UserInfo(msg string, format ...interface{}) {
	userMessage(ColorInfo, msg, format...)
}

// UserFailure prints a colorized failure message
func UserFailure(msg string, format ...interface{}) {
	userMessage(ColorFailure, "ERROR: "+msg, format...)
}
