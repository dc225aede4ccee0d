package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/deanrtaylor1/gosentiment/util"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var (
	std          = log.New(colorable.NewColorableStdout(), "", log.LstdFlags)
	colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

// SetOutput redirects every log line to w. Colours are dropped since w is not a terminal.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
	colorEnabled = false
}

// Colorize wraps msg in the given terminal colour when stdout is a terminal
func Colorize(color, msg string) string {
	if !colorEnabled {
		return msg
	}
	return color + msg + util.TerminalReset
}

func Logf(format string, v ...interface{}) {
	HandleLog(fmt.Sprintf(format, v...))
}

// Banner logs msg between two rule lines
func Banner(color, msg string) {
	HandleLog(Colorize(color, "------------------------------------"))
	HandleLog(Colorize(color, msg))
	HandleLog(Colorize(color, "------------------------------------"))
}
