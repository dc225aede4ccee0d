//go:build dev
// +build dev

package logger

import (
	"fmt"
	"log"

	"github.com/deanrtaylor1/gosentiment/util"
)

func init() {
	std.SetFlags(log.LstdFlags | log.Lshortfile)
}

func HandleError(err error) {
	std.Output(2, Colorize(util.TerminalRed, fmt.Sprintf("Dev Mode - Error: %v", err)))
}

func HandleLog(msg string) {
	std.Output(3, fmt.Sprintf("Dev Mode - %s", msg))
}
