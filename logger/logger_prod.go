//go:build !dev
// +build !dev

package logger

import "github.com/deanrtaylor1/gosentiment/util"

func HandleError(err error) {
	std.Println(Colorize(util.TerminalRed, "Error: "+err.Error()))
}

func HandleLog(msg string) {
	std.Println(msg)
}
