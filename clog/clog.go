// Colored console logger.
// Replace fmt with clog to get a timestamp and filename:linenumber prefix in your logs.
// Replace fmt with clog.Red, clog.Green, clog.Yellow, clog.Blue, clog.Magenta, or clog.Cyan to get colored logs.
// Call SetLogFile to additionally mirror every log line, uncolored, to a file.
package clog

import (
	"fmt"
	"log"
	"os"
)

type color string

var (
	Red     color = "\033[31m"
	Green   color = "\033[32m"
	Yellow  color = "\033[33m"
	Blue    color = "\033[34m"
	Magenta color = "\033[35m"
	Cyan    color = "\033[36m"
	White   color = "\033[37m"
)

const reset string = "\033[0m"

var (
	std  = log.New(os.Stdout, "", log.Ltime|log.Lshortfile)
	file *log.Logger
)

// SetLogFile opens path for appending and mirrors all subsequent logs to it.
func SetLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	file = log.New(f, "", log.Ltime|log.Lmicroseconds|log.Lshortfile)
	return nil
}

// SetOutput redirects console logging, e.g. away from a terminal that is
// busy drawing the scene.
func SetOutput(l *log.Logger) {
	std = l
}

func output(s string) {
	std.Output(3, s)
	if file != nil {
		file.Output(3, s)
	}
}

func Print(v ...any) {
	output(fmt.Sprint(v...))
}

func Printf(format string, v ...any) {
	output(fmt.Sprintf(format, v...))
}

func Println(v ...any) {
	output(fmt.Sprintln(v...))
}

func Fatal(v ...any) {
	output(string(Red) + fmt.Sprint(v...) + reset)
	os.Exit(1)
}

func (c *color) Print(v ...any) {
	output(string(*c) + fmt.Sprint(v...) + reset)
}

func (c *color) Printf(format string, v ...any) {
	output(string(*c) + fmt.Sprintf(format, v...) + reset)
}

func (c *color) Println(v ...any) {
	output(string(*c) + fmt.Sprint(v...) + reset)
}
