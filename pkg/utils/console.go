package utils

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

const (
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// Info writes to both interactive output and the log file.
func Info(a ...any) {
	fmt.Println(a...)
	log.Println(a...)
}

func Infof(format string, a ...any) {
	fmt.Printf(format+"\n", a...)
	log.Printf(format, a...)
}

func Warn(a ...any) {
	printMarked(colorYellow, "WARN:", a...)
}

func Error(a ...any) {
	printMarked(colorRed, "ERROR:", a...)
}

func printMarked(color string, marker string, a ...any) {
	line := fmt.Sprintln(append([]any{marker}, a...)...)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(color + line + colorReset)
	} else {
		fmt.Print(line)
	}

	log.Print(line)
}
