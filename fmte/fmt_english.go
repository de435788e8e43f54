package fmte

import (
	"io"
	"os"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var p *message.Printer

var mx sync.Mutex // Shared across stdout and stderr to keep their ordering

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var normalPrint = true

var verbosePrint = false

func init() {
	p = message.NewPrinter(language.English)
}

// Off function turns off normal and verbose print functions within fmte package.
// Errors are still printed.
func Off() {
	mx.Lock()
	normalPrint = false
	mx.Unlock()
}

// VerboseOn turns on verbose print functions within fmte package
func VerboseOn() {
	mx.Lock()
	verbosePrint = true
	mx.Unlock()
}

// SetOutput redirects standard and error output, returning a function that restores the previous writers
func SetOutput(out, errOut io.Writer) (restore func()) {
	mx.Lock()
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	mx.Unlock()
	return func() {
		mx.Lock()
		stdout, stderr = prevOut, prevErr
		mx.Unlock()
	}
}

// Printf is goroutine-safe fmt.Printf for English
func Printf(format string, a ...any) {
	mx.Lock()
	defer mx.Unlock()
	if normalPrint {
		_, _ = p.Fprintf(stdout, format, a...)
	}
}

// PrintfV is goroutine-safe fmt.Printf for English (Verbose mode), written to stderr
func PrintfV(format string, a ...any) {
	mx.Lock()
	defer mx.Unlock()
	if normalPrint && verbosePrint {
		_, _ = p.Fprintf(stderr, format, a...)
	}
}

// Print is a goroutine-safe fmt.Print for English
func Print(a ...any) {
	mx.Lock()
	defer mx.Unlock()
	if normalPrint {
		_, _ = p.Fprint(stdout, a...)
	}
}

// PrintfErr is goroutine-safe fmt.Printf to StdErr for English
func PrintfErr(format string, a ...any) {
	mx.Lock()
	defer mx.Unlock()
	_, _ = p.Fprintf(stderr, format, a...)
}
