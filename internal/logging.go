package internal

import (
	"io"
	"log"
	"os"
)

// InitLogging sends log output to stderr so one-shot tool results on stdout
// stay clean.
func InitLogging() {
	InitLoggingTo(os.Stderr)
}

// InitLoggingTo is InitLogging with an explicit destination.
func InitLoggingTo(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
