package common

import (
	"io"
	"log"
	"os"
)

var (
	logger = log.New(os.Stderr, "[vrtdump] ", log.LstdFlags|log.Lmicroseconds)
)

func Logf(format string, args ...interface{}) {
	logger.Printf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}

// SetOutput redirects the process logger, e.g. into a rotating file.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}
