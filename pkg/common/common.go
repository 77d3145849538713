// 29 Apr 2020
// 14 Oct 2026 moved out of the sequence package and picked up logWhere

// Package common has the bits that every command and most tests want.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// WrtTempBytes is WrtTemp for data which is not text, like
// compressed files.
func WrtTempBytes(b []byte) (string, error) {
	return WrtTemp(string(b))
}

// LogWhere decides where to send diagnostic output.
// "" means throw it away, "stdout" and "stderr" are what they say.
// Anything else is a file name which we append to.
// The second return value should be called when the logger is no
// longer needed. It closes the file if we opened one.
func LogWhere(outinfo string) (*log.Logger, func() error, error) {
	var iowriter io.Writer
	closer := func() error { return nil }
	switch outinfo { // Decide where to send the logged output
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	case "stderr":
		iowriter = os.Stderr
	default:
		fp, err := os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, closer, err
		}
		iowriter = fp
		closer = fp.Close
	}
	prefix := ""
	return log.New(iowriter, prefix, log.Lshortfile), closer, nil
}
