package xlink

import "io"

// SetOpener replaces the function ReadFile uses to open files and
// returns the old one, so a test can put it back.
func SetOpener(f func(string) (io.ReadCloser, error)) func(string) (io.ReadCloser, error) {
	old := opener
	opener = f
	return old
}

var ParseEnd = parseEnd
