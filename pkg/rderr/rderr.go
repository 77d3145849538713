// Package rderr has the errors shared by the readers.
// An error remembers the line number and the line we were trying to
// read, so the message can point at the problem.
package rderr

import (
	"errors"
	"fmt"
	"strconv"
)

// The kinds of error a reader can return. Use errors.Is() to
// check which one you have.
var (
	ErrFileNotFound = errors.New("input file not found or not readable")
	ErrMalformedRow = errors.New("malformed row")
	ErrDuplicate    = errors.New("duplicate record")
)

const maxMsgLen = 70

// ReadError is what a reader returns when it does not like a line.
type ReadError struct {
	N      int    // line number, counting from 1. Zero means unknown.
	Inline string // The line that provoked the error
	Desc   string // Description of error
	Kind   error  // One of the Err.. values above
	Err    error  // Underlying error, if there was one
}

// New makes a ReadError for line n of kind kind.
func New(kind error, n int, inline, desc string) *ReadError {
	return &ReadError{N: n, Inline: inline, Desc: desc, Kind: kind}
}

// Wrap is like New, but keeps an underlying error
// (from strconv, the reader, ...).
func Wrap(kind error, n int, inline string, err error) *ReadError {
	return &ReadError{N: n, Inline: inline, Desc: err.Error(), Kind: kind, Err: err}
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error puts the line number, description and the start of the
// offending line into one string.
func (e *ReadError) Error() string {
	var errmsg string
	if e.Kind != nil {
		errmsg = e.Kind.Error() + ": "
	}
	if e.N != 0 {
		errmsg += "line " + strconv.FormatInt(int64(e.N), 10) + " "
	}
	errmsg += e.Desc
	if e.Inline != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.Inline)
	}
	return errmsg
}

// Unwrap lets errors.Is see both the kind and the underlying error.
func (e *ReadError) Unwrap() []error {
	ret := make([]error, 0, 2)
	if e.Kind != nil {
		ret = append(ret, e.Kind)
	}
	if e.Err != nil {
		ret = append(ret, e.Err)
	}
	return ret
}

// NotFound wraps an error from opening a file. The result satisfies
// errors.Is(err, ErrFileNotFound) and still answers to fs.ErrNotExist.
func NotFound(fname string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFileNotFound, fname, err)
}
