// brokenio is a wrapper around an io.ReadCloser. It allows us to set
// rates of failed read operations, or a byte count after which reading
// fails.
// Typical use: in a test, you have a file pointer or a reader on some
// string. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything
// then functions as before, but with artificial errors.
// The wrapper also remembers if it was closed, so a test can check
// that a reader lets go of its input, even after an error.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is returned by Read when we decide to fail.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdrClsr is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// probFail is the fraction of reads which fail, so 0.05 means failure
// in 5% of the cases. failAfter, if not negative, is the number of
// bytes we deliver before every read fails.
type BrknRdrClsr struct {
	rdrOrig   io.ReadCloser // Wrapped reader
	rnd       *rand.Rand
	probFail  float32
	failAfter int
	nCalled   int
	nByte     int
	nClose    int
}

// NewReader returns a new Reader - a wrapper around the old one.
// By default, it does not break anything.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:   rIn,
		rnd:       rand.New(rand.NewSource(1637)),
		failAfter: -1,
	}
}

// SetProbFail sets the probability of a read failure.
// It must be between zero and 1. We do not check.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter says we should deliver n bytes, then fail.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// SetSeed resets the random number generator
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// NClose says how often Close was called.
func (r *BrknRdrClsr) NClose() int { return r.nClose }

// NByte is the number of bytes that got through
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, fmt.Errorf("after %d bytes: %w", r.nByte, ErrBroken)
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, fmt.Errorf("call %d: %w", r.nCalled, ErrBroken)
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	r.nClose++
	return r.rdrOrig.Close()
}
